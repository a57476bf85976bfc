package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("a"))
	f.Add([]byte("abacabad"))
	f.Add([]byte{0x00, 0xff, 0x00, 0x7f})
	f.Add(bytes.Repeat([]byte("xy"), 300))

	f.Fuzz(func(t *testing.T, data []byte) {
		container, err := Compress(data)
		if err != nil {
			t.Fatalf("Compress error = %v", err)
		}
		got, err := Decompress(container)
		if err != nil {
			t.Fatalf("Decompress error = %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("round trip mismatch: got %d bytes, want %d", len(got), len(data))
		}
	})
}

func FuzzDecompress(f *testing.F) {
	for _, s := range []string{"", "aaaa", "abacabad"} {
		c, _ := Compress([]byte(s))
		f.Add(c)
	}
	f.Add([]byte{0x07, 0x00, 0x02, 'a', 0x01, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		got, err := Decompress(data)
		if err != nil {
			if !errors.Is(err, ErrMalformedContainer) && !errors.Is(err, ErrCorruptPayload) {
				t.Fatalf("unexpected error type: %v", err)
			}
			if got != nil {
				t.Fatalf("partial output returned with error")
			}
			return
		}
		// anything that decodes must re-encode to a decodable container
		again, err := Compress(got)
		if err != nil {
			t.Fatalf("Compress of decoded output failed: %v", err)
		}
		if _, err := Decompress(again); err != nil {
			t.Fatalf("re-encoded container does not decode: %v", err)
		}
	})
}
