package huffman

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestBitPacker_Bytes(t *testing.T) {
	tests := []struct {
		name        string
		codewords   []Codeword
		wantBytes   []byte
		wantPadding int
		wantLen     int
	}{
		{
			name:        "nothing appended",
			wantBytes:   []byte{},
			wantPadding: 0,
		},
		{
			name:        "single zero bit",
			codewords:   []Codeword{"0"},
			wantBytes:   []byte{0x00},
			wantPadding: 7,
			wantLen:     1,
		},
		{
			name:        "partial byte is padded on the right",
			codewords:   []Codeword{"101"},
			wantBytes:   []byte{0xa0},
			wantPadding: 5,
			wantLen:     3,
		},
		{
			name:        "exact byte needs no padding",
			codewords:   []Codeword{"1111", "0000"},
			wantBytes:   []byte{0xf0},
			wantPadding: 0,
			wantLen:     8,
		},
		{
			name:        "spans byte boundary",
			codewords:   []Codeword{"0100110010", "0111"},
			wantBytes:   []byte{0x4c, 0x9c},
			wantPadding: 2,
			wantLen:     14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewBitPacker(0)
			for _, c := range tt.codewords {
				if err := p.AppendBits(c); err != nil {
					t.Fatalf("AppendBits(%q) error = %v", c, err)
				}
			}
			got, padding := p.Bytes()
			if !bytes.Equal(got, tt.wantBytes) {
				t.Errorf("Bytes() = %x, want %x", got, tt.wantBytes)
			}
			if padding != tt.wantPadding {
				t.Errorf("padding = %d, want %d", padding, tt.wantPadding)
			}
			if p.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", p.Len(), tt.wantLen)
			}
			if (p.Len()+padding)%8 != 0 {
				t.Errorf("bits plus padding = %d, not byte aligned", p.Len()+padding)
			}
		})
	}
}

func TestBitPacker_AppendBit(t *testing.T) {
	p := NewBitPacker(16)
	for _, bit := range []bool{true, false, false, true, true, true, true, true, true} {
		p.AppendBit(bit)
	}
	got, padding := p.Bytes()
	if want := []byte{0x9f, 0x80}; !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %x, want %x", got, want)
	}
	if padding != 7 {
		t.Errorf("padding = %d, want 7", padding)
	}
}

func TestBitPacker_InvalidCodeword(t *testing.T) {
	p := NewBitPacker(0)
	err := p.AppendBits("01x")
	if !errors.Is(err, ErrInvalidCodeword) {
		t.Errorf("AppendBits(\"01x\") error = %v, want ErrInvalidCodeword", err)
	}
}

func TestBitPacker_BytesIsACopy(t *testing.T) {
	p := NewBitPacker(8)
	p.AppendBit(true)
	first, _ := p.Bytes()
	first[0] = 0

	second, _ := p.Bytes()
	if second[0] != 0x80 {
		t.Errorf("mutating returned bytes changed the packer: %x", second)
	}
}

func TestBitUnpacker_ReadBit(t *testing.T) {
	u := NewBitUnpacker([]byte{0xa5, 0x01})
	want := []bool{
		true, false, true, false, false, true, false, true,
		false, false, false, false, false, false, false, true,
	}

	for i, w := range want {
		if u.Exhausted() {
			t.Fatalf("exhausted after %d bits", i)
		}
		if u.Remaining() != len(want)-i {
			t.Errorf("Remaining() = %d before bit %d, want %d", u.Remaining(), i, len(want)-i)
		}
		got, err := u.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit() at %d error = %v", i, err)
		}
		if got != w {
			t.Errorf("bit %d = %v, want %v", i, got, w)
		}
	}

	if !u.Exhausted() {
		t.Error("expected unpacker to be exhausted")
	}
	if _, err := u.ReadBit(); err != io.EOF {
		t.Errorf("ReadBit() past end error = %v, want io.EOF", err)
	}
}

func TestBitUnpacker_Empty(t *testing.T) {
	u := NewBitUnpacker(nil)
	if !u.Exhausted() {
		t.Error("empty unpacker should be exhausted")
	}
	if _, err := u.ReadBit(); err != io.EOF {
		t.Errorf("ReadBit() error = %v, want io.EOF", err)
	}
}

func TestBitRoundTrip(t *testing.T) {
	codewords := []Codeword{"1", "01", "110", "0000000", "1111111111", "0"}

	p := NewBitPacker(0)
	var want []bool
	for _, c := range codewords {
		if err := p.AppendBits(c); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < len(c); i++ {
			want = append(want, c[i] == '1')
		}
	}
	packed, padding := p.Bytes()

	u := NewBitUnpacker(packed)
	for i, w := range want {
		got, err := u.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit() at %d error = %v", i, err)
		}
		if got != w {
			t.Fatalf("bit %d = %v, want %v", i, got, w)
		}
	}
	if u.Remaining() != padding {
		t.Errorf("Remaining() = %d after payload, want padding %d", u.Remaining(), padding)
	}
	for !u.Exhausted() {
		if bit, _ := u.ReadBit(); bit {
			t.Error("padding bit is not zero")
		}
	}
}
