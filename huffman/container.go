package huffman

import (
	"encoding/binary"
	"fmt"
)

const (
	// headerSize is the padding byte plus the uint16 entry count.
	headerSize = 3
	// maxEntries is one entry per possible byte value.
	maxEntries = 256
)

// Info describes a container without decoding its payload.
type Info struct {
	Padding     int         `json:"padding"`
	Entries     []CodeEntry `json:"entries"`
	HeaderSize  int         `json:"header_size"`
	PayloadSize int         `json:"payload_size"`
	PayloadBits int         `json:"payload_bits"`
	Size        int         `json:"size"`
}

type container struct {
	padding    int
	table      *CodeTable
	headerSize int
	payload    []byte
}

// emptyContainer is what an input with no symbols encodes to.
func emptyContainer() []byte {
	return []byte{0, 0, 0}
}

func appendTable(buf []byte, ct *CodeTable) []byte {
	buf = binary.BigEndian.AppendUint16(buf, uint16(ct.Len()))
	for _, e := range ct.entries {
		p := NewBitPacker(len(e.Codeword))
		// codewords in a built table are always binary
		_ = p.AppendBits(e.Codeword)
		packed, _ := p.Bytes()
		buf = append(buf, e.Symbol, byte(len(e.Codeword)))
		buf = append(buf, packed...)
	}
	return buf
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedContainer, fmt.Sprintf(format, args...))
}

// parseContainer splits data into header fields, code table and payload and
// checks that they are consistent with each other.
func parseContainer(data []byte) (container, error) {
	if len(data) < headerSize {
		return container{}, malformed("need at least %d header bytes, got %d", headerSize, len(data))
	}
	padding := int(data[0])
	if padding > 7 {
		return container{}, malformed("padding count %d out of range", padding)
	}
	count := int(binary.BigEndian.Uint16(data[1:3]))
	if count > maxEntries {
		return container{}, malformed("code table declares %d entries", count)
	}

	pos := headerSize
	entries := make([]CodeEntry, 0, count)
	seen := make(map[Symbol]bool, count)
	for i := range count {
		if len(data)-pos < 2 {
			return container{}, malformed("code table entry %d truncated", i)
		}
		sym, n := data[pos], int(data[pos+1])
		pos += 2
		if n == 0 {
			return container{}, malformed("symbol 0x%02x has an empty codeword", sym)
		}
		if seen[sym] {
			return container{}, malformed("symbol 0x%02x listed twice", sym)
		}
		seen[sym] = true

		nb := (n + 7) / 8
		if len(data)-pos < nb {
			return container{}, malformed("codeword for symbol 0x%02x truncated", sym)
		}
		cw, err := unpackCodeword(data[pos:pos+nb], n)
		if err != nil {
			return container{}, malformed("symbol 0x%02x: %v", sym, err)
		}
		pos += nb
		entries = append(entries, CodeEntry{Symbol: sym, Codeword: cw})
	}

	ct := newCodeTable(entries)
	if !ct.IsPrefixFree() {
		return container{}, malformed("code table is not prefix-free")
	}

	payload := data[pos:]
	switch {
	case count == 0 && (len(payload) > 0 || padding != 0):
		return container{}, malformed("payload present without a code table")
	case count > 0 && len(payload) == 0:
		return container{}, malformed("code table present without a payload")
	case len(payload) > 0 && payload[len(payload)-1]&(1<<padding-1) != 0:
		return container{}, malformed("padding bits are not zero")
	}

	return container{
		padding:    padding,
		table:      ct,
		headerSize: pos,
		payload:    payload,
	}, nil
}

// unpackCodeword reads n bits from packed and requires the fill bits of the
// last byte to be zero.
func unpackCodeword(packed []byte, n int) (Codeword, error) {
	u := NewBitUnpacker(packed)
	cw := make([]byte, n)
	for i := range cw {
		bit, _ := u.ReadBit()
		cw[i] = '0'
		if bit {
			cw[i] = '1'
		}
	}
	for !u.Exhausted() {
		if bit, _ := u.ReadBit(); bit {
			return "", fmt.Errorf("non-zero fill bits after %d-bit codeword", n)
		}
	}
	return Codeword(cw), nil
}

// Inspect parses the container header and code table and reports their
// layout. The payload is validated structurally but not decoded.
func Inspect(data []byte) (Info, error) {
	c, err := parseContainer(data)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Padding:     c.padding,
		Entries:     c.table.Entries(),
		HeaderSize:  c.headerSize,
		PayloadSize: len(c.payload),
		PayloadBits: len(c.payload)*8 - c.padding,
		Size:        len(data),
	}, nil
}
