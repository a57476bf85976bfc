package huffman

import "fmt"

// Decode reconstructs the original bytes from a container produced by Encode.
//
// Bits are accumulated until they spell a known codeword, at which point the
// symbol is emitted and the accumulator starts over. Leftover bits after the
// last non-padding bit, or an accumulator longer than any codeword, mean the
// payload is corrupt.
func Decode(data []byte) ([]byte, error) {
	c, err := parseContainer(data)
	if err != nil {
		return nil, err
	}
	if c.table.Len() == 0 {
		return []byte{}, nil
	}

	lookup := make(map[Codeword]Symbol, c.table.Len())
	for _, e := range c.table.entries {
		lookup[e.Codeword] = e.Symbol
	}
	maxLen := c.table.MaxLen()

	total := len(c.payload)*8 - c.padding
	u := NewBitUnpacker(c.payload)
	out := make([]byte, 0, total/maxLen+1)
	current := make([]byte, 0, maxLen)
	for i := range total {
		bit, err := u.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("%w: bit %d: %v", ErrCorruptPayload, i, err)
		}
		if bit {
			current = append(current, '1')
		} else {
			current = append(current, '0')
		}

		if s, ok := lookup[Codeword(current)]; ok {
			out = append(out, s)
			current = current[:0]
			continue
		}
		if len(current) >= maxLen {
			return nil, fmt.Errorf("%w: bits ending at %d match no codeword", ErrCorruptPayload, i)
		}
	}
	if len(current) > 0 {
		return nil, fmt.Errorf("%w: %d trailing bits match no codeword", ErrCorruptPayload, len(current))
	}
	return out, nil
}
