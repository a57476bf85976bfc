package huffman

import "fmt"

// Encode writes data as a container using table. Every symbol in data must
// have a codeword in table, otherwise ErrIncompleteCodeTable is returned.
// A nil table covers no symbols.
func Encode(data []byte, table *CodeTable) ([]byte, error) {
	if len(data) == 0 {
		return emptyContainer(), nil
	}
	if table == nil {
		return nil, fmt.Errorf("%w: no code table given", ErrIncompleteCodeTable)
	}

	p := NewBitPacker(len(data) * 8)
	for i, s := range data {
		cw, ok := table.Codeword(s)
		if !ok {
			return nil, fmt.Errorf("%w: symbol 0x%02x at offset %d", ErrIncompleteCodeTable, s, i)
		}
		if err := p.AppendBits(cw); err != nil {
			return nil, err
		}
	}
	payload, padding := p.Bytes()

	out := make([]byte, 0, headerSize+table.Len()*3+len(payload))
	out = append(out, byte(padding))
	out = appendTable(out, table)
	out = append(out, payload...)
	return out, nil
}
