package huffman

// Compress encodes data into a self-contained container. An empty input
// produces the empty container, which decompresses to an empty slice.
func Compress(data []byte) ([]byte, error) {
	ft := CountFrequencies(data)
	if ft.Len() == 0 {
		return emptyContainer(), nil
	}
	table, err := BuildCodeTable(ft)
	if err != nil {
		return nil, err
	}
	return Encode(data, table)
}

// Decompress returns the bytes a container was built from.
func Decompress(data []byte) ([]byte, error) {
	return Decode(data)
}
