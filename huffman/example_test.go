package huffman_test

import (
	"fmt"

	"github.com/dendrascience/dendra-huffman/huffman"
)

// ExampleCompress shows a full compress/decompress cycle.
func ExampleCompress() {
	container, err := huffman.Compress([]byte("abacabad"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("container: %d bytes\n", len(container))

	original, err := huffman.Decompress(container)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(original))

	// Output:
	// container: 17 bytes
	// abacabad
}

// ExampleBuildCodeTable prints the codewords assigned to each symbol.
func ExampleBuildCodeTable() {
	ft := huffman.CountFrequencies([]byte("abacabad"))
	table, err := huffman.BuildCodeTable(ft)
	if err != nil {
		panic(err)
	}
	for _, e := range table.Entries() {
		fmt.Printf("%c %d %s\n", e.Symbol, ft.Count(e.Symbol), e.Codeword)
	}
	fmt.Println("payload bits:", table.WeightedLength(ft))

	// Output:
	// a 4 0
	// b 2 10
	// c 1 110
	// d 1 111
	// payload bits: 14
}

// ExampleInspect reads the header of a container without decoding it.
func ExampleInspect() {
	container, _ := huffman.Compress([]byte("aaaa"))
	info, err := huffman.Inspect(container)
	if err != nil {
		panic(err)
	}
	fmt.Println("padding:", info.Padding)
	fmt.Println("entries:", len(info.Entries))
	fmt.Println("payload bits:", info.PayloadBits)

	// Output:
	// padding: 4
	// entries: 1
	// payload bits: 4
}
