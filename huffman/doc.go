// Package huffman implements the Huffman codec used by huffpack.
//
// The package is a pure transformation layer: it never touches the filesystem
// and never logs. Callers hand it a fully materialized byte slice and get a
// self-contained container back, or the reverse.
//
// Key Components:
//
// Frequency Analysis:
//   - FrequencyTable counts byte symbols in first-seen order
//   - The order feeds the deterministic tie-break of the tree builder
//
// Code Construction:
//   - BuildCodeTable runs the greedy min-merge over a container/heap queue
//   - Ties are broken by comparing member lists (symbol, then codeword)
//   - A single distinct symbol is assigned the 1-bit codeword "0"
//
// Bit I/O:
//   - BitPacker appends bits MSB-first and pads the last byte with zeros
//   - BitUnpacker reads bits MSB-first and reports io.EOF when exhausted
//
// Container Format:
//   - 1 byte padding count (0-7)
//   - big-endian uint16 entry count, then (symbol, length, packed bits) records
//   - payload bytes with the padding bits at the end
//
// Compress and Decompress are safe to call from multiple goroutines as long as
// the input slices are not mutated while a call is in flight.
package huffman
