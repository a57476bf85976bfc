// Package main provides the huffpack command-line interface.
//
// huffpack is a lossless file compressor built on Huffman prefix coding. It
// derives a code from the byte frequencies of a file, packs the coded stream
// into a self-contained container, and restores the original bytes exactly.
//
// The main binary supports multiple subcommands:
//   - compress: Compress files (or the file named in config.json) into .bin containers
//   - decompress: Restore files from .bin containers
//   - inspect: Show the header and code table of a container
//   - validate: Decode every container under a directory
//   - freq: Print the byte frequency table of a file
//   - seed: Generate sample text files
package main
