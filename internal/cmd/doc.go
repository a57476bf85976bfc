// Package cmd provides the command-line interface implementation for huffpack.
//
// This package contains all the subcommand implementations for the huffpack CLI tool.
// It uses the Cobra library for command structure and Fang for beautiful styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - compress: Huffman-encode files into .bin containers
//   - decompress: Restore files from .bin containers
//   - inspect: Show the header and code table of a container
//   - validate: Decode every container under a directory and report failures
//   - freq: Print the symbol frequency table of a file
//   - seed: Generate sample text files for exercising the codec
//   - version: Print build information
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command. File I/O lives here; the huffman package only
// ever sees byte slices.
package cmd
