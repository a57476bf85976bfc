package huffman

import "errors"

// Sentinel errors for package huffman.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Input errors
	ErrEmptyInput = errors.New("input contains no symbols")

	// Container errors
	ErrMalformedContainer = errors.New("malformed container")
	ErrCorruptPayload     = errors.New("corrupt payload")

	// Code table errors
	ErrIncompleteCodeTable = errors.New("code table does not cover input symbol")
	ErrInvalidCodeword     = errors.New("codeword must contain only '0' and '1'")
)
