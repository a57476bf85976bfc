package huffman

import "iter"

// Symbol is one unit of the input alphabet. Inputs are treated as raw bytes so
// that every byte string survives a round trip, including invalid UTF-8.
type Symbol = byte

// FrequencyTable maps symbols to their occurrence counts.
// Symbols are kept in the order they were first seen in the input.
type FrequencyTable struct {
	order  []Symbol
	counts [256]int
	total  int
}

// CountFrequencies scans data and returns its frequency table.
// An empty input yields an empty table.
func CountFrequencies(data []byte) *FrequencyTable {
	ft := &FrequencyTable{}
	for _, b := range data {
		ft.add(b)
	}
	return ft
}

func (ft *FrequencyTable) add(s Symbol) {
	if ft.counts[s] == 0 {
		ft.order = append(ft.order, s)
	}
	ft.counts[s]++
	ft.total++
}

// Len returns the number of distinct symbols.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Total returns the sum of all counts, which equals the input length.
func (ft *FrequencyTable) Total() int {
	return ft.total
}

// Count returns how often s occurred.
func (ft *FrequencyTable) Count(s Symbol) int {
	return ft.counts[s]
}

// Symbols returns the distinct symbols in first-seen order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.order))
	copy(out, ft.order)
	return out
}

// All iterates over (symbol, count) pairs in first-seen order.
func (ft *FrequencyTable) All() iter.Seq2[Symbol, int] {
	return func(yield func(Symbol, int) bool) {
		for _, s := range ft.order {
			if !yield(s, ft.counts[s]) {
				return
			}
		}
	}
}
