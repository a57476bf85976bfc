package huffman

import (
	"container/heap"
	"strings"
)

// Codeword is a bit string written as '0' and '1' characters.
type Codeword string

// CodeEntry pairs a symbol with its assigned codeword.
type CodeEntry struct {
	Symbol   Symbol   `json:"symbol"`
	Codeword Codeword `json:"codeword"`
}

// CodeTable is an immutable prefix-free mapping from symbols to codewords.
type CodeTable struct {
	entries []CodeEntry
	index   map[Symbol]Codeword
}

func newCodeTable(entries []CodeEntry) *CodeTable {
	ct := &CodeTable{
		entries: entries,
		index:   make(map[Symbol]Codeword, len(entries)),
	}
	for _, e := range entries {
		ct.index[e.Symbol] = e.Codeword
	}
	return ct
}

// Len returns the number of symbols in the table.
func (ct *CodeTable) Len() int {
	return len(ct.entries)
}

// Codeword returns the codeword assigned to s.
func (ct *CodeTable) Codeword(s Symbol) (Codeword, bool) {
	c, ok := ct.index[s]
	return c, ok
}

// Entries returns a copy of the table in assignment order.
func (ct *CodeTable) Entries() []CodeEntry {
	out := make([]CodeEntry, len(ct.entries))
	copy(out, ct.entries)
	return out
}

// MaxLen returns the length of the longest codeword.
func (ct *CodeTable) MaxLen() int {
	longest := 0
	for _, e := range ct.entries {
		longest = max(longest, len(e.Codeword))
	}
	return longest
}

// WeightedLength returns the number of payload bits needed to encode an
// input with the given frequencies. Symbols missing from the table count as 0.
func (ct *CodeTable) WeightedLength(ft *FrequencyTable) int {
	total := 0
	for s, n := range ft.All() {
		total += n * len(ct.index[s])
	}
	return total
}

// IsPrefixFree reports whether no codeword is a prefix of another.
func (ct *CodeTable) IsPrefixFree() bool {
	for i, a := range ct.entries {
		for j, b := range ct.entries {
			if i != j && strings.HasPrefix(string(b.Codeword), string(a.Codeword)) {
				return false
			}
		}
	}
	return true
}

// Equal reports whether both tables hold the same entries in the same order.
func (ct *CodeTable) Equal(other *CodeTable) bool {
	if ct.Len() != other.Len() {
		return false
	}
	for i := range ct.entries {
		if ct.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// queueEntry is a partial tree during construction. members is never
// modified after the entry is created; merges build a fresh slice.
type queueEntry struct {
	weight  int
	members []CodeEntry
}

// less orders by weight, then by the member lists compared element-wise
// (symbol first, then codeword). A shorter list that is a prefix of the
// other sorts first.
func (a *queueEntry) less(b *queueEntry) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	for i := 0; i < len(a.members) && i < len(b.members); i++ {
		am, bm := a.members[i], b.members[i]
		if am.Symbol != bm.Symbol {
			return am.Symbol < bm.Symbol
		}
		if am.Codeword != bm.Codeword {
			return am.Codeword < bm.Codeword
		}
	}
	return len(a.members) < len(b.members)
}

type entryQueue []*queueEntry

func (q entryQueue) Len() int           { return len(q) }
func (q entryQueue) Less(i, j int) bool { return q[i].less(q[j]) }
func (q entryQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *entryQueue) Push(x any)        { *q = append(*q, x.(*queueEntry)) }
func (q *entryQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// prefixed returns a copy of members with bit prepended to every codeword.
func prefixed(members []CodeEntry, bit byte) []CodeEntry {
	out := make([]CodeEntry, len(members))
	for i, m := range members {
		out[i] = CodeEntry{Symbol: m.Symbol, Codeword: Codeword(string(bit) + string(m.Codeword))}
	}
	return out
}

// BuildCodeTable derives a Huffman code from the frequency table.
// It returns ErrEmptyInput when the table is nil or has no symbols. The result depends
// only on the counts and their first-seen order.
func BuildCodeTable(ft *FrequencyTable) (*CodeTable, error) {
	if ft == nil {
		return nil, ErrEmptyInput
	}
	switch ft.Len() {
	case 0:
		return nil, ErrEmptyInput
	case 1:
		// The merge loop never runs for a lone symbol, so it would be left
		// with an empty codeword that cannot be written or read back.
		return newCodeTable([]CodeEntry{{Symbol: ft.order[0], Codeword: "0"}}), nil
	}

	pq := make(entryQueue, 0, ft.Len())
	for s, n := range ft.All() {
		pq = append(pq, &queueEntry{weight: n, members: []CodeEntry{{Symbol: s}}})
	}
	heap.Init(&pq)

	for pq.Len() > 1 {
		zero := heap.Pop(&pq).(*queueEntry)
		one := heap.Pop(&pq).(*queueEntry)

		members := make([]CodeEntry, 0, len(zero.members)+len(one.members))
		members = append(members, prefixed(zero.members, '0')...)
		members = append(members, prefixed(one.members, '1')...)
		heap.Push(&pq, &queueEntry{weight: zero.weight + one.weight, members: members})
	}
	root := heap.Pop(&pq).(*queueEntry)
	return newCodeTable(root.members), nil
}
