package huffpack

import (
	"github.com/chronos-tachyon/assert"
)

// PriorityList is an immutable sequence of Huffman trees.  Once sorted, its
// entries are in ascending order according to Less.
//
// The zero value is an empty list.  No method modifies the receiver; methods
// that change the sequence return a new PriorityList.
//
type PriorityList struct {
	nodes []Node
}

// NewPriorityList returns a list holding the given nodes in the given order.
// The slice is copied.
func NewPriorityList(nodes ...Node) PriorityList {
	for i, node := range nodes {
		assert.Assertf(node != nil, "NewPriorityList: nodes[%d] is nil", i)
	}
	return PriorityList{nodes: cloneNodes(nodes, 0)}
}

// BaseList returns one Leaf per Symbol, in symbol order: entry i is the Leaf
// for Symbol i, weighted by ft[i].  The result is not sorted by weight.
func BaseList(ft FrequencyTable) PriorityList {
	nodes := make([]Node, NumSymbols)
	for symbol := range ft {
		nodes[symbol] = NewLeaf(ft[symbol], Symbol(symbol))
	}
	return PriorityList{nodes: nodes}
}

// Len returns the number of entries.
func (l PriorityList) Len() int {
	return len(l.nodes)
}

// At returns the i'th entry.  Indexing past the end of the list is a
// programming error.
func (l PriorityList) At(i int) Node {
	assert.Assertf(i >= 0 && i < len(l.nodes), "PriorityList.At: index %d out of range [0, %d)", i, len(l.nodes))
	return l.nodes[i]
}

// Nodes returns a copy of the entries.
func (l PriorityList) Nodes() []Node {
	return cloneNodes(l.nodes, 0)
}

// IsSorted reports whether no entry is Less than its predecessor.
func (l PriorityList) IsSorted() bool {
	for i := 1; i < len(l.nodes); i++ {
		if Less(l.nodes[i], l.nodes[i-1]) {
			return false
		}
	}
	return true
}

// Insert returns a new list with node placed just before the first entry that
// it is Less than, or at the end if there is no such entry.  If l is sorted,
// so is the result.
func (l PriorityList) Insert(node Node) PriorityList {
	assert.Assertf(node != nil, "PriorityList.Insert: node is nil")
	nodes := cloneNodes(l.nodes, 1)
	return PriorityList{nodes: insertNode(nodes, node)}
}

// Sort returns a sorted copy of the list.
//
// Entries are placed by insertion, from the back of the list to the front:
// each entry is inserted into the already-sorted remainder that follows it.
// As a consequence, entries which are equal under Less come out in the
// reverse of their original order.
//
func (l PriorityList) Sort() PriorityList {
	nodes := make([]Node, 0, len(l.nodes))
	for i := len(l.nodes) - 1; i >= 0; i-- {
		nodes = insertNode(nodes, l.nodes[i])
	}
	return PriorityList{nodes: nodes}
}

// Prune returns a copy of the list without its zero-weight entries.
func (l PriorityList) Prune() PriorityList {
	nodes := make([]Node, 0, len(l.nodes))
	for _, node := range l.nodes {
		if node.Weight() != 0 {
			nodes = append(nodes, node)
		}
	}
	return PriorityList{nodes: nodes}
}

// insertNode inserts node into sorted in place and returns the grown slice.
func insertNode(sorted []Node, node Node) []Node {
	pos := len(sorted)
	for i, existing := range sorted {
		if Less(node, existing) {
			pos = i
			break
		}
	}
	sorted = append(sorted, nil)
	copy(sorted[pos+1:], sorted[pos:])
	sorted[pos] = node
	return sorted
}

func cloneNodes(nodes []Node, extra int) []Node {
	out := make([]Node, len(nodes), len(nodes)+extra)
	copy(out, nodes)
	return out
}
