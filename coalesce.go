package huffpack

import (
	"errors"
)

// ErrUnderflow is returned by CoalesceOnce when the list holds fewer than two
// entries.
var ErrUnderflow = errors.New("huffpack: priority list has fewer than 2 entries")

// CoalesceOnce merges the two front entries of a sorted list into one
// Internal node, the first entry becoming its left child, and inserts the
// result back into the remainder of the list.
func CoalesceOnce(l PriorityList) (PriorityList, error) {
	if l.Len() < 2 {
		return l, ErrUnderflow
	}
	merged := Merge(l.nodes[0], l.nodes[1])
	rest := PriorityList{nodes: l.nodes[2:]}
	return rest.Insert(merged), nil
}

// CoalesceAll repeatedly merges the two lowest entries of a sorted list until
// only one remains, and returns that entry's tree.  It returns nil for an
// empty list, and the sole entry, unchanged, for a list of length 1.
func CoalesceAll(l PriorityList) Node {
	switch l.Len() {
	case 0:
		return nil
	case 1:
		return l.nodes[0]
	}

	// Same result as calling CoalesceOnce until one entry remains.
	nodes := cloneNodes(l.nodes, 0)
	for len(nodes) > 1 {
		merged := Merge(nodes[0], nodes[1])
		nodes[0], nodes[1] = nil, nil
		nodes = insertNode(nodes[2:], merged)
	}
	return nodes[0]
}

// BuildTree constructs the Huffman tree for the given input.  Only symbols
// which occur in data become leaves, so the result is nil for empty input and
// a single *Leaf when only one distinct byte value occurs.
func BuildTree(data []byte) Node {
	return BuildTreeFromFrequencies(CountFrequencies(data))
}

// BuildTreeFromFrequencies is like BuildTree, but starts from an existing
// histogram.
func BuildTreeFromFrequencies(ft FrequencyTable) Node {
	return CoalesceAll(BaseList(ft).Sort().Prune())
}

// BuildFullTree is like BuildTree, but keeps a leaf for every one of the
// NumSymbols symbols, including those with a weight of zero, so that every
// byte value is assigned a codeword.
func BuildFullTree(data []byte) Node {
	return CoalesceAll(BaseList(CountFrequencies(data)).Sort())
}
