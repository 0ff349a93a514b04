package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree.  It is either a *Leaf or an *Internal.
//
// Weight is the number of occurrences covered by the subtree, and
// Representative is the smallest Symbol found in any of its leaves; the pair
// determines the node's position in a PriorityList.
//
type Node interface {
	Weight() uint64
	Representative() Symbol

	isNode()
}

// Leaf is a Node holding exactly one Symbol.
type Leaf struct {
	weight uint64
	symbol Symbol
}

// NewLeaf constructs a Leaf.
func NewLeaf(weight uint64, symbol Symbol) *Leaf {
	return &Leaf{weight: weight, symbol: symbol}
}

// Weight returns the number of occurrences of this leaf's symbol.
func (leaf *Leaf) Weight() uint64 {
	return leaf.weight
}

// Representative returns this leaf's symbol.
func (leaf *Leaf) Representative() Symbol {
	return leaf.symbol
}

// Symbol returns this leaf's symbol.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// String returns a short description of this leaf.
func (leaf *Leaf) String() string {
	return fmt.Sprintf("Leaf(%d, %q)", leaf.weight, rune(leaf.symbol))
}

func (*Leaf) isNode() {}

// Internal is a Node joining two subtrees.
type Internal struct {
	weight   uint64
	tiebreak Symbol
	left     Node
	right    Node
}

// Merge joins two nodes into a new Internal node.  The new node's weight is
// the sum of the two weights, and its representative is the smaller of the
// two representatives.  Neither argument is modified.
func Merge(left Node, right Node) *Internal {
	assert.Assertf(left != nil, "Merge: left is nil")
	assert.Assertf(right != nil, "Merge: right is nil")
	return &Internal{
		weight:   left.Weight() + right.Weight(),
		tiebreak: minSymbol(left.Representative(), right.Representative()),
		left:     left,
		right:    right,
	}
}

// Weight returns the total weight of both subtrees.
func (n *Internal) Weight() uint64 {
	return n.weight
}

// Representative returns the smallest symbol in this subtree.
func (n *Internal) Representative() Symbol {
	return n.tiebreak
}

// Left returns the subtree reached by a '0' bit.
func (n *Internal) Left() Node {
	return n.left
}

// Right returns the subtree reached by a '1' bit.
func (n *Internal) Right() Node {
	return n.right
}

// String returns a short description of this node.
func (n *Internal) String() string {
	return fmt.Sprintf("Internal(%d, %q)", n.weight, rune(n.tiebreak))
}

func (*Internal) isNode() {}

var (
	_ Node         = (*Leaf)(nil)
	_ Node         = (*Internal)(nil)
	_ fmt.Stringer = (*Leaf)(nil)
	_ fmt.Stringer = (*Internal)(nil)
)

// Less reports whether a sorts before b: by weight ascending, then by
// representative symbol ascending.  Nodes that agree on both are not less
// than each other.
func Less(a Node, b Node) bool {
	aw, bw := a.Weight(), b.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.Representative() < b.Representative()
}

// Dump writes a programmer-readable, indented dump of the tree rooted at root
// to the given writer.  A nil root is written as "<nil>".
func Dump(w io.Writer, root Node) (int64, error) {
	var buf bytes.Buffer
	if root == nil {
		buf.WriteString("<nil>\n")
		return buf.WriteTo(w)
	}

	type stackItem struct {
		node  Node
		depth int
		path  string
	}

	stack := []stackItem{{node: root}}
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack = stack[:last]

		indent := strings.Repeat("\t", item.depth)
		switch x := item.node.(type) {
		case *Leaf:
			fmt.Fprintf(&buf, "%s%s %s\n", indent, Code(item.path), x)
		case *Internal:
			fmt.Fprintf(&buf, "%s%s %s\n", indent, Code(item.path), x)
			stack = append(stack,
				stackItem{x.right, item.depth + 1, item.path + "1"},
				stackItem{x.left, item.depth + 1, item.path + "0"})
		default:
			panic(fmt.Errorf("unknown Node type %T", item.node))
		}
	}
	return buf.WriteTo(w)
}
