package huffpack

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrNotPrefixFree is returned by CodeTable.Validate when one codeword is a
// prefix of another.
var ErrNotPrefixFree = errors.New("huffpack: code is not prefix-free")

// CodeTable maps each Symbol to its codeword.  Symbols that are not in the
// tree map to the empty Code, as does the only symbol of a single-leaf tree.
type CodeTable [NumSymbols]Code

// BuildCodeTable walks the tree rooted at root and records the path to every
// leaf, appending '0' for each left branch and '1' for each right branch.  A
// nil root yields an all-empty table.
func BuildCodeTable(root Node) CodeTable {
	var table CodeTable
	if root == nil {
		return table
	}

	type stackItem struct {
		node Node
		path Code
	}

	stack := make([]stackItem, 0, log2uint32(NumSymbols)+1)
	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		switch x := item.node.(type) {
		case *Leaf:
			table[x.symbol] = item.path
		case *Internal:
			// Push right first so that the left subtree is walked first.
			stack = append(stack,
				stackItem{x.right, item.path + "1"},
				stackItem{x.left, item.path + "0"})
		default:
			panic(fmt.Errorf("unknown Node type %T", item.node))
		}
	}
	return table
}

// Lookup returns the codeword for the given symbol.
func (table *CodeTable) Lookup(symbol Symbol) Code {
	return table[symbol]
}

// SizeBySymbol returns the codeword length of each Symbol.
func (table *CodeTable) SizeBySymbol() []int {
	out := make([]int, NumSymbols)
	for symbol := range table {
		out[symbol] = table[symbol].Size()
	}
	return out
}

// Cost returns the number of bits needed to encode input with the given
// histogram, i.e. the sum of each symbol's count times its codeword length.
func (table *CodeTable) Cost(ft FrequencyTable) uint64 {
	var sum uint64
	for symbol := range table {
		sum += ft[symbol] * uint64(table[symbol].Size())
	}
	return sum
}

// Validate checks that no non-empty codeword is a prefix of another.
func (table *CodeTable) Validate() error {
	codes := make([]string, 0, NumSymbols)
	for _, hc := range table {
		if hc != "" {
			codes = append(codes, string(hc))
		}
	}
	sort.Strings(codes)

	// In sorted order, a word that prefixes any other word also prefixes
	// its immediate successor.
	for i := 1; i < len(codes); i++ {
		a, b := Code(codes[i-1]), Code(codes[i])
		if b.HasPrefix(a) {
			return fmt.Errorf("%w: %s is a prefix of %s", ErrNotPrefixFree, a, b)
		}
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Symbols without a codeword are omitted.
func (table *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol := range table {
		hc := table[symbol]
		if hc == "" {
			continue
		}
		fmt.Fprintf(&buf, "\t%q = %s\n", rune(symbol), hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
