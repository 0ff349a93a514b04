package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder holds a Huffman code built from a FrequencyTable, ready to encode
// input with the same distribution.
type Encoder struct {
	root    Node
	codes   CodeTable
	minSize int
	maxSize int
}

// NewEncoder is a convenience function that constructs an Encoder for the
// histogram of data.
func NewEncoder(data []byte) *Encoder {
	e := new(Encoder)
	e.Init(CountFrequencies(data))
	return e
}

// Init initializes this Encoder.  Symbols with a frequency of 0 are left out
// of the code, and may not be passed to Encode.
func (e *Encoder) Init(frequencies FrequencyTable) {
	root := BuildTreeFromFrequencies(frequencies)
	codes := BuildCodeTable(root)

	var minSize, maxSize int
	var hasMinMax bool
	for symbol := range codes {
		if frequencies[symbol] == 0 {
			continue
		}
		size := codes[symbol].Size()
		if !hasMinMax {
			hasMinMax = true
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	*e = Encoder{
		root:    root,
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Tree returns the root of the Huffman tree, or nil if the code is empty.
func (e *Encoder) Tree() Node {
	return e.root
}

// Table returns the code table.
func (e *Encoder) Table() CodeTable {
	return e.codes
}

// Encode returns the codeword for a Symbol.
func (e *Encoder) Encode(symbol Symbol) Code {
	hc := e.codes[symbol]
	assert.Assertf(hc != "" || e.isSingleLeaf(symbol), "Encode: symbol %d is not in the code", symbol)
	return hc
}

// EncodeBits returns the concatenated codewords for data.
func (e *Encoder) EncodeBits(data []byte) string {
	return EncodeBits(data, e.codes)
}

// EncodeTo writes the packed encoding of data to w, and returns the number of
// bits written, not counting padding.
func (e *Encoder) EncodeTo(w io.Writer, data []byte) (int, error) {
	return EncodeTo(w, data, e.codes)
}

// MinSize is the bit length of the shortest codeword.
func (e *Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest codeword.
func (e *Encoder) MaxSize() int {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.
func (e *Encoder) SizeBySymbol() []int {
	return e.codes.SizeBySymbol()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := Symbol(0); ; symbol++ {
		if e.codes[symbol] != "" || e.isSingleLeaf(symbol) {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.codes[symbol])
		}
		if symbol == MaxSymbol {
			break
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (e *Encoder) isSingleLeaf(symbol Symbol) bool {
	leaf, ok := e.root.(*Leaf)
	return ok && leaf.symbol == symbol
}
