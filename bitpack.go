package huffpack

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
)

// ErrInvalidBit is returned by PackBits when the bit string contains a
// character other than '0' or '1'.
var ErrInvalidBit = errors.New("huffpack: invalid bit")

// EncodeBits concatenates the codewords of each byte of data, in input order.
// Bytes whose codeword is empty contribute nothing.
func EncodeBits(data []byte, table CodeTable) string {
	var sb strings.Builder
	for _, b := range data {
		sb.WriteString(string(table[b]))
	}
	return sb.String()
}

// PackBits packs a string of '0' and '1' characters into bytes, most
// significant bit first.  A final partial byte is padded with '0' bits, so
// the output holds ceil(len(bits)/8) bytes.
func PackBits(bits string) ([]byte, error) {
	for i := 0; i < len(bits); i++ {
		if ch := bits[i]; ch != '0' && ch != '1' {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, ch, i)
		}
	}

	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	bw := bitio.NewWriter(&buf)
	if err := writeCode(bw, Code(bits)); err != nil {
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackBits expands packed bytes back into a string of '0' and '1'
// characters, most significant bit first.  Padding bits are included.
func UnpackBits(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 8)
	br := bitio.NewReader(bytes.NewReader(data))
	for {
		bit, err := br.ReadBool()
		if err != nil {
			break
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// EncodeTo writes the packed encoding of data to w.  It returns the number
// of bits encoded, not counting padding.
func EncodeTo(w io.Writer, data []byte, table CodeTable) (int, error) {
	bw := bitio.NewWriter(w)
	var numBits int
	for _, b := range data {
		hc := table[b]
		if err := writeCode(bw, hc); err != nil {
			return numBits, err
		}
		numBits += hc.Size()
	}
	if err := bw.Close(); err != nil {
		return numBits, err
	}
	return numBits, nil
}

// Pack runs the whole pipeline: it builds the Huffman code for data, encodes
// data with it, and packs the result.
func Pack(data []byte) ([]byte, error) {
	table := BuildCodeTable(BuildTree(data))
	var buf bytes.Buffer
	if _, err := EncodeTo(&buf, data, table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCode(bw *bitio.Writer, hc Code) error {
	for i := 0; i < len(hc); i++ {
		if err := bw.WriteBool(hc[i] == '1'); err != nil {
			return err
		}
	}
	return nil
}
