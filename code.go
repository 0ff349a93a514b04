package huffpack

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits as a string of '0' and '1' characters.
// The first character is the first bit, i.e. the branch taken at the root of
// the tree.
type Code string

// Size returns the number of bits.
func (hc Code) Size() int {
	return len(hc)
}

// HasPrefix reports whether prefix is a prefix of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
