// Package huffpack builds Huffman prefix codes over the 256-symbol byte
// alphabet and packs Huffman-coded input into a bitstream.
//
// The pipeline is:
//
//     CountFrequencies → BaseList → PriorityList.Sort → CoalesceAll
//         → BuildCodeTable → EncodeBits → PackBits
//
// BuildTree runs the first four steps, and Pack runs all of them.  Tree
// construction is fully deterministic: ties between equal weights are broken
// by the smallest symbol contained in each subtree.
//
// No header is written alongside the packed bits, so the output cannot be
// decoded without the tree and the original bit length.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
