package huffpack_test

import (
	"fmt"

	"github.com/chronos-tachyon/huffpack"
)

func Example() {
	input := []byte("aaaAAA8")

	root := huffpack.BuildTree(input)
	table := huffpack.BuildCodeTable(root)
	bits := huffpack.EncodeBits(input, table)
	packed, err := huffpack.PackBits(bits)
	if err != nil {
		panic(err)
	}

	fmt.Println(bits)
	fmt.Printf("%#v\n", packed)
	// Output:
	// 00011111110
	// []byte{0x1f, 0xc0}
}

func ExamplePack() {
	packed, err := huffpack.Pack([]byte("aab"))
	if err != nil {
		panic(err)
	}
	fmt.Println(packed)
	// Output:
	// [192]
}
