// huffpack - Huffman-pack a file
//
// Usage:
//
//	huffpack [-f input] [-o output] [-stats] [-dump] [-shards n]
//
// Reads the input (stdin by default), writes the packed bitstream (stdout by
// default), and optionally reports sizes and the code table on stderr.  No
// header is written: the output cannot be unpacked without the code.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/klauspost/compress/huff0"

	"github.com/chronos-tachyon/huffpack"
)

var (
	f      = flag.String("f", "", "input file")
	o      = flag.String("o", "", "output file")
	stats  = flag.Bool("stats", false, "report sizes on stderr")
	dump   = flag.Bool("dump", false, "dump the code table on stderr")
	shards = flag.Int("shards", 1, "number of goroutines used to count symbols")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffpack: ")
	flag.Parse()

	data, err := readInput()
	if err != nil {
		log.Fatalln(err)
	}

	var e huffpack.Encoder
	e.Init(huffpack.CountFrequenciesParallel(data, *shards))

	output, closeOutput, err := openOutput()
	if err != nil {
		log.Fatalln(err)
	}
	numBits, err := e.EncodeTo(output, data)
	if err == nil {
		err = closeOutput()
	}
	if err != nil {
		log.Fatalln(err)
	}

	if *dump {
		table := e.Table()
		if _, err := table.Dump(os.Stderr); err != nil {
			log.Fatalln(err)
		}
	}
	if *stats {
		log.Printf("input:  %d bytes", len(data))
		log.Printf("output: %d bits, %d bytes", numBits, (numBits+7)/8)
		log.Printf("codes:  %d .. %d bits", e.MinSize(), e.MaxSize())
		log.Printf("huff0:  %d bytes", huff0Size(data))
	}
}

func readInput() ([]byte, error) {
	if *f == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(*f)
}

func openOutput() (io.Writer, func() error, error) {
	if *o == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(*o)
	if err != nil {
		return nil, nil, err
	}
	return file, file.Close, nil
}

// huff0Size returns the size of data compressed block by block with huff0,
// as a baseline.  Blocks which huff0 declines to compress are counted at
// their raw size, and single-symbol blocks at one byte.
func huff0Size(data []byte) int {
	s := &huff0.Scratch{Reuse: huff0.ReusePolicyNone}
	var total int
	for len(data) > 0 {
		n := len(data)
		if n > huff0.BlockSizeMax {
			n = huff0.BlockSizeMax
		}
		block := data[:n]
		data = data[n:]

		out, _, err := huff0.Compress1X(block, s)
		switch {
		case err == nil:
			total += len(out)
		case errors.Is(err, huff0.ErrUseRLE):
			total++
		case errors.Is(err, huff0.ErrIncompressible):
			total += len(block)
		default:
			log.Printf("huff0: %v", err)
			total += len(block)
		}
	}
	return total
}
