package huffpack

import (
	"sync"
)

// FrequencyTable holds the number of occurrences of each Symbol, indexed
// directly by symbol value.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies returns the histogram of the given bytes.  Empty input
// yields an all-zero table.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft[b]++
	}
	return ft
}

// CountRunes returns the histogram of the given text, counting each rune by
// its code point.  Runes above MaxSymbol are silently ignored.
func CountRunes(text string) FrequencyTable {
	var ft FrequencyTable
	for _, r := range text {
		if r >= 0 && r <= rune(MaxSymbol) {
			ft[r]++
		}
	}
	return ft
}

// CountFrequenciesParallel is equivalent to CountFrequencies, but splits the
// input into the given number of shards and counts them concurrently.
func CountFrequenciesParallel(data []byte, shards int) FrequencyTable {
	if shards <= 1 || len(data) < shards {
		return CountFrequencies(data)
	}

	partial := make([]FrequencyTable, shards)
	chunk := (len(data) + shards - 1) / shards

	var wg sync.WaitGroup
	for i := 0; i < shards; i++ {
		lo := i * chunk
		if lo >= len(data) {
			break
		}
		hi := lo + chunk
		if hi > len(data) {
			hi = len(data)
		}
		wg.Add(1)
		go func(i int, shard []byte) {
			defer wg.Done()
			partial[i] = CountFrequencies(shard)
		}(i, data[lo:hi])
	}
	wg.Wait()

	var ft FrequencyTable
	for i := range partial {
		ft.Merge(partial[i])
	}
	return ft
}

// Merge adds the counts of other into ft.
func (ft *FrequencyTable) Merge(other FrequencyTable) {
	for symbol := range ft {
		ft[symbol] += other[symbol]
	}
}

// Total returns the sum of all counts.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, n := range ft {
		sum += n
	}
	return sum
}

// Distinct returns the number of symbols with a non-zero count.
func (ft FrequencyTable) Distinct() int {
	var n int
	for _, count := range ft {
		if count != 0 {
			n++
		}
	}
	return n
}
