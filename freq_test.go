package huffpack

import (
	"bytes"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect map[Symbol]uint64
	}

	testData := [...]testRow{
		{name: "empty", input: "", expect: map[Symbol]uint64{}},
		{name: "mixed-case", input: "aaaAAA8", expect: map[Symbol]uint64{'a': 3, 'A': 3, '8': 1}},
		{
			name:   "powers",
			input:  "ddddddddddddddddccccccccbbbbaaff",
			expect: map[Symbol]uint64{'a': 2, 'b': 4, 'c': 8, 'd': 16, 'f': 2},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			ft := CountFrequencies([]byte(row.input))
			for symbol := range ft {
				if expect := row.expect[Symbol(symbol)]; ft[symbol] != expect {
					t.Errorf("symbol %d: expected %d, got %d", symbol, expect, ft[symbol])
				}
			}
			if total := ft.Total(); total != uint64(len(row.input)) {
				t.Errorf("expected total %d, got %d", len(row.input), total)
			}
			if distinct := ft.Distinct(); distinct != len(row.expect) {
				t.Errorf("expected %d distinct symbols, got %d", len(row.expect), distinct)
			}
		})
	}
}

func TestCountRunes(t *testing.T) {
	ft := CountRunes("aé€é")
	if ft['a'] != 1 {
		t.Errorf("expected 1 'a', got %d", ft['a'])
	}
	if ft[0xe9] != 2 {
		t.Errorf("expected 2 U+00E9, got %d", ft[0xe9])
	}
	if total := ft.Total(); total != 3 {
		t.Errorf("expected runes above U+00FF to be ignored, got total %d", total)
	}
}

func TestCountFrequenciesParallel(t *testing.T) {
	input := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\x00\xff"), 97)
	expect := CountFrequencies(input)
	for _, shards := range []int{0, 1, 2, 3, 7, 64, len(input) + 1} {
		if actual := CountFrequenciesParallel(input, shards); actual != expect {
			t.Errorf("shards=%d: histogram differs from CountFrequencies", shards)
		}
	}
}

func TestFrequencyTable_Merge(t *testing.T) {
	a := CountFrequencies([]byte("abc"))
	b := CountFrequencies([]byte("cde"))
	a.Merge(b)
	if expect := CountFrequencies([]byte("abccde")); a != expect {
		t.Errorf("wrong merge result")
	}
}
