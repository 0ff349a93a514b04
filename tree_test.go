package huffpack

import (
	"strings"
	"testing"
)

func TestLess(t *testing.T) {
	type testRow struct {
		name   string
		a, b   Node
		expect bool
	}

	testData := [...]testRow{
		{name: "lighter", a: NewLeaf(5, 'a'), b: NewLeaf(10, 'b'), expect: true},
		{name: "heavier", a: NewLeaf(10, 'b'), b: NewLeaf(5, 'a'), expect: false},
		{name: "tie-smaller-symbol", a: NewLeaf(10, 'a'), b: NewLeaf(10, 'b'), expect: true},
		{name: "tie-larger-symbol", a: NewLeaf(10, 'b'), b: NewLeaf(10, 'a'), expect: false},
		{name: "leaf-vs-internal", a: NewLeaf(5, 'z'), b: Merge(NewLeaf(5, 'a'), NewLeaf(5, 'b')), expect: true},
		{name: "internal-tie", a: Merge(NewLeaf(1, 'c'), NewLeaf(1, 'b')), b: NewLeaf(2, 'c'), expect: true},
		{name: "identical", a: NewLeaf(10, 'a'), b: NewLeaf(10, 'a'), expect: false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if actual := Less(row.a, row.b); actual != row.expect {
				t.Errorf("Less(%v, %v): expected %v, got %v", row.a, row.b, row.expect, actual)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	left := NewLeaf(3, 'x')
	right := Merge(NewLeaf(1, 'q'), NewLeaf(2, 'z'))
	n := Merge(left, right)

	if n.Weight() != 6 {
		t.Errorf("expected weight 6, got %d", n.Weight())
	}
	if n.Representative() != 'q' {
		t.Errorf("expected representative 'q', got %q", rune(n.Representative()))
	}
	if n.Left() != Node(left) || n.Right() != Node(right) {
		t.Errorf("children were not preserved")
	}
	if left.Weight() != 3 || right.Weight() != 3 {
		t.Errorf("children were modified")
	}
}

func TestDump(t *testing.T) {
	root := BuildTree([]byte("abc"))

	expectDump := strings.Join([]string{
		"\"\" Internal(3, 'a')\n",
		"\t\"0\" Leaf(1, 'c')\n",
		"\t\"1\" Internal(2, 'a')\n",
		"\t\t\"10\" Leaf(1, 'a')\n",
		"\t\t\"11\" Leaf(1, 'b')\n",
	}, "")

	var buf strings.Builder
	_, _ = Dump(&buf, root)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	buf.Reset()
	_, _ = Dump(&buf, nil)
	if actualDump := buf.String(); actualDump != "<nil>\n" {
		t.Errorf("wrong output for nil tree: %q", actualDump)
	}
}
