package gateindex

import (
	"testing"

	"github.com/OpenTraceLab/netmatch/pkg/netlist"
)

type testCell struct {
	kind   netlist.CellKind
	name   string
	idx    int
	inputs []netlist.Net
}

func (c *testCell) Kind() netlist.CellKind { return c.kind }
func (c *testCell) Name() string           { return c.name }
func (c *testCell) Inputs() []netlist.Net  { return c.inputs }
func (c *testCell) Index() int             { return c.idx }

type testNet struct {
	driver netlist.Cell
	bit    int
}

func (n testNet) Resolve() (netlist.Cell, int, bool) { return n.driver, n.bit, true }
func (n testNet) Const() (netlist.Trit, bool)        { return 0, false }

func TestBuildSkipsBoundaryCells(t *testing.T) {
	in := &testCell{kind: netlist.KindInput, name: "a", idx: 0}
	g1 := &testCell{kind: netlist.KindAnd, name: "g1", idx: 1, inputs: []netlist.Net{testNet{in, 0}, testNet{in, 0}}}
	out := &testCell{kind: netlist.KindOutput, name: "y", idx: 2, inputs: []netlist.Net{testNet{g1, 0}}}

	idx := Build([]netlist.Cell{in, g1, out})

	if idx.GateCount() != 1 {
		t.Fatalf("GateCount() = %d, want 1", idx.GateCount())
	}
	if _, ok := idx.NodeOf(in); ok {
		t.Fatalf("boundary cell %q should not be indexed", in.Name())
	}
	if _, ok := idx.NodeOf(out); ok {
		t.Fatalf("boundary cell %q should not be indexed", out.Name())
	}
	id, ok := idx.NodeOf(g1)
	if !ok || id != 0 {
		t.Fatalf("NodeOf(g1) = (%d, %v), want (0, true)", id, ok)
	}
	if idx.Kind(id) != netlist.KindAnd {
		t.Fatalf("Kind(0) = %v, want KindAnd", idx.Kind(id))
	}
}

func TestBuildAssignsDenseIdsInEncounterOrder(t *testing.T) {
	g1 := &testCell{kind: netlist.KindAnd, name: "g1"}
	g2 := &testCell{kind: netlist.KindOr, name: "g2"}
	g3 := &testCell{kind: netlist.KindAnd, name: "g3"}

	idx := Build([]netlist.Cell{g1, g2, g3})

	id1, _ := idx.NodeOf(g1)
	id2, _ := idx.NodeOf(g2)
	id3, _ := idx.NodeOf(g3)
	if id1 != 0 || id2 != 1 || id3 != 2 {
		t.Fatalf("ids = %d,%d,%d, want 0,1,2", id1, id2, id3)
	}

	ands := idx.ByKind[netlist.KindAnd]
	if len(ands) != 2 || ands[0] != id1 || ands[1] != id3 {
		t.Fatalf("ByKind[And] = %v, want [%d %d]", ands, id1, id3)
	}
}

func TestBuildEmptyDesign(t *testing.T) {
	idx := Build(nil)
	if idx.GateCount() != 0 {
		t.Fatalf("GateCount() = %d, want 0", idx.GateCount())
	}
}
