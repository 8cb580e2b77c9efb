package submatch

import "github.com/OpenTraceLab/netmatch/pkg/netlist"

// fakeCell and fakeNet mirror pkg/netlist's own test doubles: the smallest
// Cell/Net implementation that can exercise a search without going through
// a real fixture loader.
type fakeCell struct {
	kind   netlist.CellKind
	name   string
	idx    int
	inputs []netlist.Net
}

func (c *fakeCell) Kind() netlist.CellKind { return c.kind }
func (c *fakeCell) Name() string           { return c.name }
func (c *fakeCell) Inputs() []netlist.Net  { return c.inputs }
func (c *fakeCell) Index() int             { return c.idx }

type fakeNet struct {
	driver  netlist.Cell
	bit     int
	isConst bool
	trit    netlist.Trit
}

func (n fakeNet) Resolve() (netlist.Cell, int, bool) {
	if n.isConst {
		return nil, 0, false
	}
	return n.driver, n.bit, true
}

func (n fakeNet) Const() (netlist.Trit, bool) {
	if !n.isConst {
		return 0, false
	}
	return n.trit, true
}

func wire(c netlist.Cell, bit int) netlist.Net { return fakeNet{driver: c, bit: bit} }
func constWire(t netlist.Trit) netlist.Net     { return fakeNet{isConst: true, trit: t} }

var nextIdx int

func freshIdx() int {
	nextIdx++
	return nextIdx
}

func mkInput(name string) *fakeCell {
	return &fakeCell{kind: netlist.KindInput, name: name, idx: freshIdx()}
}

func mkOutput(name string, in netlist.Net) *fakeCell {
	return &fakeCell{kind: netlist.KindOutput, name: name, idx: freshIdx(), inputs: []netlist.Net{in}}
}

func mkGate(kind netlist.CellKind, ins ...netlist.Net) *fakeCell {
	return &fakeCell{kind: kind, idx: freshIdx(), inputs: ins}
}

// buildSingleFF returns a pattern with one declared input, one D flip-flop,
// and one declared output driven by the flip-flop.
func buildSingleFF() []netlist.Cell {
	d := mkInput("D")
	ff := mkGate(netlist.KindDff, wire(d, 0))
	q := mkOutput("Q", wire(ff, 0))
	return []netlist.Cell{d, ff, q}
}

// buildChain returns a design with n D flip-flops wired in series, preceded
// by one declared input and followed by one declared output, e.g. for n=3:
// IN -> ff0 -> ff1 -> ff2 -> OUT.
func buildChain(n int) []netlist.Cell {
	in := mkInput("IN")
	cells := []netlist.Cell{in}

	var prev netlist.Cell = in
	for i := 0; i < n; i++ {
		ff := mkGate(netlist.KindDff, wire(prev, 0))
		cells = append(cells, ff)
		prev = ff
	}

	out := mkOutput("OUT", wire(prev, 0))
	cells = append(cells, out)
	return cells
}

// buildCommutativeAnd returns a 2-input AND gate pattern with declared
// inputs A and B in a fixed order, for exercising commutative dedup against
// a design that wires the same two inputs in the opposite order.
func buildCommutativeAnd(aFirst bool) []netlist.Cell {
	a := mkInput("A")
	b := mkInput("B")
	var g *fakeCell
	if aFirst {
		g = mkGate(netlist.KindAnd, wire(a, 0), wire(b, 0))
	} else {
		g = mkGate(netlist.KindAnd, wire(b, 0), wire(a, 0))
	}
	y := mkOutput("Y", wire(g, 0))
	return []netlist.Cell{a, b, g, y}
}
