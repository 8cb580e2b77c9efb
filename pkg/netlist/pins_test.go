package netlist

import "testing"

// fakeCell and fakeNet are the smallest possible Cell/Net implementation,
// used only to exercise ExtractPins/Classify in isolation. pkg/netfixture
// and pkg/netsexp provide the real fixture-building implementations.
type fakeCell struct {
	kind   CellKind
	name   string
	idx    int
	inputs []Net
}

func (c *fakeCell) Kind() CellKind { return c.kind }
func (c *fakeCell) Name() string   { return c.name }
func (c *fakeCell) Inputs() []Net  { return c.inputs }
func (c *fakeCell) Index() int     { return c.idx }

type fakeNet struct {
	driver Cell
	bit    int
	isConst bool
	trit   Trit
	invalid bool
}

func (n fakeNet) Resolve() (Cell, int, bool) {
	if n.invalid || n.isConst {
		return nil, 0, false
	}
	return n.driver, n.bit, true
}

func (n fakeNet) Const() (Trit, bool) {
	if n.invalid || !n.isConst {
		return 0, false
	}
	return n.trit, true
}

func gateNet(c Cell, bit int) Net { return fakeNet{driver: c, bit: bit} }
func constNet(t Trit) Net         { return fakeNet{isConst: true, trit: t} }
func invalidNet() Net             { return fakeNet{invalid: true} }

func TestIsGatePartitionsKinds(t *testing.T) {
	gates := []CellKind{KindAnd, KindOr, KindXor, KindNot, KindNand, KindNor, KindXnor,
		KindAdd, KindSub, KindMul, KindEq, KindNeq, KindLt, KindLe, KindGt, KindGe,
		KindShl, KindShr, KindSshr, KindMux, KindDff, KindDffe, KindAdff}
	boundary := []CellKind{KindInput, KindOutput, KindMem, KindIoBuf, KindTarget,
		KindName, KindDebug, KindAssert, KindOther}

	for _, k := range gates {
		if !IsGate(k) {
			t.Errorf("expected %v to be a gate kind", k)
		}
	}
	for _, k := range boundary {
		if IsGate(k) {
			t.Errorf("expected %v to be a boundary kind", k)
		}
	}
}

func TestClassifyUnknownFallsBackToOther(t *testing.T) {
	c := &fakeCell{kind: CellKind(9999)}
	if got := Classify(c); got != KindOther {
		t.Fatalf("Classify(unknown) = %v, want KindOther", got)
	}
}

func TestExtractPinsGateSource(t *testing.T) {
	driver := &fakeCell{kind: KindAnd, name: "g1", idx: 1}
	g := &fakeCell{
		kind: KindOr,
		name: "g2",
		idx:  2,
		inputs: []Net{
			gateNet(driver, 0),
		},
	}

	pins := ExtractPins(g)
	if pins.Kind != KindOr {
		t.Fatalf("Kind = %v, want KindOr", pins.Kind)
	}
	if len(pins.Inputs) != 1 {
		t.Fatalf("len(Inputs) = %d, want 1", len(pins.Inputs))
	}
	src := pins.Inputs[0].Src
	if src.Tag != TagGate || src.Cell != driver || src.Bit != 0 {
		t.Fatalf("Src = %+v, want GateSource(driver, 0)", src)
	}
}

func TestExtractPinsIoSource(t *testing.T) {
	boundary := &fakeCell{kind: KindInput, name: "a", idx: 1}
	g := &fakeCell{
		kind:   KindAnd,
		inputs: []Net{gateNet(boundary, 3)},
	}

	pins := ExtractPins(g)
	src := pins.Inputs[0].Src
	if src.Tag != TagIo || src.Cell != boundary || src.Bit != 3 {
		t.Fatalf("Src = %+v, want IoSource(boundary, 3)", src)
	}
}

func TestExtractPinsConstSource(t *testing.T) {
	g := &fakeCell{kind: KindMux, inputs: []Net{constNet(TX)}}
	pins := ExtractPins(g)
	src := pins.Inputs[0].Src
	if src.Tag != TagConst || src.Trit != TX {
		t.Fatalf("Src = %+v, want ConstSource(TX)", src)
	}
}

func TestExtractPinsInvalidNetNeverSilentlyMatched(t *testing.T) {
	g := &fakeCell{kind: KindAnd, inputs: []Net{invalidNet()}}
	pins := ExtractPins(g)
	if pins.Inputs[0].Src.IsValid() {
		t.Fatalf("expected invalid source for a net with neither a driver nor a constant")
	}
}

func TestTritEquality(t *testing.T) {
	if T0 == T1 {
		t.Fatalf("T0 should not equal T1")
	}
	if TX != TX {
		t.Fatalf("TX should equal itself")
	}
	if TX == TZ {
		t.Fatalf("TX should not equal TZ")
	}
}
