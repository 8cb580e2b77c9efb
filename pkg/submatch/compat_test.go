package submatch

import (
	"testing"

	"github.com/OpenTraceLab/netmatch/pkg/gateindex"
	"github.com/OpenTraceLab/netmatch/pkg/netlist"
)

func TestCompatibleConstSources(t *testing.T) {
	p := mkGate(netlist.KindMux, constWire(netlist.TX))
	d := mkGate(netlist.KindMux, constWire(netlist.TX))
	needleIdx := gateindex.Build([]netlist.Cell{p})
	haystackIdx := gateindex.Build([]netlist.Cell{d})

	st := newState(1)
	pid, _ := needleIdx.NodeOf(p)
	did, _ := haystackIdx.NodeOf(d)
	if !compatible(st, needleIdx, haystackIdx, defaultCommutativeKinds(), pid, did) {
		t.Fatalf("expected matching constant sources to be compatible")
	}

	d2 := mkGate(netlist.KindMux, constWire(netlist.T0))
	haystackIdx2 := gateindex.Build([]netlist.Cell{d2})
	did2, _ := haystackIdx2.NodeOf(d2)
	if compatible(st, needleIdx, haystackIdx2, defaultCommutativeKinds(), pid, did2) {
		t.Fatalf("expected mismatched constant sources to be incompatible")
	}
}

func TestCompatibleGateSourceRequiresConsistentMapping(t *testing.T) {
	pa := mkInput("pa")
	pg1 := mkGate(netlist.KindNot, wire(pa, 0))
	pg2 := mkGate(netlist.KindNot, wire(pg1, 0))
	needleIdx := gateindex.Build([]netlist.Cell{pa, pg1, pg2})

	da := mkInput("da")
	dg1 := mkGate(netlist.KindNot, wire(da, 0))
	dg2 := mkGate(netlist.KindNot, wire(dg1, 0))
	dgAlt := mkGate(netlist.KindNot, wire(da, 0))
	otherNot := mkGate(netlist.KindNot, wire(dgAlt, 0))
	haystackIdx := gateindex.Build([]netlist.Cell{da, dg1, dg2, dgAlt, otherNot})

	pg1ID, _ := needleIdx.NodeOf(pg1)
	pg2ID, _ := needleIdx.NodeOf(pg2)
	dg1ID, _ := haystackIdx.NodeOf(dg1)
	dg2ID, _ := haystackIdx.NodeOf(dg2)
	otherID, _ := haystackIdx.NodeOf(otherNot)

	st := newState(2)
	st.mapPair(pg1ID, dg1ID)

	if !compatible(st, needleIdx, haystackIdx, defaultCommutativeKinds(), pg2ID, dg2ID) {
		t.Fatalf("expected pg2 -> dg2 to be compatible once pg1 -> dg1 is mapped")
	}
	if compatible(st, needleIdx, haystackIdx, defaultCommutativeKinds(), pg2ID, otherID) {
		t.Fatalf("expected pg2 -> otherNot to be incompatible: its source gate does not map to the mapped pg1")
	}
}

func TestCompatibleIoBoundaryBinding(t *testing.T) {
	pa := mkInput("pa")
	pg := mkGate(netlist.KindAnd, wire(pa, 0), wire(pa, 0))
	needleIdx := gateindex.Build([]netlist.Cell{pa, pg})

	da := mkInput("da")
	db := mkInput("db")
	dg := mkGate(netlist.KindAnd, wire(da, 0), wire(db, 0))
	haystackIdx := gateindex.Build([]netlist.Cell{da, db, dg})

	pgID, _ := needleIdx.NodeOf(pg)
	dgID, _ := haystackIdx.NodeOf(dg)

	st := newState(1)
	key := BoundaryKey{Cell: pa, Bit: 0}
	st.boundaryInsert(key, HaystackSrc{Cell: da, Bit: 0})

	if compatible(st, needleIdx, haystackIdx, defaultCommutativeKinds(), pgID, dgID) {
		t.Fatalf("expected incompatible: pa is already bound to da, but dg's second input is db")
	}
}
