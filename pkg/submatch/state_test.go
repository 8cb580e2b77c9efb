package submatch

import (
	"testing"

	"github.com/OpenTraceLab/netmatch/pkg/gateindex"
)

func TestMapUnmapRoundTrip(t *testing.T) {
	st := newState(2)
	p, d := gateindex.NodeId(0), gateindex.NodeId(5)

	if st.isMapped(p) || st.isUsedDesign(d) {
		t.Fatalf("fresh state should have nothing mapped")
	}

	st.mapPair(p, d)
	if !st.isMapped(p) || !st.isUsedDesign(d) {
		t.Fatalf("expected p and d to be mapped/used after mapPair")
	}
	got, ok := st.mappedTo(p)
	if !ok || got != d {
		t.Fatalf("mappedTo(p) = (%d, %v), want (%d, true)", got, ok, d)
	}

	st.unmapPair(p, d)
	if st.isMapped(p) || st.isUsedDesign(d) {
		t.Fatalf("expected p and d to be unmapped after unmapPair")
	}
}

func TestDoneReportsWhenFullyMapped(t *testing.T) {
	st := newState(2)
	if st.done() {
		t.Fatalf("empty state with target 2 should not be done")
	}
	st.mapPair(0, 0)
	if st.done() {
		t.Fatalf("state with 1/2 mapped should not be done")
	}
	st.mapPair(1, 1)
	if !st.done() {
		t.Fatalf("state with 2/2 mapped should be done")
	}
}

func TestBoundaryInsertAndRemoveKeys(t *testing.T) {
	st := newState(1)
	key1 := BoundaryKey{Cell: nil, Bit: 0}
	key2 := BoundaryKey{Cell: nil, Bit: 1}

	if !st.boundaryInsert(key1, HaystackSrc{Bit: 10}) {
		t.Fatalf("expected first insert of key1 to report newly inserted")
	}
	if st.boundaryInsert(key1, HaystackSrc{Bit: 99}) {
		t.Fatalf("expected re-insert of an already-bound key to report not newly inserted")
	}
	got, ok := st.boundaryGet(key1)
	if !ok || got.Bit != 10 {
		t.Fatalf("boundaryGet(key1) = (%+v, %v), want the original binding", got, ok)
	}

	if !st.boundaryInsert(key2, HaystackSrc{Bit: 20}) {
		t.Fatalf("expected first insert of key2 to report newly inserted")
	}

	st.boundaryRemoveKeys([]BoundaryKey{key2})
	if _, ok := st.boundaryGet(key2); ok {
		t.Fatalf("expected key2 to be unbound after boundaryRemoveKeys")
	}
	if _, ok := st.boundaryGet(key1); !ok {
		t.Fatalf("expected key1 to remain bound after removing only key2")
	}
}
