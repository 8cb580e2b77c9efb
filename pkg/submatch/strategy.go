package submatch

import (
	"github.com/OpenTraceLab/netmatch/pkg/gateindex"
	"github.com/OpenTraceLab/netmatch/pkg/netlist"
)

// nextCandidate picks the next needle gate to extend the partial solution
// with: the lowest-NodeId unmapped gate whose every Gate-sourced input is
// already mapped (fully constrained, so compat can prune immediately via
// the "already-mapped source must match" clause), falling back to the
// lowest-NodeId unmapped gate if none is fully constrained yet.
func nextCandidate(needleIdx *gateindex.Index, st *state) (gateindex.NodeId, bool) {
	n := needleIdx.GateCount()

	fullyConstrained := gateindex.NodeId(-1)
	lowestUnmapped := gateindex.NodeId(-1)

	for id := gateindex.NodeId(0); id < gateindex.NodeId(n); id++ {
		if st.isMapped(id) {
			continue
		}
		if lowestUnmapped < 0 {
			lowestUnmapped = id
		}
		if fullyConstrained < 0 && allGateSourcesMapped(needleIdx, st, id) {
			fullyConstrained = id
			break
		}
	}

	if fullyConstrained >= 0 {
		return fullyConstrained, true
	}
	if lowestUnmapped >= 0 {
		return lowestUnmapped, true
	}
	return 0, false
}

func allGateSourcesMapped(needleIdx *gateindex.Index, st *state, id gateindex.NodeId) bool {
	for _, ps := range needleIdx.PinsOf(id).Inputs {
		if ps.Src.Tag != netlist.TagGate {
			continue
		}
		srcNode, ok := needleIdx.NodeOf(ps.Src.Cell)
		if !ok || !st.isMapped(srcNode) {
			return false
		}
	}
	return true
}
