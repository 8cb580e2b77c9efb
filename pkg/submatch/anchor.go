package submatch

import (
	"github.com/OpenTraceLab/netmatch/pkg/gateindex"
	"github.com/OpenTraceLab/netmatch/pkg/netlist"
)

// selectAnchor picks the single kind the search seeds from: the shared
// CellKind with the fewest haystack occurrences (rarest-in-haystack),
// ties broken by CellKind's numeric ordering. The needle side is
// canonicalized to its single lowest NodeId of that kind, so the whole
// search is seeded from one needle gate; every haystack gate of the
// chosen kind is tried as a candidate partner for it.
//
// ok is false when the needle and haystack share no gate kind at all, in
// which case the caller should report zero matches without searching.
func selectAnchor(needleIdx, haystackIdx *gateindex.Index) (kind netlist.CellKind, needleAnchor gateindex.NodeId, haystackAnchors []gateindex.NodeId, ok bool) {
	bestCount := -1

	for k, needleNodes := range needleIdx.ByKind {
		if len(needleNodes) == 0 {
			continue
		}
		haystackNodes, shared := haystackIdx.ByKind[k]
		if !shared || len(haystackNodes) == 0 {
			continue
		}

		count := len(haystackNodes)
		better := bestCount < 0 || count < bestCount || (count == bestCount && k < kind)
		if better {
			bestCount = count
			kind = k
		}
	}

	if bestCount < 0 {
		return 0, 0, nil, false
	}

	needleNodes := needleIdx.ByKind[kind]
	lowest := needleNodes[0]
	for _, n := range needleNodes[1:] {
		if n < lowest {
			lowest = n
		}
	}

	return kind, lowest, haystackIdx.ByKind[kind], true
}
