package submatch

import (
	"slices"

	"github.com/OpenTraceLab/netmatch/pkg/gateindex"
	"github.com/OpenTraceLab/netmatch/pkg/netlist"
)

// pinPair is one corresponding (needle-source, haystack-source) pair after
// arity checking and, for commutative kinds, stable sorting.
type pinPair struct {
	needleSrc   netlist.Source
	haystackSrc netlist.Source
}

// pinPairs checks kind and arity for (p, d) and returns their per-pin
// source pairs, stably sorted under commutativeKey when the shared kind is
// commutative. ok is false on a kind or arity mismatch, in which case pairs
// is nil and the candidate is incompatible regardless of sources.
func pinPairs(needleIdx, haystackIdx *gateindex.Index, commutative map[netlist.CellKind]bool, p, d gateindex.NodeId) (pairs []pinPair, ok bool) {
	pp := needleIdx.PinsOf(p)
	dp := haystackIdx.PinsOf(d)

	if pp.Kind != dp.Kind {
		return nil, false
	}
	if len(pp.Inputs) != len(dp.Inputs) {
		return nil, false
	}

	needleSrcs := sourcesOf(pp)
	haystackSrcs := sourcesOf(dp)
	if commutative[pp.Kind] {
		needleSrcs = sortedSources(needleSrcs)
		haystackSrcs = sortedSources(haystackSrcs)
	}

	pairs = make([]pinPair, len(needleSrcs))
	for i := range needleSrcs {
		pairs[i] = pinPair{needleSrc: needleSrcs[i], haystackSrc: haystackSrcs[i]}
	}
	return pairs, true
}

func sourcesOf(pins netlist.CellPins) []netlist.Source {
	out := make([]netlist.Source, len(pins.Inputs))
	for i, ps := range pins.Inputs {
		out[i] = ps.Src
	}
	return out
}

// sourceKey is the stable, iteration-order-independent total ordering used
// to canonicalize a commutative gate's pin list before comparison: primary
// tag Const < Io < Gate, secondary by the driving cell's debug index,
// tertiary by bit, with constants further ordered by trit value.
type sourceKey struct {
	tag     int
	cellIdx int
	bit     int
	trit    int
}

func keyOf(s netlist.Source) sourceKey {
	switch s.Tag {
	case netlist.TagConst:
		return sourceKey{tag: 0, trit: int(s.Trit)}
	case netlist.TagIo:
		return sourceKey{tag: 1, cellIdx: s.Cell.Index(), bit: s.Bit}
	case netlist.TagGate:
		return sourceKey{tag: 2, cellIdx: s.Cell.Index(), bit: s.Bit}
	default:
		// Invalid sources sort last; they are never compatible with
		// anything regardless of position (see sourcePairCompatible).
		return sourceKey{tag: 3}
	}
}

func compareKeys(a, b sourceKey) int {
	if a.tag != b.tag {
		return a.tag - b.tag
	}
	if a.cellIdx != b.cellIdx {
		return a.cellIdx - b.cellIdx
	}
	if a.bit != b.bit {
		return a.bit - b.bit
	}
	return a.trit - b.trit
}

func sortedSources(srcs []netlist.Source) []netlist.Source {
	cp := slices.Clone(srcs)
	slices.SortStableFunc(cp, func(a, b netlist.Source) int {
		return compareKeys(keyOf(a), keyOf(b))
	})
	return cp
}

// compatible implements the structural predicate of §4.5: kind, arity,
// commutative canonicalization, then pairwise source compatibility under
// the current partial mapping and boundary binding.
func compatible(st *state, needleIdx, haystackIdx *gateindex.Index, commutative map[netlist.CellKind]bool, p, d gateindex.NodeId) bool {
	pairs, ok := pinPairs(needleIdx, haystackIdx, commutative, p, d)
	if !ok {
		return false
	}
	for _, pr := range pairs {
		if !sourcePairCompatible(st, needleIdx, haystackIdx, pr.needleSrc, pr.haystackSrc) {
			return false
		}
	}
	return true
}

// sourcePairCompatible decides whether a single (needle-source,
// haystack-source) pair is admissible under the current state, per the
// pairing table in §4.5:
//
//	Const/Const:  compatible iff equal trit
//	Gate/Gate:    if the needle source's gate is already mapped, the
//	              haystack source must be that same mapped gate at the
//	              same bit; otherwise no present constraint
//	Io/{Io,Gate}: compatible unless a prior boundary binding contradicts
//	              the haystack source observed here
//	every other cross-kind pairing, or any invalid source: incompatible
func sourcePairCompatible(st *state, needleIdx, haystackIdx *gateindex.Index, pSrc, dSrc netlist.Source) bool {
	if !pSrc.IsValid() || !dSrc.IsValid() {
		return false
	}

	switch pSrc.Tag {
	case netlist.TagConst:
		return dSrc.Tag == netlist.TagConst && pSrc.Trit == dSrc.Trit

	case netlist.TagGate:
		if dSrc.Tag != netlist.TagGate {
			return false
		}
		// A TagGate source is only ever produced by netlist.ExtractPins
		// for a cell classified as a gate, so this lookup always
		// succeeds for a well-formed needle index.
		pNode, ok := needleIdx.NodeOf(pSrc.Cell)
		if !ok {
			return false
		}
		mapped, isMapped := st.mappedTo(pNode)
		if !isMapped {
			return true
		}
		dNode, ok := haystackIdx.NodeOf(dSrc.Cell)
		if !ok {
			return false
		}
		return dNode == mapped && pSrc.Bit == dSrc.Bit

	case netlist.TagIo:
		if dSrc.Tag != netlist.TagIo && dSrc.Tag != netlist.TagGate {
			return false
		}
		key := BoundaryKey{Cell: pSrc.Cell, Bit: pSrc.Bit}
		existing, bound := st.boundaryGet(key)
		if !bound {
			return true
		}
		return existing.Cell == dSrc.Cell && existing.Bit == dSrc.Bit

	default:
		return false
	}
}
