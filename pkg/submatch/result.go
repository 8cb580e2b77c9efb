package submatch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/OpenTraceLab/netmatch/pkg/gateindex"
	"github.com/OpenTraceLab/netmatch/pkg/netlist"
)

// Match is one complete, validated embedding of a pattern into a design: a
// total mapping from every pattern gate to a distinct design gate, plus the
// boundary bindings discovered while confirming it (which design net feeds
// each pattern input). The design driver of each pattern output is resolved
// from these on demand by DesignDriverOfOutputBit.
type Match struct {
	pattern *PatternInfo

	cellMapping map[netlist.Cell]netlist.Cell // pattern cell -> design cell
	boundary    map[BoundaryKey]HaystackSrc
}

// CellMapping returns a copy of the pattern-gate-to-design-gate mapping.
func (m *Match) CellMapping() map[netlist.Cell]netlist.Cell {
	cp := make(map[netlist.Cell]netlist.Cell, len(m.cellMapping))
	for k, v := range m.cellMapping {
		cp[k] = v
	}
	return cp
}

// DesignSourceOfInputBit reports which design cell/bit feeds the named
// pattern input at the given bit, as observed in this match. ok is false if
// the name is unknown or that boundary bit was never constrained (the
// pattern input exists but the match never needed to read it).
func (m *Match) DesignSourceOfInputBit(name string, bit int) (cell netlist.Cell, cellBit int, ok bool) {
	c, known := m.pattern.inputsByName[name]
	if !known {
		return nil, 0, false
	}
	src, bound := m.boundary[BoundaryKey{Cell: c, Bit: bit}]
	if !bound {
		return nil, 0, false
	}
	return src.Cell, src.Bit, true
}

// DesignDriverOfOutputBit reports which design cell/bit drives the named
// pattern output at the given bit: the design gate mapped from the pattern
// gate driving it, or the design source bound to the pattern boundary bit
// driving it. ok is false for an unknown name, an out-of-range bit, or an
// output driven by a constant or an unmapped/unbound source.
func (m *Match) DesignDriverOfOutputBit(name string, bit int) (cell netlist.Cell, cellBit int, ok bool) {
	c, known := m.pattern.outputsByName[name]
	if !known {
		return nil, 0, false
	}
	pins := netlist.ExtractPins(c)
	if bit < 0 || bit >= len(pins.Inputs) {
		return nil, 0, false
	}

	src := pins.Inputs[bit].Src
	switch src.Tag {
	case netlist.TagGate:
		d, mapped := m.cellMapping[src.Cell]
		if !mapped {
			return nil, 0, false
		}
		return d, src.Bit, true
	case netlist.TagIo:
		hs, bound := m.boundary[BoundaryKey{Cell: src.Cell, Bit: src.Bit}]
		if !bound {
			return nil, 0, false
		}
		return hs.Cell, hs.Bit, true
	default:
		return nil, 0, false
	}
}

// PatternInputs returns the pattern's declared input names in declaration
// order.
func (m *Match) PatternInputs() []string { return m.pattern.Inputs() }

// PatternOutputs returns the pattern's declared output names in declaration
// order.
func (m *Match) PatternOutputs() []string { return m.pattern.Outputs() }

// Result is the outcome of one FindSubgraphs call: every distinct embedding
// found, alongside the pattern and design cell slices the caller supplied,
// for convenience when reporting matches back to a human.
type Result struct {
	Pattern []netlist.Cell
	Design  []netlist.Cell
	Matches []Match
}

// assemble builds a Match from a search path that has reached st.done().
func assemble(pattern *PatternInfo, needleIdx, haystackIdx *gateindex.Index, st *state) Match {
	cellMapping := make(map[netlist.Cell]netlist.Cell, len(st.mapping))
	for p, d := range st.mapping {
		cellMapping[needleIdx.Cell(p)] = haystackIdx.Cell(d)
	}

	boundary := make(map[BoundaryKey]HaystackSrc, len(st.boundary))
	for k, v := range st.boundary {
		boundary[k] = v
	}

	return Match{pattern: pattern, cellMapping: cellMapping, boundary: boundary}
}

// dedupSignature is the stable, pairing-order-independent identity of a
// completed search path: the design NodeId mapped to each pattern NodeId,
// in pattern-NodeId order, followed by every boundary binding as
// (pattern cell index, bit, design cell index, bit), sorted. Two search
// paths landing on the same signature are the same embedding reached by
// different search orders (for example via a needle or design
// automorphism) and must be reported only once.
func dedupSignature(needleGateCount int, st *state) string {
	var b strings.Builder
	for p := gateindex.NodeId(0); p < gateindex.NodeId(needleGateCount); p++ {
		if p > 0 {
			b.WriteByte(',')
		}
		d := st.mapping[p]
		fmt.Fprintf(&b, "%d", d)
	}
	bindings := make([]string, 0, len(st.boundary))
	for k, v := range st.boundary {
		bindings = append(bindings, fmt.Sprintf("%d:%d:%d:%d", k.Cell.Index(), k.Bit, v.Cell.Index(), v.Bit))
	}
	slices.Sort(bindings)
	for _, e := range bindings {
		b.WriteByte(';')
		b.WriteString(e)
	}
	return b.String()
}
