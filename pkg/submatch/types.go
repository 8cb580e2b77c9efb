package submatch

import "github.com/OpenTraceLab/netmatch/pkg/netlist"

// PinRef names a single bit of a cell: (cell, bit). It underlies the three
// named map types below — BoundaryKey keys a pattern boundary pin,
// HaystackSrc names the haystack source realizing one, and OutputBit keys a
// pattern output pin. They share a representation because a "bit of a
// cell" is the same shape in every role; the distinct names document
// intent at each call site.
type PinRef struct {
	Cell netlist.Cell
	Bit  int
}

// BoundaryKey identifies one bit of a pattern (needle) boundary cell.
type BoundaryKey = PinRef

// HaystackSrc identifies the haystack source (gate or boundary cell, plus
// bit) realizing a boundary binding or output driver.
type HaystackSrc = PinRef

// OutputBit identifies one bit of a pattern (needle) Output cell.
type OutputBit = PinRef

// defaultCommutativeKinds is the canonical commutative-kind set: gates
// whose input pins are interchangeable, so pin compatibility sorts under a
// stable key before comparing rather than requiring positional identity.
func defaultCommutativeKinds() map[netlist.CellKind]bool {
	return map[netlist.CellKind]bool{
		netlist.KindAnd: true,
		netlist.KindOr:  true,
		netlist.KindXor: true,
		netlist.KindEq:  true,
	}
}

// Matcher runs FindSubgraphs/FindSubgraphsParallel. The zero value is not
// usable; construct one with NewMatcher.
type Matcher struct {
	commutative map[netlist.CellKind]bool
}

// Option configures a Matcher built by NewMatcher.
type Option func(*Matcher)

// WithCommutativeKinds overrides the default commutative-kind set
// ({And, Or, Xor, Eq}). Callers needing a richer per-kind swap-permutation
// scheme should layer that above this engine; this option only widens or
// narrows which kinds get the default stable-sort treatment.
func WithCommutativeKinds(kinds map[netlist.CellKind]bool) Option {
	return func(m *Matcher) {
		cp := make(map[netlist.CellKind]bool, len(kinds))
		for k, v := range kinds {
			cp[k] = v
		}
		m.commutative = cp
	}
}

// NewMatcher constructs a Matcher with the default commutative-kind set,
// or the set supplied via WithCommutativeKinds.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{commutative: defaultCommutativeKinds()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
