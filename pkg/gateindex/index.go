package gateindex

import "github.com/OpenTraceLab/netmatch/pkg/netlist"

// NodeId is a dense id assigned only to gate cells of one design, in
// [0, GateCount()).
type NodeId int

// Index is the immutable, per-design bundle of lookup structures the search
// operates over. Boundary cells never appear in any field.
type Index struct {
	Nodes  []netlist.Cell      // Nodes[i] is the gate cell for NodeId(i)
	Kinds  []netlist.CellKind  // Kinds[i] is Nodes[i]'s kind
	Pins   []netlist.CellPins  // Pins[i] is Nodes[i]'s precomputed pin list

	ByKind   map[netlist.CellKind][]NodeId
	CellToID map[netlist.Cell]NodeId
}

// Build scans cells once, assigning a NodeId to every gate-kind cell in
// encounter order and skipping boundary cells entirely. O(cells + pins).
func Build(cells []netlist.Cell) *Index {
	idx := &Index{
		ByKind:   make(map[netlist.CellKind][]NodeId),
		CellToID: make(map[netlist.Cell]NodeId, len(cells)),
	}

	for _, c := range cells {
		if c == nil {
			continue
		}
		kind := netlist.Classify(c)
		if !netlist.IsGate(kind) {
			continue
		}

		id := NodeId(len(idx.Nodes))
		idx.Nodes = append(idx.Nodes, c)
		idx.Kinds = append(idx.Kinds, kind)
		idx.Pins = append(idx.Pins, netlist.ExtractPins(c))
		idx.ByKind[kind] = append(idx.ByKind[kind], id)
		idx.CellToID[c] = id
	}

	return idx
}

// GateCount returns the number of gate cells indexed.
func (idx *Index) GateCount() int { return len(idx.Nodes) }

// Cell returns the host cell for a NodeId.
func (idx *Index) Cell(id NodeId) netlist.Cell { return idx.Nodes[id] }

// Kind returns the CellKind for a NodeId.
func (idx *Index) Kind(id NodeId) netlist.CellKind { return idx.Kinds[id] }

// PinsOf returns the precomputed CellPins for a NodeId.
func (idx *Index) PinsOf(id NodeId) netlist.CellPins { return idx.Pins[id] }

// NodeOf looks up the NodeId for a gate cell. ok is false for boundary
// cells or cells not present in this design.
func (idx *Index) NodeOf(c netlist.Cell) (id NodeId, ok bool) {
	id, ok = idx.CellToID[c]
	return
}

// KindsAndNodes returns the index's (kind, []NodeId) pairs as the ByKind
// map itself. Go map iteration order is unspecified and may differ between
// iterations, so callers that need a stable order over kinds should sort
// the kinds themselves.
func (idx *Index) KindsAndNodes() map[netlist.CellKind][]NodeId {
	return idx.ByKind
}
