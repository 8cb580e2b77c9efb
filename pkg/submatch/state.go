package submatch

import (
	"github.com/OpenTraceLab/netmatch/internal/assert"
	"github.com/OpenTraceLab/netmatch/pkg/gateindex"
)

// state tracks one search path's partial mapping, the haystack gates it has
// already used, and the boundary bindings discovered along the way. It
// supports push/pop by requiring callers to unwind map/boundaryInsert calls
// in exactly reverse order, which is how search.go uses it.
type state struct {
	mapping map[gateindex.NodeId]gateindex.NodeId // needle NodeId -> haystack NodeId
	reverse map[gateindex.NodeId]gateindex.NodeId // haystack NodeId -> needle NodeId

	boundary      map[BoundaryKey]HaystackSrc
	boundaryOrder []BoundaryKey // insertion order, so backtrack can undo a contiguous suffix

	targetGateCount int
}

func newState(targetGateCount int) *state {
	return &state{
		mapping:         make(map[gateindex.NodeId]gateindex.NodeId),
		reverse:         make(map[gateindex.NodeId]gateindex.NodeId),
		boundary:        make(map[BoundaryKey]HaystackSrc),
		targetGateCount: targetGateCount,
	}
}

// mapPair records p -> d. Precondition: p is not already mapped and d is
// not already used.
func (s *state) mapPair(p, d gateindex.NodeId) {
	assert.Assert(!s.isMapped(p), "map: needle node %d already mapped", p)
	assert.Assert(!s.isUsedDesign(d), "map: haystack node %d already used", d)
	s.mapping[p] = d
	s.reverse[d] = p
}

// unmapPair removes p -> d. Precondition: (p, d) is the most recently
// mapped pair on this search path.
func (s *state) unmapPair(p, d gateindex.NodeId) {
	got, ok := s.mapping[p]
	assert.Assert(ok && got == d, "unmap: (%d,%d) is not currently mapped", p, d)
	delete(s.mapping, p)
	delete(s.reverse, d)
}

func (s *state) mappedTo(p gateindex.NodeId) (gateindex.NodeId, bool) {
	d, ok := s.mapping[p]
	return d, ok
}

func (s *state) isMapped(p gateindex.NodeId) bool {
	_, ok := s.mapping[p]
	return ok
}

func (s *state) isUsedDesign(d gateindex.NodeId) bool {
	_, ok := s.reverse[d]
	return ok
}

// boundaryInsert records key -> val if key is unbound, returning whether it
// was newly inserted. The caller (search.go) only schedules a removal on
// backtrack for keys that were newly inserted here.
func (s *state) boundaryInsert(key BoundaryKey, val HaystackSrc) bool {
	if _, exists := s.boundary[key]; exists {
		return false
	}
	s.boundary[key] = val
	s.boundaryOrder = append(s.boundaryOrder, key)
	return true
}

// boundaryRemoveKeys undoes exactly the keys a single step inserted, in
// reverse of boundaryInsert. Precondition: keys is the contiguous suffix of
// boundaryOrder most recently appended.
func (s *state) boundaryRemoveKeys(keys []BoundaryKey) {
	if len(keys) == 0 {
		return
	}
	n := len(s.boundaryOrder)
	assert.Assert(n >= len(keys), "boundaryRemoveKeys: fewer keys on path than requested")
	for i := n - len(keys); i < n; i++ {
		delete(s.boundary, s.boundaryOrder[i])
	}
	s.boundaryOrder = s.boundaryOrder[:n-len(keys)]
}

func (s *state) boundaryGet(key BoundaryKey) (HaystackSrc, bool) {
	v, ok := s.boundary[key]
	return v, ok
}

// done reports whether every needle gate has been mapped.
func (s *state) done() bool {
	return len(s.mapping) == s.targetGateCount
}
