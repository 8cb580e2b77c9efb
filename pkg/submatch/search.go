package submatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/OpenTraceLab/netmatch/pkg/gateindex"
	"github.com/OpenTraceLab/netmatch/pkg/netlist"
)

// FindSubgraphs finds every distinct embedding of pattern into design,
// seeding the search from the rarest shared gate kind and backtracking
// gate-by-gate through nextCandidate. It returns as soon as pattern or
// design fails to parse into at least one gate cell (an empty Result, not
// an error, since "pattern has zero gates" and "design has zero gates"
// both trivially mean zero matches) and otherwise runs until the search
// tree is exhausted or ctx is canceled. A cancellation ends the search
// early but is not itself an error: FindSubgraphs returns whatever matches
// were already deduplicated into the result, with a nil error.
func (m *Matcher) FindSubgraphs(ctx context.Context, pattern, design []netlist.Cell) (*Result, error) {
	patternInfo, err := NewPatternInfo(pattern)
	if err != nil {
		return nil, fmt.Errorf("submatch: %w", err)
	}

	needleIdx := gateindex.Build(pattern)
	haystackIdx := gateindex.Build(design)

	result := &Result{Pattern: pattern, Design: design}
	if needleIdx.GateCount() == 0 || haystackIdx.GateCount() == 0 {
		return result, nil
	}

	_, needleAnchor, haystackAnchors, ok := selectAnchor(needleIdx, haystackIdx)
	if !ok {
		return result, nil
	}

	seen := make(map[string]bool)
	for _, hAnchor := range haystackAnchors {
		if ctx.Err() != nil {
			return result, nil
		}
		st := newState(needleIdx.GateCount())
		if err := m.extend(ctx, needleIdx, haystackIdx, st, patternInfo, needleAnchor, hAnchor, seen, &result.Matches); err != nil {
			// extend's only error source is ctx cancellation; the matches
			// already deduplicated into result are the truthful answer.
			return result, nil
		}
	}

	return result, nil
}

// FindSubgraphsParallel behaves like FindSubgraphs but searches from each
// haystack anchor candidate on its own goroutine, all started at once with
// no cap on how many run concurrently. Matches are deduplicated across workers
// before being returned, so the result is identical to the sequential
// search modulo Matches ordering. As with FindSubgraphs, a canceled ctx
// ends the search early without making the result an error: every worker's
// already-found matches are still collected and deduplicated.
func (m *Matcher) FindSubgraphsParallel(ctx context.Context, pattern, design []netlist.Cell) (*Result, error) {
	patternInfo, err := NewPatternInfo(pattern)
	if err != nil {
		return nil, fmt.Errorf("submatch: %w", err)
	}

	needleIdx := gateindex.Build(pattern)
	haystackIdx := gateindex.Build(design)

	result := &Result{Pattern: pattern, Design: design}
	if needleIdx.GateCount() == 0 || haystackIdx.GateCount() == 0 {
		return result, nil
	}

	_, needleAnchor, haystackAnchors, ok := selectAnchor(needleIdx, haystackIdx)
	if !ok {
		return result, nil
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, hAnchor := range haystackAnchors {
		hAnchor := hAnchor
		wg.Add(1)
		go func() {
			defer wg.Done()
			st := newState(needleIdx.GateCount())
			var local []Match
			localSeen := make(map[string]bool)
			// extend's only error source is ctx cancellation; whatever it
			// already found before that is still a valid partial result.
			_ = m.extend(ctx, needleIdx, haystackIdx, st, patternInfo, needleAnchor, hAnchor, localSeen, &local)

			mu.Lock()
			defer mu.Unlock()
			result.Matches = append(result.Matches, local...)
		}()
	}
	wg.Wait()

	return dedupMatches(result), nil
}

// extend commits the (p, d) pair, recording it in st, then either records a
// complete Match (if st is now done) or recurses on the next candidate
// needle gate. It rolls back its own commit before returning so the caller
// can try the next haystack candidate for the same needle gate.
func (m *Matcher) extend(ctx context.Context, needleIdx, haystackIdx *gateindex.Index, st *state, pattern *PatternInfo, p, d gateindex.NodeId, seen map[string]bool, matches *[]Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if st.isUsedDesign(d) {
		return nil
	}
	if needleIdx.Kind(p) != haystackIdx.Kind(d) {
		return nil
	}
	if !compatible(st, needleIdx, haystackIdx, m.commutative, p, d) {
		return nil
	}

	st.mapPair(p, d)
	newKeys := commitBoundaries(needleIdx, haystackIdx, m.commutative, st, p, d)

	defer func() {
		st.boundaryRemoveKeys(newKeys)
		st.unmapPair(p, d)
	}()

	if st.done() {
		sig := dedupSignature(needleIdx.GateCount(), st)
		if !seen[sig] {
			seen[sig] = true
			*matches = append(*matches, assemble(pattern, needleIdx, haystackIdx, st))
		}
		return nil
	}

	next, ok := nextCandidate(needleIdx, st)
	if !ok {
		return nil
	}
	for _, candidate := range haystackIdx.ByKind[needleIdx.Kind(next)] {
		if err := m.extend(ctx, needleIdx, haystackIdx, st, pattern, next, candidate, seen, matches); err != nil {
			return err
		}
	}
	return nil
}

// commitBoundaries records every Io-sourced pin pair between p and d as a
// boundary binding, returning the keys newly inserted (as opposed to
// already bound from an earlier step) so the caller can undo exactly those
// on backtrack.
func commitBoundaries(needleIdx, haystackIdx *gateindex.Index, commutative map[netlist.CellKind]bool, st *state, p, d gateindex.NodeId) []BoundaryKey {
	pairs, ok := pinPairs(needleIdx, haystackIdx, commutative, p, d)
	if !ok {
		return nil
	}

	var inserted []BoundaryKey
	for _, pr := range pairs {
		if pr.needleSrc.Tag != netlist.TagIo {
			continue
		}
		key := BoundaryKey{Cell: pr.needleSrc.Cell, Bit: pr.needleSrc.Bit}
		val := HaystackSrc{Cell: pr.haystackSrc.Cell, Bit: pr.haystackSrc.Bit}
		if st.boundaryInsert(key, val) {
			inserted = append(inserted, key)
		}
	}
	return inserted
}

// dedupMatches removes duplicate embeddings across FindSubgraphsParallel's
// independent workers, keyed on each Match's own cell mapping rather than
// the search-internal NodeId signature (workers don't share a state).
func dedupMatches(result *Result) *Result {
	seen := make(map[string]bool, len(result.Matches))
	out := result.Matches[:0]
	for _, match := range result.Matches {
		if seen[matchSignature(match)] {
			continue
		}
		seen[matchSignature(match)] = true
		out = append(out, match)
	}
	result.Matches = out
	return result
}

func matchSignature(m Match) string {
	type pair struct {
		needleIdx int
		designIdx int
	}
	pairs := make([]pair, 0, len(m.cellMapping))
	for needle, design := range m.cellMapping {
		pairs = append(pairs, pair{needleIdx: needle.Index(), designIdx: design.Index()})
	}
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && pairs[j-1].needleIdx > pairs[j].needleIdx; j-- {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
		}
	}
	sig := ""
	for _, pr := range pairs {
		sig += fmt.Sprintf("%d:%d,", pr.needleIdx, pr.designIdx)
	}
	return sig
}
