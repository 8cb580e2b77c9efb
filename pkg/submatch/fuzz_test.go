package submatch

import (
	"context"
	"testing"
)

// FuzzFindSubgraphsChain checks an invariant that must hold for every
// flip-flop chain length from 1 to 64: a single flip-flop pattern must find
// exactly one match per flip-flop in the chain, and the search must never
// panic or return an error on a well-formed design.
func FuzzFindSubgraphsChain(f *testing.F) {
	for _, seed := range []int{1, 2, 3, 8, 16} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, n int) {
		if n <= 0 || n > 64 {
			t.Skip("chain length out of the range this property covers")
		}

		pattern := buildSingleFF()
		design := buildChain(n)

		m := NewMatcher()
		res, err := m.FindSubgraphs(context.Background(), pattern, design)
		if err != nil {
			t.Fatalf("FindSubgraphs: %v", err)
		}
		if len(res.Matches) != n {
			t.Fatalf("len(Matches) = %d, want %d for a chain of length %d", len(res.Matches), n, n)
		}
	})
}
