// Package submatch is the subgraph-isomorphism engine: anchor selection,
// pin compatibility, backtracking search with boundary binding, and result
// assembly/deduplication.
//
// The only entry points a caller needs are NewMatcher and the Matcher's
// FindSubgraphs/FindSubgraphsParallel methods; everything else in this
// package (anchor, compat, state, strategy, search, result) is the
// machinery those methods drive.
package submatch
