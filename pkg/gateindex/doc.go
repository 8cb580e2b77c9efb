// Package gateindex builds the per-design lookup structures the matching
// engine searches over: dense node ids for gate cells only, a kind-to-nodes
// index, a cell-to-id map, and precomputed per-node pin lists.
//
// An Index is built once per design and is immutable afterward, the same
// "scan once, serve O(1) lookups" shape pkg/chain/repository.go uses for
// BSDL-by-IDCODE lookups in the teacher codebase.
package gateindex
