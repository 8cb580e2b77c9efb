// Package netlist defines the data model the matching engine borrows from a
// host netlist: an opaque Cell handle, a closed CellKind enumeration, and the
// per-bit Source a cell's input pin resolves to (another cell's output bit,
// a boundary cell's output bit, or a constant trit).
//
// Nothing in this package parses a real hardware description format. It is
// the contract a host (a fixture loader, a future Yosys front end, a
// caller's own in-memory representation) implements so the engine in
// pkg/submatch can operate over it without caring where the cells came from.
package netlist
