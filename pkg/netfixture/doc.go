// Package netfixture parses a small textual netlist description language
// into netlist.Cell values, for tests and worked examples that are easier
// to read as text than to construct by hand in Go.
//
// A fixture file is a sequence of declarations:
//
//	input a;
//	input b;
//	and g1(a, b);
//	dff ff1(g1);
//	output y(ff1);
//
// A cell reference is either a previously declared name (optionally
// followed by .N to select a bit of a multi-bit driver) or a constant
// 0, 1, x, or z.
package netfixture
