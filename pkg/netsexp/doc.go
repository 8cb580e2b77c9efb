// Package netsexp loads a netlist from a Yosys-RTLIL-flavored s-expression
// text, as an alternative to pkg/netfixture's line-oriented grammar:
//
//	(netlist
//	  (input a)
//	  (input b)
//	  (and g1 (a b))
//	  (output y (g1)))
//
// A cell declaration is (<kind> <name> (<ref> ...)); input/output
// declarations are (input <name>) and (output <name> (<ref>)). A reference is
// a bare symbol naming a previously declared cell, one of the constant
// symbols 0, 1, x, z, or a two-element list (<name> <bit>) selecting one
// bit of a multi-bit driver.
package netsexp
