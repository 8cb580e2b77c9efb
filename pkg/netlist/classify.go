package netlist

// Classify is a pure total function from a Cell's own reported Kind to the
// closed CellKind enumeration. It exists as a dedicated entry point (rather
// than callers reading c.Kind() directly) so that a future host kind that
// doesn't map cleanly onto this enumeration has one place to fall back to
// KindOther instead of being classified ad hoc at each call site.
func Classify(c Cell) CellKind {
	k := c.Kind()
	if _, known := kindNames[k]; !known {
		return KindOther
	}
	return k
}
