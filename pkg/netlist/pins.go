package netlist

// ExtractPins produces the ordered CellPins for a gate cell: one PinSource
// per input bit, classifying each bit's driver as a gate source, a boundary
// (Io) source, or a constant. A net that resolves to neither a cell nor a
// constant is a contract violation by the host's Net implementation; it is
// recorded as an invalid Source rather than guessed at, so that
// pkg/submatch's compat predicate can refuse to match it against anything.
func ExtractPins(c Cell) CellPins {
	inputs := c.Inputs()
	pins := CellPins{
		Kind:   Classify(c),
		Inputs: make([]PinSource, len(inputs)),
	}
	for i, net := range inputs {
		pins.Inputs[i] = PinSource{
			Pin: Data(i),
			Src: resolveNet(net),
		}
	}
	return pins
}

func resolveNet(net Net) Source {
	if net == nil {
		return invalidSource()
	}
	if driver, bit, ok := net.Resolve(); ok {
		if driver == nil {
			return invalidSource()
		}
		if IsGate(Classify(driver)) {
			return GateSource(driver, bit)
		}
		return IoSource(driver, bit)
	}
	if t, ok := net.Const(); ok {
		return ConstSource(t)
	}
	return invalidSource()
}
