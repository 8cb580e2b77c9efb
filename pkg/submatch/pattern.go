package submatch

import (
	"fmt"

	"github.com/OpenTraceLab/netmatch/pkg/netlist"
)

// PatternInfo indexes a pattern's declared boundary cells by name once, so
// repeated name-based lookups (DesignSourceOfInputBit,
// DesignDriverOfOutputBit, PatternInputs, PatternOutputs) are O(1)
// afterward — the same "build once, query many" shape
// pkg/chain/repository.go uses for IDCODE-to-BSDL lookups.
type PatternInfo struct {
	inputsByName  map[string]netlist.Cell
	outputsByName map[string]netlist.Cell
	inputNames    []string
	outputNames   []string
}

// NewPatternInfo scans a pattern's cells for KindInput/KindOutput boundary
// cells and indexes them by declared name. A duplicate or empty name on a
// declared input/output is a contract violation by the pattern and is
// reported as an error rather than silently shadowing an entry.
func NewPatternInfo(cells []netlist.Cell) (*PatternInfo, error) {
	pi := &PatternInfo{
		inputsByName:  make(map[string]netlist.Cell),
		outputsByName: make(map[string]netlist.Cell),
	}

	for _, c := range cells {
		if c == nil {
			continue
		}
		switch netlist.Classify(c) {
		case netlist.KindInput:
			if err := addNamed(pi.inputsByName, c); err != nil {
				return nil, fmt.Errorf("submatch: pattern input: %w", err)
			}
			pi.inputNames = append(pi.inputNames, c.Name())
		case netlist.KindOutput:
			if err := addNamed(pi.outputsByName, c); err != nil {
				return nil, fmt.Errorf("submatch: pattern output: %w", err)
			}
			pi.outputNames = append(pi.outputNames, c.Name())
		}
	}

	return pi, nil
}

func addNamed(into map[string]netlist.Cell, c netlist.Cell) error {
	name := c.Name()
	if name == "" {
		return fmt.Errorf("declared boundary cell has an empty name")
	}
	if _, exists := into[name]; exists {
		return fmt.Errorf("duplicate boundary name %q", name)
	}
	into[name] = c
	return nil
}

// Inputs returns the pattern's declared input names in declaration order.
func (pi *PatternInfo) Inputs() []string { return pi.inputNames }

// Outputs returns the pattern's declared output names in declaration order.
func (pi *PatternInfo) Outputs() []string { return pi.outputNames }
