package netfixture

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/netmatch/pkg/netlist"
)

var kindByName = map[string]netlist.CellKind{
	"and": netlist.KindAnd, "or": netlist.KindOr, "xor": netlist.KindXor,
	"not": netlist.KindNot, "nand": netlist.KindNand, "nor": netlist.KindNor, "xnor": netlist.KindXnor,
	"add": netlist.KindAdd, "sub": netlist.KindSub, "mul": netlist.KindMul,
	"eq": netlist.KindEq, "neq": netlist.KindNeq,
	"lt": netlist.KindLt, "le": netlist.KindLe, "gt": netlist.KindGt, "ge": netlist.KindGe,
	"shl": netlist.KindShl, "shr": netlist.KindShr, "sshr": netlist.KindSshr,
	"mux": netlist.KindMux, "dff": netlist.KindDff, "dffe": netlist.KindDffe, "adff": netlist.KindAdff,
}

// cell is the concrete netlist.Cell this package builds: a declared name,
// a dense declaration-order index, and the resolved Net for each input.
type cell struct {
	kind   netlist.CellKind
	name   string
	idx    int
	inputs []netlist.Net
}

func (c *cell) Kind() netlist.CellKind { return c.kind }
func (c *cell) Name() string           { return c.name }
func (c *cell) Inputs() []netlist.Net  { return c.inputs }
func (c *cell) Index() int             { return c.idx }

// ref is the concrete netlist.Net this package builds: either a driving
// cell/bit pair or a constant trit, never both.
type ref struct {
	driver  netlist.Cell
	bit     int
	isConst bool
	trit    netlist.Trit
}

func (r ref) Resolve() (netlist.Cell, int, bool) {
	if r.isConst {
		return nil, 0, false
	}
	return r.driver, r.bit, true
}

func (r ref) Const() (netlist.Trit, bool) {
	if !r.isConst {
		return 0, false
	}
	return r.trit, true
}

// Build converts a parsed fixture into netlist.Cell values in declaration
// order. Every reference must name an already-declared cell; a reference
// to a name declared later in the file is rejected as undeclared.
func Build(f *File) ([]netlist.Cell, error) {
	byName := make(map[string]netlist.Cell, len(f.Decls))
	cells := make([]netlist.Cell, 0, len(f.Decls))

	for i, d := range f.Decls {
		idx := i + 1

		var c *cell
		var name string

		switch {
		case d.Input != nil:
			name = d.Input.Name
			c = &cell{kind: netlist.KindInput, name: name, idx: idx}

		case d.Output != nil:
			name = d.Output.Name
			in, err := resolveRef(byName, d.Output.Ref)
			if err != nil {
				return nil, fmt.Errorf("netfixture: output %s: %w", name, err)
			}
			c = &cell{kind: netlist.KindOutput, name: name, idx: idx, inputs: []netlist.Net{in}}

		case d.Cell != nil:
			name = d.Cell.Name
			kind, ok := kindByName[strings.ToLower(d.Cell.Kind)]
			if !ok {
				return nil, fmt.Errorf("netfixture: cell %s: unknown kind %q", name, d.Cell.Kind)
			}
			inputs := make([]netlist.Net, len(d.Cell.Refs))
			for i, r := range d.Cell.Refs {
				in, err := resolveRef(byName, r)
				if err != nil {
					return nil, fmt.Errorf("netfixture: cell %s: input %d: %w", name, i, err)
				}
				inputs[i] = in
			}
			c = &cell{kind: kind, name: name, idx: idx, inputs: inputs}

		default:
			return nil, fmt.Errorf("netfixture: declaration %d has no recognized alternative", idx)
		}

		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("netfixture: duplicate declaration of %q", name)
		}
		byName[name] = c
		cells = append(cells, c)
	}

	return cells, nil
}

func resolveRef(byName map[string]netlist.Cell, r *Ref) (netlist.Net, error) {
	if r.Const != nil {
		trit, err := parseTrit(*r.Const)
		if err != nil {
			return nil, err
		}
		return ref{isConst: true, trit: trit}, nil
	}

	driver, ok := byName[r.Name]
	if !ok {
		return nil, fmt.Errorf("undeclared reference %q", r.Name)
	}
	bit := 0
	if r.Bit != nil {
		bit = *r.Bit
	}
	return ref{driver: driver, bit: bit}, nil
}

func parseTrit(s string) (netlist.Trit, error) {
	switch s {
	case "0":
		return netlist.T0, nil
	case "1":
		return netlist.T1, nil
	case "x":
		return netlist.TX, nil
	case "z":
		return netlist.TZ, nil
	default:
		return 0, fmt.Errorf("invalid constant literal %q", s)
	}
}

// Load parses and builds fixture text in one call, the common case for
// tests and examples that embed a literal fixture string.
func Load(text string) ([]netlist.Cell, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.ParseString(text)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// LoadFile parses and builds a fixture file in one call.
func LoadFile(path string) ([]netlist.Cell, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Build(f)
}
