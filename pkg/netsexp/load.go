package netsexp

import (
	"fmt"
	"strconv"

	"github.com/chewxy/sexp"

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

// Load parses s-expression netlist text into netlist.Cell values in
// declaration order.
func Load(text string) ([]netlist.Cell, error) {
	exprs, err := sexp.ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("netsexp: parse: %w", err)
	}
	if len(exprs) == 0 {
		return nil, fmt.Errorf("netsexp: empty input")
	}
	return build(exprs[0])
}

func build(root sexp.Sexp) ([]netlist.Cell, error) {
	if root.IsLeaf() {
		return nil, fmt.Errorf("netsexp: expected a (netlist ...) list at the top level")
	}
	items := elements(root)
	if len(items) == 0 || !items[0].IsLeaf() || items[0].String() != "netlist" {
		return nil, fmt.Errorf("netsexp: expected the top-level list to begin with the symbol netlist")
	}

	byName := make(map[string]netlist.Cell, len(items)-1)
	cells := make([]netlist.Cell, 0, len(items)-1)

	for i, decl := range items[1:] {
		idx := i + 1
		c, name, err := buildDecl(byName, decl, idx)
		if err != nil {
			return nil, fmt.Errorf("netsexp: declaration %d: %w", idx, err)
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("netsexp: duplicate declaration of %q", name)
		}
		byName[name] = c
		cells = append(cells, c)
	}
	return cells, nil
}

func buildDecl(byName map[string]netlist.Cell, decl sexp.Sexp, idx int) (*cell, string, error) {
	if decl.IsLeaf() {
		return nil, "", fmt.Errorf("expected a list, got a bare symbol %q", decl.String())
	}
	parts := elements(decl)
	if len(parts) == 0 {
		return nil, "", fmt.Errorf("empty declaration")
	}
	head := parts[0].String()

	switch head {
	case "input":
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("input declaration wants exactly one name")
		}
		name := parts[1].String()
		return &cell{kind: netlist.KindInput, name: name, idx: idx}, name, nil

	case "output":
		if len(parts) != 3 || parts[2].IsLeaf() {
			return nil, "", fmt.Errorf("output declaration wants a name and a one-reference list")
		}
		name := parts[1].String()
		refItems := elements(parts[2])
		if len(refItems) != 1 {
			return nil, "", fmt.Errorf("output %s: wants exactly one reference, got %d", name, len(refItems))
		}
		in, err := resolveRef(byName, refItems[0])
		if err != nil {
			return nil, "", fmt.Errorf("output %s: %w", name, err)
		}
		return &cell{kind: netlist.KindOutput, name: name, idx: idx, inputs: []netlist.Net{in}}, name, nil

	default:
		kind, ok := kindByName[head]
		if !ok {
			return nil, "", fmt.Errorf("unknown cell kind %q", head)
		}
		if len(parts) != 3 {
			return nil, "", fmt.Errorf("cell declaration wants a name and a reference list")
		}
		name := parts[1].String()
		refItems := elements(parts[2])
		inputs := make([]netlist.Net, len(refItems))
		for i, r := range refItems {
			in, err := resolveRef(byName, r)
			if err != nil {
				return nil, "", fmt.Errorf("cell %s: input %d: %w", name, i, err)
			}
			inputs[i] = in
		}
		return &cell{kind: kind, name: name, idx: idx, inputs: inputs}, name, nil
	}
}

func resolveRef(byName map[string]netlist.Cell, sx sexp.Sexp) (netlist.Net, error) {
	if !sx.IsLeaf() {
		parts := elements(sx)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed bit-select reference")
		}
		name := parts[0].String()
		bit, err := strconv.Atoi(parts[1].String())
		if err != nil {
			return nil, fmt.Errorf("bit-select reference: %w", err)
		}
		driver, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("undeclared reference %q", name)
		}
		return ref{driver: driver, bit: bit}, nil
	}

	text := sx.String()
	switch text {
	case "0":
		return ref{isConst: true, trit: netlist.T0}, nil
	case "1":
		return ref{isConst: true, trit: netlist.T1}, nil
	case "x":
		return ref{isConst: true, trit: netlist.TX}, nil
	case "z":
		return ref{isConst: true, trit: netlist.TZ}, nil
	default:
		driver, ok := byName[text]
		if !ok {
			return nil, fmt.Errorf("undeclared reference %q", text)
		}
		return ref{driver: driver, bit: 0}, nil
	}
}

// elements walks a list's Head/Tail chain into a flat slice, the same
// LeafCount-bounded traversal pkg/kicad/sexp_utils.go uses over its own
// hand-rolled Sexp implementation.
func elements(sx sexp.Sexp) []sexp.Sexp {
	n := sx.LeafCount()
	out := make([]sexp.Sexp, 0, n)
	cur := sx
	for i := 0; i < n && cur != nil; i++ {
		out = append(out, cur.Head())
		cur = cur.Tail()
	}
	return out
}
