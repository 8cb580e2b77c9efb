package netlist

import "fmt"

// CellKind is a closed enumeration of the cell types the matching engine
// understands. IsGate partitions it into gate-like kinds (eligible for
// indexing and matching) and boundary kinds (free variables / opaque
// targets that the engine never tries to pair directly).
type CellKind int

const (
	// Combinational logic.
	KindAnd CellKind = iota
	KindOr
	KindXor
	KindNot
	KindNand
	KindNor
	KindXnor

	// Arithmetic and comparison.
	KindAdd
	KindSub
	KindMul
	KindEq
	KindNeq
	KindLt
	KindLe
	KindGt
	KindGe

	// Shifts and selection.
	KindShl
	KindShr
	KindSshr
	KindMux

	// Sequential.
	KindDff
	KindDffe
	KindAdff

	// Boundary kinds: never indexed, never gate-matched.
	KindInput
	KindOutput
	KindMem
	KindIoBuf
	KindTarget
	KindName
	KindDebug
	KindAssert
	KindOther
)

var kindNames = map[CellKind]string{
	KindAnd: "And", KindOr: "Or", KindXor: "Xor", KindNot: "Not",
	KindNand: "Nand", KindNor: "Nor", KindXnor: "Xnor",
	KindAdd: "Add", KindSub: "Sub", KindMul: "Mul",
	KindEq: "Eq", KindNeq: "Neq", KindLt: "Lt", KindLe: "Le", KindGt: "Gt", KindGe: "Ge",
	KindShl: "Shl", KindShr: "Shr", KindSshr: "Sshr", KindMux: "Mux",
	KindDff: "Dff", KindDffe: "Dffe", KindAdff: "Adff",
	KindInput: "Input", KindOutput: "Output", KindMem: "Mem", KindIoBuf: "IoBuf",
	KindTarget: "Target", KindName: "Name", KindDebug: "Debug", KindAssert: "Assert",
	KindOther: "Other",
}

func (k CellKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// gateKinds is the fixed set of gate-like kinds. Every kind not present here
// is a boundary kind.
var gateKinds = map[CellKind]bool{
	KindAnd: true, KindOr: true, KindXor: true, KindNot: true,
	KindNand: true, KindNor: true, KindXnor: true,
	KindAdd: true, KindSub: true, KindMul: true,
	KindEq: true, KindNeq: true, KindLt: true, KindLe: true, KindGt: true, KindGe: true,
	KindShl: true, KindShr: true, KindSshr: true, KindMux: true,
	KindDff: true, KindDffe: true, KindAdff: true,
}

// IsGate reports whether k is a gate-like kind eligible for indexing and
// structural matching. All other kinds are boundary kinds.
func IsGate(k CellKind) bool {
	return gateKinds[k]
}

// Trit is a four-valued logic value. Equality is strict: X and Z compare
// equal only to themselves, never as wildcards.
type Trit int

const (
	T0 Trit = iota
	T1
	TX
	TZ
)

func (t Trit) String() string {
	switch t {
	case T0:
		return "0"
	case T1:
		return "1"
	case TX:
		return "X"
	case TZ:
		return "Z"
	default:
		return fmt.Sprintf("Trit(%d)", int(t))
	}
}

// Cell is an opaque handle into a host netlist. Implementations must return
// the same value (in the == sense) for the same underlying netlist node on
// every call, since the engine compares cells by identity.
type Cell interface {
	// Kind classifies the cell.
	Kind() CellKind
	// Name returns a declared name, used only for boundary cells (pattern
	// inputs/outputs looked up by name) and debug output. Gate cells may
	// return an empty string.
	Name() string
	// Inputs returns, in the host's stable visitation order, one Net per
	// input bit of this cell. A gate's Inputs are its data pins; a
	// boundary Output cell's Inputs are the per-bit nets it exports.
	// KindInput cells (pattern/design primary inputs) have no inputs.
	Inputs() []Net
	// Index is a stable, implementation-assigned debug index used only
	// for commutative-key tie-breaking and dedup signatures. It plays no
	// role in matching decisions.
	Index() int
}

// Net is what a single input bit resolves to: either another cell's output
// bit, or a constant trit. Exactly one of Resolve/Const succeeds.
type Net interface {
	// Resolve returns the driving cell and output bit, if the net is
	// driven by a cell (gate or boundary) rather than a constant.
	Resolve() (driver Cell, bit int, ok bool)
	// Const returns the constant trit driving this net, if any.
	Const() (t Trit, ok bool)
}

// PinKind identifies a pin position. This engine only needs ordinal data
// pins reflecting the host's stable input visitation order.
type PinKind struct {
	Index int
}

func (p PinKind) String() string {
	return fmt.Sprintf("Data(%d)", p.Index)
}

// Data constructs the PinKind for the i-th input in visitation order.
func Data(i int) PinKind {
	return PinKind{Index: i}
}

// SourceTag distinguishes the three Source variants.
type SourceTag int

const (
	TagGate SourceTag = iota
	TagIo
	TagConst
	// tagInvalid marks a pin whose net resolved to neither a cell nor a
	// constant — a contract violation by the host. It is never produced
	// by ExtractPins for a well-formed net; compat treats it as
	// incompatible with every partner, per spec.
	tagInvalid
)

// Source describes what drives a single pin bit.
type Source struct {
	Tag  SourceTag
	Cell Cell // valid for TagGate and TagIo
	Bit  int  // valid for TagGate and TagIo
	Trit Trit // valid for TagConst
}

// GateSource builds a Source driven by a gate cell's output bit.
func GateSource(c Cell, bit int) Source { return Source{Tag: TagGate, Cell: c, Bit: bit} }

// IoSource builds a Source driven by a boundary cell's output bit.
func IoSource(c Cell, bit int) Source { return Source{Tag: TagIo, Cell: c, Bit: bit} }

// ConstSource builds a Source driven by a constant trit.
func ConstSource(t Trit) Source { return Source{Tag: TagConst, Trit: t} }

func invalidSource() Source { return Source{Tag: tagInvalid} }

// IsValid reports whether s was produced by a well-formed net resolution.
func (s Source) IsValid() bool { return s.Tag != tagInvalid }

func (s Source) String() string {
	switch s.Tag {
	case TagGate:
		return fmt.Sprintf("Gate(%s,%d)", s.Cell.Name(), s.Bit)
	case TagIo:
		return fmt.Sprintf("Io(%s,%d)", s.Cell.Name(), s.Bit)
	case TagConst:
		return fmt.Sprintf("Const(%s)", s.Trit)
	default:
		return "Invalid"
	}
}

// PinSource pairs a pin position with its resolved driver.
type PinSource struct {
	Pin PinKind
	Src Source
}

// CellPins is the ordered pin list for a single gate: its kind plus one
// PinSource per input bit, in the host's visitation order.
type CellPins struct {
	Kind   CellKind
	Inputs []PinSource
}
