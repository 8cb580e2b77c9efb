package submatch

import "github.com/OpenTraceLab/netmatch/pkg/netlist"

// Config controls how a Matcher built from it behaves. It exists alongside
// the functional-options constructor (NewMatcher) for callers, like the
// CLI, that assemble their settings from flags or a file rather than from
// Go call sites.
type Config struct {
	// CommutativeKinds lists the gate kinds whose pin order is ignored
	// during matching. Nil means "use the built-in default set"
	// (And, Or, Xor, Eq); an empty, non-nil slice disables commutative
	// matching entirely.
	CommutativeKinds []netlist.CellKind

	// MaxResults caps the number of matches a caller using this Config
	// will act on. 0 means unlimited. Enforced by the caller (e.g. the
	// CLI's find command), not by FindSubgraphs itself, since capping
	// inside the search would make cancellation and result counts
	// order-dependent.
	MaxResults int
}

// DefaultConfig returns a Config with the same commutative-kind defaults
// NewMatcher uses on its own, and no result cap.
func DefaultConfig() *Config {
	return &Config{
		CommutativeKinds: nil,
		MaxResults:       0,
	}
}

// Validate normalizes an invalid MaxResults to "unlimited" rather than
// rejecting it, since a negative cap from a flag typo is more useful
// clamped than fatal.
func (c *Config) Validate() error {
	if c.MaxResults < 0 {
		c.MaxResults = 0
	}
	return nil
}

// NewMatcherFromConfig builds a Matcher reflecting c's commutative-kind
// selection.
func NewMatcherFromConfig(c *Config) *Matcher {
	if c == nil || c.CommutativeKinds == nil {
		return NewMatcher()
	}
	kinds := make(map[netlist.CellKind]bool, len(c.CommutativeKinds))
	for _, k := range c.CommutativeKinds {
		kinds[k] = true
	}
	return NewMatcher(WithCommutativeKinds(kinds))
}
