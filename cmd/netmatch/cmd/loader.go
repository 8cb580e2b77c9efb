package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/netmatch/pkg/netfixture"
	"github.com/OpenTraceLab/netmatch/pkg/netlist"
	"github.com/OpenTraceLab/netmatch/pkg/netsexp"
)

// loadNetlist picks a loader by file extension: ".sexp"/".rtlil" go through
// netsexp, everything else through netfixture. Both produce the same
// []netlist.Cell shape, so the rest of the CLI never needs to know which
// format a file was in.
func loadNetlist(path string) ([]netlist.Cell, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sexp", ".rtlil":
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("netmatch: read %s: %w", path, err)
		}
		cells, err := netsexp.Load(string(text))
		if err != nil {
			return nil, fmt.Errorf("netmatch: parse %s: %w", path, err)
		}
		return cells, nil
	default:
		cells, err := netfixture.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("netmatch: parse %s: %w", path, err)
		}
		return cells, nil
	}
}
