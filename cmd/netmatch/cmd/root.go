package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "netmatch",
	Short: "Find and view structural gate-level pattern matches in a netlist",
	Long: `netmatch finds every occurrence of a small pattern netlist inside a
larger design netlist, matching by gate structure rather than by net or
instance naming.

Examples:
  netmatch find pattern.net design.net
  netmatch view pattern.net design.net`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
