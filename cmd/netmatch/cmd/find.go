package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/netmatch/pkg/netlist"
	"github.com/OpenTraceLab/netmatch/pkg/submatch"
)

var (
	findParallel   bool
	findMaxResults int
)

var findCmd = &cobra.Command{
	Use:   "find <pattern-file> <design-file>",
	Short: "Find every occurrence of a pattern netlist inside a design netlist",
	Long: `find loads a small pattern netlist and a larger design netlist and
reports every structural match of the pattern's gates against the design's
gates, printing the design cell each pattern cell mapped to.

Examples:
  netmatch find and_gate.net adder.net
  netmatch find --parallel --max-results 10 ff.net chain.net`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().BoolVar(&findParallel, "parallel", false, "search from each anchor candidate concurrently")
	findCmd.Flags().IntVar(&findMaxResults, "max-results", 0, "stop printing after this many matches (0 = unlimited)")
}

func runFind(cmd *cobra.Command, args []string) error {
	cfg := submatch.DefaultConfig()
	cfg.MaxResults = findMaxResults
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("netmatch: %w", err)
	}

	pattern, err := loadNetlist(args[0])
	if err != nil {
		return err
	}
	design, err := loadNetlist(args[1])
	if err != nil {
		return err
	}

	m := submatch.NewMatcherFromConfig(cfg)

	ctx := context.Background()
	var result *submatch.Result
	if findParallel {
		result, err = m.FindSubgraphsParallel(ctx, pattern, design)
	} else {
		result, err = m.FindSubgraphs(ctx, pattern, design)
	}
	if err != nil {
		return fmt.Errorf("netmatch: %w", err)
	}

	matches := result.Matches
	dropped := 0
	if cfg.MaxResults > 0 && len(matches) > cfg.MaxResults {
		dropped = len(matches) - cfg.MaxResults
		matches = matches[:cfg.MaxResults]
	}

	fmt.Printf("%d match(es)\n", len(result.Matches))
	for i, match := range matches {
		fmt.Printf("match %d:\n", i)
		for p, d := range match.CellMapping() {
			fmt.Printf("  %s -> %s\n", cellLabel(p), cellLabel(d))
		}
		for _, in := range match.PatternInputs() {
			fmt.Printf("  input %s: bound at boundary\n", in)
		}
	}
	if dropped > 0 {
		fmt.Printf("(%d additional match(es) not shown; raise --max-results to see them)\n", dropped)
	}
	return nil
}

func cellLabel(c netlist.Cell) string {
	if name := c.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%s#%d", c.Kind(), c.Index())
}
