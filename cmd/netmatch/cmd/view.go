package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/netmatch/pkg/matchview"
	"github.com/OpenTraceLab/netmatch/pkg/submatch"
)

var (
	viewParallel bool
	viewDark     bool
)

var viewCmd = &cobra.Command{
	Use:   "view <pattern-file> <design-file>",
	Short: "Find matches and open a window visualizing them",
	Long: `view runs the same search as find, then opens a window drawing each
match's pattern and design gate neighborhoods side by side, with lines
joining each pattern gate to the design gate it mapped to.

Examples:
  netmatch view and_gate.net adder.net
  netmatch view --dark ff.net chain.net`,
	Args: cobra.ExactArgs(2),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVar(&viewParallel, "parallel", false, "search from each anchor candidate concurrently")
	viewCmd.Flags().BoolVar(&viewDark, "dark", false, "use the dark color theme")
}

func runView(cmd *cobra.Command, args []string) error {
	pattern, err := loadNetlist(args[0])
	if err != nil {
		return err
	}
	design, err := loadNetlist(args[1])
	if err != nil {
		return err
	}

	m := submatch.NewMatcher()

	ctx := context.Background()
	var result *submatch.Result
	if viewParallel {
		result, err = m.FindSubgraphsParallel(ctx, pattern, design)
	} else {
		result, err = m.FindSubgraphs(ctx, pattern, design)
	}
	if err != nil {
		return fmt.Errorf("netmatch: %w", err)
	}
	if len(result.Matches) == 0 {
		fmt.Println("no matches found")
		return nil
	}

	theme := matchview.ThemeLight
	if viewDark {
		theme = matchview.ThemeDark
	}
	return matchview.Show(fmt.Sprintf("netmatch: %d match(es)", len(result.Matches)), pattern, result, theme)
}
