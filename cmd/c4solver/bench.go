package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/YKhan142008/c4solver/internal/fixtures"
	"github.com/YKhan142008/c4solver/internal/position"
	"github.com/YKhan142008/c4solver/internal/search"
)

func newBenchCmd() *cobra.Command {
	var depth uint8
	var mode string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run solve over the bundled fixtures and report nodes and elapsed time",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMode(mode)
			if err != nil {
				return err
			}

			named := fixtures.Named()
			names := make([]string, 0, len(named))
			for name := range named {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				p, err := position.Parse(named[name])
				if err != nil {
					return fmt.Errorf("c4solver: fixture %q: %w", name, err)
				}

				start := time.Now()
				result := search.Solve(p, depth, m)
				elapsed := time.Since(start)

				fmt.Fprintf(out, "%-12s score=%-6d nodes=%-10d elapsed=%s\n", name, result.Score, result.Nodes, elapsed)
			}
			return nil
		},
	}

	cmd.Flags().Uint8Var(&depth, "depth", position.BoardSize, "search depth in plies")
	cmd.Flags().StringVar(&mode, "mode", "weak", "solver mode: strong|weak")
	return cmd
}
