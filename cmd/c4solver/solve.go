package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YKhan142008/c4solver/internal/position"
	"github.com/YKhan142008/c4solver/internal/search"
)

func newSolveCmd() *cobra.Command {
	var board string
	var depth uint8
	var mode string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a board and print score move nodes end_in",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := position.Parse(board)
			if err != nil {
				return err
			}

			m, err := parseMode(mode)
			if err != nil {
				return err
			}

			result := search.Solve(p, depth, m)
			col, _, _ := position.MoveToColumn(result.Move)
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d %d\n", result.Score, col, result.Nodes, result.EndIn)
			return nil
		},
	}

	cmd.Flags().StringVar(&board, "board", "", "42-character p|c|n board text")
	cmd.Flags().Uint8Var(&depth, "depth", position.BoardSize, "search depth in plies")
	cmd.Flags().StringVar(&mode, "mode", "weak", "solver mode: strong|weak")
	cmd.MarkFlagRequired("board")
	return cmd
}

func parseMode(mode string) (search.Mode, error) {
	switch mode {
	case "weak":
		return search.Weak, nil
	case "strong":
		return search.Strong, nil
	default:
		return 0, fmt.Errorf("c4solver: unknown mode %q, want strong or weak", mode)
	}
}
