package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YKhan142008/c4solver/internal/position"
)

func newShowCmd() *cobra.Command {
	var board string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Pretty-print a board with the side to move and opponent colorized",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := position.Parse(board)
			if err != nil {
				return err
			}
			printBoard(cmd, p)
			return nil
		},
	}

	cmd.Flags().StringVar(&board, "board", "", "42-character p|c|n board text")
	cmd.MarkFlagRequired("board")
	return cmd
}

func printBoard(cmd *cobra.Command, p position.Position) {
	mine := color.New(color.FgYellow, color.Bold)
	theirs := color.New(color.FgRed, color.Bold)
	empty := color.New(color.FgHiBlack)

	out := cmd.OutOrStdout()
	for row := position.BoardHeight - 1; row >= 0; row-- {
		for col := 0; col < position.BoardWidth; col++ {
			switch p.StoneAt(col, row) {
			case position.MyStone:
				mine.Fprint(out, "● ")
			case position.TheirStone:
				theirs.Fprint(out, "● ")
			default:
				empty.Fprint(out, "· ")
			}
		}
		fmt.Fprintln(out)
	}
}
