package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YKhan142008/c4solver/internal/eval"
	"github.com/YKhan142008/c4solver/internal/position"
)

func TestMaterialHeuristicZeroOnEmptyBoard(t *testing.T) {
	assert.Equal(t, 0, eval.Material(position.Empty()))
}

func TestMaterialHeuristicSymmetric(t *testing.T) {
	board := "" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nncpnnn\n" +
		"nnpcnnn"
	mirrored := "" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnpcnnn\n" +
		"nncpnnn"

	p, err := position.Parse(board)
	require.NoError(t, err)
	m, err := position.Parse(mirrored)
	require.NoError(t, err)

	assert.Equal(t, eval.Material(p), -eval.Material(m))
}

func TestWinningSquaresHeuristicSymmetric(t *testing.T) {
	board := "" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nncpnnn\n" +
		"nnpcnnn"
	mirrored := "" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnpcnnn\n" +
		"nncpnnn"

	p, err := position.Parse(board)
	require.NoError(t, err)
	m, err := position.Parse(mirrored)
	require.NoError(t, err)

	assert.Equal(t, eval.WinningSquares(p), -eval.WinningSquares(m))
}

func TestMaterialHeuristicRewardsOpenThree(t *testing.T) {
	// Side to move has an open three on row 0 (cols 1-3); opponent has
	// nothing. The material count for the side should exceed zero.
	board := "" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"nnnnnnn\n" +
		"npppnnn"
	p, err := position.Parse(board)
	require.NoError(t, err)
	assert.Positive(t, eval.Material(p))
}
