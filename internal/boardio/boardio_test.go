package boardio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YKhan142008/c4solver/internal/boardio"
	"github.com/YKhan142008/c4solver/internal/fixtures"
	"github.com/YKhan142008/c4solver/internal/position"
)

func TestSerializeEmptyRoundTrips(t *testing.T) {
	p := position.Empty()
	text := boardio.Serialize(p)

	parsed, err := position.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, p, parsed)
}

func TestSerializeRoundTripsThroughParse(t *testing.T) {
	for name, board := range fixtures.Named() {
		board := board
		t.Run(name, func(t *testing.T) {
			p, err := position.Parse(board)
			require.NoError(t, err)

			text := boardio.Serialize(p)
			reparsed, err := position.Parse(text)
			require.NoError(t, err)

			assert.Equal(t, p, reparsed)
		})
	}
}

func TestSerializeReflectsStoneAt(t *testing.T) {
	p, err := position.Parse(fixtures.Beginning01)
	require.NoError(t, err)

	text := boardio.Serialize(p)
	require.Len(t, text, position.BoardSize+position.BoardHeight-1)

	reparsed, err := position.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, position.MyStone, reparsed.StoneAt(3, 0))
}
