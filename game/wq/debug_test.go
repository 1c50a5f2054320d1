package 围碁

import (
	"strings"
	"testing"

	"github.com/gorgonia/goban/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_ToDot(t *testing.T) {
	// X O ·
	// · · ·
	// · · X
	b := boardFrom(t, []game.Colour{
		Black, White, None,
		None, None, None,
		None, None, Black,
	})

	dot, err := b.ToDot()
	require.NoError(t, err)
	t.Logf("\n%v", dot)

	for _, name := range []string{"g1", "g2", "g3"} {
		assert.Contains(t, dot, name)
	}
	assert.Contains(t, dot, "fillcolor=black")
	assert.Contains(t, dot, "fillcolor=white")

	// only the touching pair is joined
	assert.Equal(t, 1, strings.Count(dot, "--"))
	assert.Contains(t, dot, "g1--g2")
}

func TestBoard_ToDot_Empty(t *testing.T) {
	dot, err := newBoard(5).ToDot()
	require.NoError(t, err)
	assert.NotContains(t, dot, "--")
}
