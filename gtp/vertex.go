package gtp

import (
	"strconv"
	"strings"

	"github.com/gorgonia/goban/game"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/pkg/errors"
)

// columns are lettered from A, skipping I.
const columns = "abcdefghjklmnopqrstuvwxyz"

// parseVertex parses a vertex such as "d4" or "pass". Row 1 is the bottom row of the board, while
// y = 0 is the top row of a game.Coord.
func parseVertex(s string, size int) (game.Coord, error) {
	s = strings.ToLower(s)
	if s == "pass" {
		return game.Pass, nil
	}
	if len(s) < 2 {
		return game.Coord{}, errors.Errorf("Invalid vertex %q", s)
	}
	x := strings.IndexByte(columns, s[0])
	if x < 0 {
		return game.Coord{}, errors.Errorf("Invalid column in vertex %q", s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return game.Coord{}, errors.WithMessagef(err, "Invalid row in vertex %q", s)
	}
	y := size - row
	if x >= size || y < 0 || y >= size {
		return game.Coord{}, errors.WithMessagef(wq.ErrOutOfBounds, "vertex %q", s)
	}
	return game.Coord{X: int16(x), Y: int16(y)}, nil
}

func formatVertex(c game.Coord, size int) string {
	if c.IsPass() {
		return "PASS"
	}
	return strings.ToUpper(columns[c.X:c.X+1]) + strconv.Itoa(size-int(c.Y))
}

func parseColour(s string) (game.Colour, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return game.Black, nil
	case "w", "white":
		return game.White, nil
	}
	return game.None, errors.Errorf("Invalid colour %q", s)
}
