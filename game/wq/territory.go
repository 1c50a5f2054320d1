package 围碁

import (
	"fmt"

	"github.com/gorgonia/goban/game"
)

// BoardView is the read-only view of a board that the territory engine works on.
type BoardView interface {
	Size() int
	At(c game.Coord) game.Colour
	GroupAt(c game.Coord) *Group
}

var _ BoardView = &Board{}

// Territory is a grid of territory markings, independent of the stones on the board.
//
// Territory only classifies empty regions that are enclosed by a single colour.
// Anything subtler (dead stones, seki) is left to the players, through Mark.
type Territory struct {
	size int32
	data []game.Colour
}

func newTerritory(size int) *Territory {
	return &Territory{
		size: int32(size),
		data: make([]game.Colour, size*size),
	}
}

// At returns the owner of c, or None if c is unmarked.
func (t *Territory) At(c game.Coord) game.Colour { return t.data[t.ltoi(c)] }

// Data returns the markings, row major.
func (t *Territory) Data() []game.Colour { return t.data }

// Reset unmarks every point.
func (t *Territory) Reset() {
	for i := range t.data {
		t.data[i] = None
	}
}

func (t *Territory) Clone() *Territory {
	retVal := newTerritory(int(t.size))
	copy(retVal.data, t.data)
	return retVal
}

// Auto classifies every empty region of the board. A region bordered by stones of one colour
// only belongs to that colour. Regions bordered by both colours, or by none, are unmarked.
func (t *Territory) Auto(b BoardView) {
	visited := make([]bool, len(t.data))
	for i := range t.data {
		c := t.itol(game.Single(i))
		if visited[i] || b.At(c) != None {
			continue
		}
		t.classify(b, c, visited)
	}
}

// classify flood fills the empty region containing start and claims it if exactly one colour borders it.
func (t *Territory) classify(b BoardView, start game.Coord, visited []bool) {
	region, borders := t.region(b, start, visited)
	var owner game.Colour
	switch {
	case borders[Black-1] && !borders[White-1]:
		owner = Black
	case borders[White-1] && !borders[Black-1]:
		owner = White
	}
	for _, c := range region {
		t.data[t.ltoi(c)] = owner
	}
}

// region returns the maximal connected empty region containing start, and which colours border it.
// Points of the region are marked in visited; points already visited are not returned again.
func (t *Territory) region(b BoardView, start game.Coord, visited []bool) (region []game.Coord, borders [2]bool) {
	if b.At(start) != None || visited[t.ltoi(start)] {
		return nil, borders
	}
	stack := []game.Coord{start}
	visited[t.ltoi(start)] = true
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, c)

		for _, adj := range adjacents {
			a := c.Add(adj)
			if !t.isCoordValid(a) {
				continue
			}
			if colour := b.At(a); colour != None {
				borders[colour-1] = true
				continue
			}
			if i := t.ltoi(a); !visited[i] {
				visited[i] = true
				stack = append(stack, a)
			}
		}
	}
	return region, borders
}

// Mark toggles the marking at c.
//
// On an empty point, the whole empty region cycles through None, Black and White.
// On a stone, the whole group is toggled dead or alive: a dead group, together with the empty
// regions reachable from its border, is claimed by the opponent; an alive group is unmarked.
func (t *Territory) Mark(b BoardView, c game.Coord) {
	visited := make([]bool, len(t.data))
	g := b.GroupAt(c)
	if g == nil {
		region, _ := t.region(b, c, visited)
		t.claim(region, cycle(t.At(c)))
		return
	}

	var owner game.Colour
	if t.At(c) == None {
		owner = game.Colour(game.Opponent(game.Player(g.colour)))
	}
	for s := range g.stones {
		visited[t.ltoi(s)] = true
		t.data[t.ltoi(s)] = owner
	}
	for a := range g.border {
		region, _ := t.region(b, a, visited)
		t.claim(region, owner)
	}
}

func (t *Territory) claim(region []game.Coord, owner game.Colour) {
	for _, c := range region {
		t.data[t.ltoi(c)] = owner
	}
}

// Score counts the area score of both colours: one point for each marked point, and one more
// if the marked point holds a stone. The result is indexed by Black-1 and White-1.
func (t *Territory) Score(b BoardView) (retVal [2]int) {
	for i, owner := range t.data {
		if owner == None {
			continue
		}
		retVal[owner-1]++
		if b.At(t.itol(game.Single(i))) != None {
			retVal[owner-1]++
		}
	}
	return retVal
}

// Format implements fmt.Formatter
func (t *Territory) Format(s fmt.State, c rune) {
	for i, owner := range t.data {
		if int32(i)%t.size == 0 {
			fmt.Fprint(s, "⎢ ")
		}
		fmt.Fprintf(s, "%s ", owner)
		if (int32(i)+1)%t.size == 0 {
			fmt.Fprint(s, "⎥\n")
		}
	}
}

// cycle returns the next owner of an empty region: None, then Black, then White.
func cycle(owner game.Colour) game.Colour {
	switch owner {
	case None:
		return Black
	case Black:
		return White
	default:
		return None
	}
}

func (t *Territory) ltoi(c game.Coord) game.Single { return game.Single(int32(c.Y)*t.size + int32(c.X)) }

func (t *Territory) itol(s game.Single) game.Coord {
	return game.Coord{X: int16(int32(s) % t.size), Y: int16(int32(s) / t.size)}
}

func (t *Territory) isCoordValid(c game.Coord) bool {
	return c.X >= 0 && int32(c.X) < t.size && c.Y >= 0 && int32(c.Y) < t.size
}
