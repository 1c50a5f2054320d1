package 围碁

import (
	"fmt"
	"sort"

	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
)

// groupID identifies a group in the board's arena. The zero value means "no group".
type groupID int32

type coordSet map[game.Coord]struct{}

func (s coordSet) sorted() []game.Coord {
	retVal := make([]game.Coord, 0, len(s))
	for c := range s {
		retVal = append(retVal, c)
	}
	sort.Slice(retVal, func(i, j int) bool { return retVal[i].Less(retVal[j]) })
	return retVal
}

// Group is a set of connected stones of the same colour, together with its border:
// every point adjacent to a stone of the group that is not itself part of the group.
//
// A Group is never modified once it has been written to a board. Growing a group is done
// with Merge, which builds a new Group.
type Group struct {
	id     groupID
	colour game.Colour
	stones coordSet
	border coordSet
}

func newGroup(c game.Coord, colour game.Colour) *Group {
	return &Group{
		colour: colour,
		stones: coordSet{c: {}},
		border: make(coordSet, 4),
	}
}

// Merge joins two groups of the same colour. The inputs are left untouched.
func Merge(a, b *Group) (*Group, error) {
	if a.colour != b.colour {
		return nil, errors.WithMessagef(ErrInvalidOperation, "cannot merge a %v group with a %v group", a.colour, b.colour)
	}
	retVal := &Group{
		colour: a.colour,
		stones: make(coordSet, len(a.stones)+len(b.stones)),
		border: make(coordSet, len(a.border)+len(b.border)),
	}
	for c := range a.stones {
		retVal.stones[c] = struct{}{}
	}
	for c := range b.stones {
		retVal.stones[c] = struct{}{}
	}
	for _, border := range [2]coordSet{a.border, b.border} {
		for c := range border {
			if _, ok := retVal.stones[c]; !ok {
				retVal.border[c] = struct{}{}
			}
		}
	}
	return retVal, nil
}

// ID returns the arena identifier of the group. It is 0 for groups not on a board.
func (g *Group) ID() int { return int(g.id) }

func (g *Group) Colour() game.Colour { return g.colour }

// Size is the number of stones in the group.
func (g *Group) Size() int { return len(g.stones) }

// Stones returns the stones of the group, sorted row by row.
func (g *Group) Stones() []game.Coord { return g.stones.sorted() }

// Border returns the points bordering the group, sorted row by row.
func (g *Group) Border() []game.Coord { return g.border.sorted() }

// Contains reports whether c is a stone of the group.
func (g *Group) Contains(c game.Coord) bool {
	_, ok := g.stones[c]
	return ok
}

func (g *Group) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%v group #%d %v", g.colour, g.id, g.Stones())
}
