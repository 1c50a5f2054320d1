// package 围碁 implements the rules of Go (the board game): stone groups, captures, ko,
// passing, territory and area scoring.
//
// 围碁 is a bastardized word.
// The first character is read "wei" in Chinese. The second is read "qi" in Chinese.
// However, the charcter 碁 is no longer actively used in Chinese.
// It is however, actively used in Japanese. Specifically, it's read "go" in Japanese.
//
// The main reason why this package is named with unicode characters instead of `package go`
// is because the standard library of the Go language have the prefix "go"
package 围碁

import (
	"fmt"
	"sort"

	"github.com/gorgonia/goban/game"
)

const (
	None  = game.None
	Black = game.Black
	White = game.White

	BlackP = game.Player(game.Black)
	WhiteP = game.Player(game.White)
)

// Board represents a board.
//
// Each point of the board holds the id of the group occupying it, or 0 when the point is empty.
// The groups themselves live in an arena keyed by id. Groups are never mutated once they are
// in the arena: merging builds a new group, which is given a fresh id, and the points of the
// old groups are repointed to it.
type Board struct {
	size    int32
	data    []groupID   // backing data, row major
	it      [][]groupID // iterator for quick access: it[y][x]
	groups  map[groupID]*Group
	nextID  groupID
	zobrist // hashing of the board
}

func newBoard(size int) *Board {
	data, it := makeBoard(size)
	return &Board{
		size:    int32(size),
		data:    data,
		it:      it,
		groups:  make(map[groupID]*Group),
		zobrist: makeZobrist(size),
	}
}

// makeBoard makes a board of NxN. Additionally, it also returns a 2D iterator
func makeBoard(size int) (board []groupID, iterator [][]groupID) {
	board = make([]groupID, size*size)
	iterator = make([][]groupID, size)
	for i := range iterator {
		start := i * size
		iterator[i] = board[start : start+size : start+size]
	}
	return
}

// Size returns the length of a side of the board.
func (b *Board) Size() int { return int(b.size) }

// At returns the colour of the stone at c. Points off the board are reported as None.
func (b *Board) At(c game.Coord) game.Colour {
	if g := b.GroupAt(c); g != nil {
		return g.colour
	}
	return None
}

// GroupAt returns the group occupying c, or nil when c is empty or off the board.
func (b *Board) GroupAt(c game.Coord) *Group {
	if !b.isCoordValid(c) {
		return nil
	}
	id := b.it[c.Y][c.X]
	if id == 0 {
		return nil
	}
	return b.groups[id]
}

// Liberties counts the empty points in the border of g.
func (b *Board) Liberties(g *Group) int {
	var count int
	for c := range g.border {
		if b.isCoordValid(c) && b.it[c.Y][c.X] == 0 {
			count++
		}
	}
	return count
}

// Groups returns the groups currently on the board, in the order they were written.
func (b *Board) Groups() []*Group {
	retVal := make([]*Group, 0, len(b.groups))
	for _, g := range b.groups {
		retVal = append(retVal, g)
	}
	sort.Slice(retVal, func(i, j int) bool { return retVal[i].id < retVal[j].id })
	return retVal
}

// Colours returns the colour of every point, row major.
func (b *Board) Colours() []game.Colour {
	retVal := make([]game.Colour, len(b.data))
	for i, id := range b.data {
		if id != 0 {
			retVal[i] = b.groups[id].colour
		}
	}
	return retVal
}

// add writes g into the arena and onto every point of its stones.
func (b *Board) add(g *Group) groupID {
	b.nextID++
	g.id = b.nextID
	b.groups[g.id] = g
	for c := range g.stones {
		if b.it[c.Y][c.X] == 0 {
			b.zobrist.update(b.ltoi(c), g.colour)
		}
		b.it[c.Y][c.X] = g.id
	}
	return g.id
}

// remove clears the points of g and drops it from the arena.
func (b *Board) remove(g *Group) {
	for c := range g.stones {
		if b.it[c.Y][c.X] == g.id {
			b.it[c.Y][c.X] = 0
			b.zobrist.update(b.ltoi(c), g.colour)
		}
	}
	delete(b.groups, g.id)
}

// Clone clones the board. Groups are shared between the clones, as they are never mutated.
func (b *Board) Clone() *Board {
	data, it := makeBoard(int(b.size))
	copy(data, b.data)
	groups := make(map[groupID]*Group, len(b.groups))
	for id, g := range b.groups {
		groups[id] = g
	}
	return &Board{
		size:    b.size,
		data:    data,
		it:      it,
		groups:  groups,
		nextID:  b.nextID,
		zobrist: b.zobrist.clone(),
	}
}

// Eq checks that both boards hold the same stones.
func (b *Board) Eq(other *Board) bool {
	if b == other {
		return true
	}
	// easy to check stuff
	if b.size != other.size ||
		b.hash != other.hash ||
		len(b.groups) != len(other.groups) {
		return false
	}

	for i, c := range b.Colours() {
		if c != other.At(b.itol(game.Single(i))) {
			return false
		}
	}
	return true
}

// Format implements fmt.Formatter
func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		for y := range b.it {
			fmt.Fprint(s, "⎢ ")
			for x := range b.it[y] {
				fmt.Fprintf(s, "%s ", b.At(game.Coord{X: int16(x), Y: int16(y)}))
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

// Reset resets the board state
func (b *Board) Reset() {
	for i := range b.data {
		b.data[i] = 0
	}
	b.groups = make(map[groupID]*Group)
	b.nextID = 0
	b.zobrist.hash = 0
}

// Hash returns the calculated hash of the board
func (b *Board) Hash() int32 { return b.hash }

// ltoi takes a coordinate and return a single
func (b *Board) ltoi(c game.Coord) game.Single { return game.Single(int32(c.Y)*b.size + int32(c.X)) }

// itol takes a single and returns a coordinate
func (b *Board) itol(s game.Single) game.Coord {
	y := int16(int32(s) / b.size)
	x := int16(int32(s) % b.size)
	return game.Coord{X: x, Y: y}
}

// adjacentsCoord returns the adjacent positions given a coord
func (b *Board) adjacentsCoord(c game.Coord) (retVal [4]game.Coord) {
	for i := range retVal {
		retVal[i] = c.Add(adjacents[i])
	}
	return retVal
}

func (b *Board) isCoordValid(c game.Coord) bool {
	x, y := int32(c.X), int32(c.Y)
	// check if valid
	if x >= b.size || x < 0 {
		return false
	}

	if y >= b.size || y < 0 {
		return false
	}
	return true
}

var adjacents = [4]game.Coord{
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
}
