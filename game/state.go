package game

import (
	"fmt"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Player represents a player. It's also a colour.
type Player Colour

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// Opponent returns the colour of the opponent player
func Opponent(p Player) Player {
	switch Colour(p) {
	case White:
		return Player(Black)
	case Black:
		return Player(White)
	}
	panic("Unreachable")
}

// IsValid checks that a player is indeed valid
func IsValid(p Player) bool { return Colour(p) == Black || Colour(p) == White }

// Coord represents a (x, y) coordinate on the board.
//
// The Coord uses a standard computer cartesian coordinates
//		- (0, 0) represents the top left
//		- (18, 18) represents the bottom right of a 19x19 board
//		- (-1, -1) represents a "pass" move
type Coord struct {
	X, Y int16
}

// Pass is the coordinate of a pass move.
var Pass = Coord{-1, -1}

func (c Coord) Add(other Coord) Coord { return Coord{c.X + other.X, c.Y + other.Y} }

func (c Coord) Eq(other Coord) bool { return c.X == other.X && c.Y == other.Y }

// IsPass returns true when the coordinate represents a "pass" move
func (c Coord) IsPass() bool { return c.X == -1 && c.Y == -1 }

// Less orders coordinates row by row.
func (c Coord) Less(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

func (c Coord) Format(s fmt.State, r rune) {
	if c.IsPass() {
		fmt.Fprint(s, "pass")
		return
	}
	fmt.Fprintf(s, "(%d, %d)", c.X, c.Y)
}

// Single represents a coordinate as a single number, utilized in a rowmajor fashion.
//		- 0 represents the top left
//		- 18 represents the top right
//		- 19 represents (0, 1)
// 		- -1 represents the "pass" move
type Single int32

// IsPass returns true when the coordinate represents a "pass" move
func (c Single) IsPass() bool { return c == -1 }

// PlayerMove is a tuple indicating the player and the move to be made.
type PlayerMove struct {
	Player
	Coord
}

// Eq returns true if both are equal
func (p PlayerMove) Eq(other PlayerMove) bool {
	return p.Player == other.Player && p.Coord.Eq(other.Coord)
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%v", p.Player, p.Coord) }

// Snapshot is a read-only export of a game, suitable for rendering.
//
// Stones and Territory are row-major with a stride of Size.
type Snapshot struct {
	Size      int        `json:"size"`
	Stones    []Colour   `json:"stones"`
	Territory []Colour   `json:"territory"`
	ToMove    Player     `json:"to_move"`
	Ended     bool       `json:"game_over"`
	Score     [2]int     `json:"score"` // indexed by Black-1 and White-1
	Hash      Zobrist    `json:"hash"`
	LastMove  PlayerMove `json:"-"`
}

// At returns the stone at (x, y).
func (s Snapshot) At(x, y int) Colour { return s.Stones[y*s.Size+x] }

// TerritoryAt returns the territory marking at (x, y).
func (s Snapshot) TerritoryAt(x, y int) Colour { return s.Territory[y*s.Size+x] }

// ScoreOf returns the displayed score of the given player.
func (s Snapshot) ScoreOf(p Player) int {
	if !IsValid(p) {
		return 0
	}
	return s.Score[p-1]
}

// Format prints the stones grid. Territory owned by a colour is shown in lower case
// on empty points.
func (s Snapshot) Format(st fmt.State, c rune) {
	for y := 0; y < s.Size; y++ {
		fmt.Fprint(st, "⎢ ")
		for x := 0; x < s.Size; x++ {
			stone := s.At(x, y)
			switch {
			case stone != None:
				fmt.Fprintf(st, "%s ", stone)
			case s.TerritoryAt(x, y) == Black:
				fmt.Fprint(st, "x ")
			case s.TerritoryAt(x, y) == White:
				fmt.Fprint(st, "o ")
			default:
				fmt.Fprintf(st, "%s ", None)
			}
		}
		fmt.Fprint(st, "⎥\n")
	}
}

// Snapshotter is anything that can export a Snapshot.
type Snapshotter interface {
	Snapshot() Snapshot
}

// Zobrist is a type representing a "zobrist" hash.
type Zobrist uint32
