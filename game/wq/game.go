package 围碁

import (
	"fmt"
	"log"

	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
)

var _ game.Snapshotter = &Game{}

// Phase is a stage of the pass protocol.
type Phase byte

const (
	Playing Phase = iota
	AwaitingSecondPass
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "Playing"
	case AwaitingSecondPass:
		return "AwaitingSecondPass"
	case GameOver:
		return "GameOver"
	}
	return fmt.Sprintf("Phase(%d)", byte(p))
}

// noKo is the value of Game.ko when no point is locked.
var noKo = game.Coord{X: -1, Y: -1}

// Game is a game of Go. It owns the board and the territory markings, and is the only way to mutate them.
//
// A Game is not safe for concurrent use.
type Game struct {
	board     *Board
	territory *Territory
	logger    *log.Logger

	nextToMove game.Player
	ko         game.Coord // point where the next stone may not be played
	passed     bool       // the last move was a pass
	ended      bool
	captures   [2]int // stones captured during play, by the capturing colour
	score      [2]int // area score from the territory markings
	history    []game.PlayerMove
}

// New creates a new game. An error is returned if the configuration is not valid.
func New(conf Config) (*Game, error) {
	if !conf.IsValid() {
		return nil, errors.WithMessagef(ErrBoardSize, "got %dx%[1]d", conf.Size)
	}
	g := &Game{logger: conf.logger()}
	g.reset(conf.Size)
	return g, nil
}

func (g *Game) reset(size int) {
	g.board = newBoard(size)
	g.territory = newTerritory(size)
	g.nextToMove = BlackP
	g.ko = noKo
	g.passed = false
	g.ended = false
	g.captures = [2]int{}
	g.score = [2]int{}
	g.history = make([]game.PlayerMove, 0, size*size)
}

// NewGame discards the current game and starts a new one on an empty board of the given size.
func (g *Game) NewGame(size int) error {
	if !(Config{Size: size}).IsValid() {
		return errors.WithMessagef(ErrBoardSize, "got %dx%[1]d", size)
	}
	g.reset(size)
	g.logger.Printf("New %dx%d game", size, size)
	return nil
}

// Place places a stone of the player to move at (x, y).
func (g *Game) Place(x, y int) error { return g.PlaceAs(x, y, game.Colour(g.nextToMove)) }

// PlaceAs places a stone of the given colour at (x, y). The turn passes to the opponent of colour.
func (g *Game) PlaceAs(x, y int, colour game.Colour) error {
	m := game.PlayerMove{Player: game.Player(colour), Coord: game.Coord{X: int16(x), Y: int16(y)}}
	if x < 0 || y < 0 || x >= g.board.Size() || y >= g.board.Size() {
		return illegal(m, ErrOutOfBounds)
	}
	return g.Apply(m)
}

// Apply applies a move. A pass move is the same as calling Pass.
func (g *Game) Apply(m game.PlayerMove) error {
	if m.Coord.IsPass() {
		return g.Pass()
	}
	if !g.board.isCoordValid(m.Coord) {
		return illegal(m, ErrOutOfBounds)
	}
	if g.ended {
		return illegal(m, ErrGameOver)
	}
	if m.Coord.Eq(g.ko) {
		return illegal(m, ErrKo)
	}

	p, err := g.board.check(m)
	if err != nil {
		return err
	}
	captured := g.board.commit(p)
	g.captures[m.Player-1] += captured

	if ko, ok := p.ko(); ok {
		g.ko = ko
		g.logger.Printf("%v captured %d. Ko at %v", m, captured, ko)
	} else {
		g.ko = noKo
		if captured > 0 {
			g.logger.Printf("%v captured %d", m, captured)
		}
	}
	g.passed = false
	g.nextToMove = game.Opponent(m.Player)
	g.history = append(g.history, m)
	g.logger.Printf("%v. Next: %v", m, g.nextToMove)
	return nil
}

// Pass passes the turn. The second pass in a row ends the game, and territory is then
// classified automatically.
func (g *Game) Pass() error {
	m := game.PlayerMove{Player: g.nextToMove, Coord: game.Pass}
	switch g.Phase() {
	case GameOver:
		return illegal(m, ErrGameOver)
	case Playing:
		g.ko = noKo
		g.nextToMove = game.Opponent(g.nextToMove)
		g.passed = true
		g.history = append(g.history, m)
		g.logger.Printf("%v passed. Next: %v", m.Player, g.nextToMove)
	case AwaitingSecondPass:
		g.ended = true
		g.history = append(g.history, m)
		g.territory.Auto(g.board)
		g.score = g.territory.Score(g.board)
		g.logger.Printf("%v passed. Game over. Score %v", m.Player, g.Scores())
	}
	return nil
}

// MarkTerritory toggles the territory marking at (x, y). It is only allowed once the game is over.
//
// Marking an empty point cycles its region through unmarked, Black and White.
// Marking a stone toggles its group between dead and alive.
func (g *Game) MarkTerritory(x, y int) error {
	c := game.Coord{X: int16(x), Y: int16(y)}
	if !g.board.isCoordValid(c) {
		return errors.WithMessagef(ErrOutOfBounds, "Unable to mark %v", c)
	}
	if !g.ended {
		return errors.WithMessagef(ErrNotOver, "Unable to mark %v", c)
	}
	g.territory.Mark(g.board, c)
	g.score = g.territory.Score(g.board)
	g.logger.Printf("Marked %v as %v. Score %v", c, g.territory.At(c), g.Scores())
	return nil
}

// Undo takes back the last move by replaying the history without it. Territory markings are lost.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return errors.WithMessage(ErrInvalidOperation, "No moves to undo")
	}
	history := g.history[:len(g.history)-1]

	replay := &Game{logger: discard}
	replay.reset(g.board.Size())
	for _, m := range history {
		replay.nextToMove = m.Player
		var err error
		if m.Coord.IsPass() {
			err = replay.Pass()
		} else {
			err = replay.Apply(m)
		}
		if err != nil {
			return errors.Wrapf(err, "Unable to replay %v", m)
		}
	}
	replay.logger = g.logger
	*g = *replay
	g.logger.Printf("Undo. Next: %v", g.nextToMove)
	return nil
}

// ComputeScore recomputes the area score from the territory markings.
func (g *Game) ComputeScore() [2]int {
	g.score = g.territory.Score(g.board)
	return g.score
}

// Snapshot exports the state of the game for rendering.
func (g *Game) Snapshot() game.Snapshot {
	return game.Snapshot{
		Size:      g.board.Size(),
		Stones:    g.board.Colours(),
		Territory: append([]game.Colour(nil), g.territory.data...),
		ToMove:    g.nextToMove,
		Ended:     g.ended,
		Score:     g.Scores(),
		Hash:      game.Zobrist(g.board.Hash()),
		LastMove:  g.LastMove(),
	}
}

// Scores returns the displayed scores: captures and area score, indexed by Black-1 and White-1.
func (g *Game) Scores() [2]int {
	return [2]int{g.captures[0] + g.score[0], g.captures[1] + g.score[1]}
}

// Phase returns where the game is in the pass protocol.
func (g *Game) Phase() Phase {
	switch {
	case g.ended:
		return GameOver
	case g.passed:
		return AwaitingSecondPass
	}
	return Playing
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) Territory() *Territory { return g.territory }

func (g *Game) BoardSize() int { return g.board.Size() }

func (g *Game) ToMove() game.Player { return g.nextToMove }

// SetToMove hands the turn to p. Players other than Black and White are ignored.
func (g *Game) SetToMove(p game.Player) {
	if game.IsValid(p) {
		g.nextToMove = p
	}
}

func (g *Game) Ended() bool { return g.ended }

// Ko returns the point locked by the ko rule, if any.
func (g *Game) Ko() (game.Coord, bool) { return g.ko, !g.ko.Eq(noKo) }

// Captures returns the number of stones captured by p during play.
func (g *Game) Captures(p game.Player) int {
	if !game.IsValid(p) {
		return 0
	}
	return g.captures[p-1]
}

// Score returns the area score of p, without captures.
func (g *Game) Score(p game.Player) int {
	if !game.IsValid(p) {
		return 0
	}
	return g.score[p-1]
}

// Winner returns the player with the higher displayed score, or None on a tie or while the game is not over.
func (g *Game) Winner() game.Player {
	if !g.ended {
		return game.Player(None)
	}
	s := g.Scores()
	switch {
	case s[0] > s[1]:
		return BlackP
	case s[1] > s[0]:
		return WhiteP
	}
	return game.Player(None)
}

func (g *Game) Hash() game.Zobrist { return game.Zobrist(g.board.Hash()) }

func (g *Game) History() []game.PlayerMove { return g.history }

func (g *Game) MoveNumber() int { return len(g.history) }

func (g *Game) LastMove() game.PlayerMove {
	if len(g.history) > 0 {
		return g.history[len(g.history)-1]
	}
	return game.PlayerMove{Player: game.Player(None), Coord: game.Pass}
}

func (g *Game) Eq(other *Game) bool {
	// easy to check stuff first
	if g.nextToMove != other.nextToMove ||
		!g.ko.Eq(other.ko) ||
		g.passed != other.passed ||
		g.ended != other.ended ||
		g.captures != other.captures ||
		g.score != other.score ||
		len(g.history) != len(other.history) {
		return false
	}

	// heavier checks
	if !g.board.Eq(other.board) {
		return false
	}
	for i, c := range g.territory.data {
		if other.territory.data[i] != c {
			return false
		}
	}
	for i, m := range g.history {
		if !m.Eq(other.history[i]) {
			return false
		}
	}
	return true
}

func (g *Game) Clone() *Game {
	retVal := *g
	retVal.board = g.board.Clone()
	retVal.territory = g.territory.Clone()
	retVal.history = make([]game.PlayerMove, len(g.history), len(g.history)+1)
	copy(retVal.history, g.history)
	return &retVal
}

func (g *Game) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%s", g.Snapshot())
}
