package 围碁

import (
	"fmt"

	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
)

var (
	// ErrIllegalMove is the cause of every rule violation during play.
	ErrIllegalMove = errors.New("illegal move")
	// ErrOutOfBounds is returned when a coordinate lies outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidOperation signals a broken board invariant, such as merging groups of different colours.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrNotOver is returned when territory is marked while the game is still being played.
	ErrNotOver = errors.New("game is not over")
	// ErrBoardSize is returned when a game is configured with an unsupported board size.
	ErrBoardSize = errors.Errorf("board size is out of range (from %dx%[1]d to %dx%[2]d)", minSize, maxSize)
)

// Kinds of illegal moves. Each one has ErrIllegalMove as its cause.
var (
	ErrOccupied = errors.WithMessage(ErrIllegalMove, "point is occupied")
	ErrKo       = errors.WithMessage(ErrIllegalMove, "ko recapture")
	ErrSuicide  = errors.WithMessage(ErrIllegalMove, "suicide")
	ErrGameOver = errors.WithMessage(ErrIllegalMove, "game is over")
	ErrPlayer   = errors.WithMessage(ErrIllegalMove, "impossible player")
)

type moveError game.PlayerMove

func (err moveError) Error() string {
	return fmt.Sprintf("Unable to make %v", game.PlayerMove(err))
}

// illegal annotates kind with the move that caused it.
func illegal(m game.PlayerMove, kind error) error {
	return errors.WithMessage(kind, moveError(m).Error())
}
