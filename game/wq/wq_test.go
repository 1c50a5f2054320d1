package 围碁

import (
	"fmt"
	"testing"

	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
)

func sqrt(a int) int {
	if a == 0 || a == 1 {
		return a
	}
	start := 1
	end := a / 2
	var retVal int
	for start <= end {
		mid := (start + end) / 2
		sq := mid * mid
		if sq == a {
			return mid
		}
		if sq < a {
			start = mid + 1
			retVal = mid
		} else {
			end = mid - 1
		}
	}
	return retVal
}

// boardFrom builds a board from a row major list of colours. The position must be legal.
func boardFrom(t *testing.T, colours []game.Colour) *Board {
	size := sqrt(len(colours))
	b := newBoard(size)
	for i, c := range colours {
		if c == None {
			continue
		}
		m := game.PlayerMove{Player: game.Player(c), Coord: b.itol(game.Single(i))}
		if _, err := b.Apply(m); err != nil {
			t.Fatalf("Unable to set up board: %v", err)
		}
	}
	return b
}

var applyTests = []struct {
	board   []game.Colour
	move    game.PlayerMove
	board2  []game.Colour // nil if invalid
	taken   int
	willErr error
}{
	// placing on an empty
	{
		board: []game.Colour{
			None, None, None,
			None, None, None,
			None, None, None,
		},
		move: game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 1, Y: 1}},
		board2: []game.Colour{
			None, None, None,
			None, Black, None,
			None, None, None,
		},
	},

	// basic capture
	// · O ·
	// O X O
	// · · ·
	//
	// becomes:
	//
	// · O ·
	// O · O
	// · O ·
	{
		board: []game.Colour{
			None, White, None,
			White, Black, White,
			None, None, None,
		},
		move: game.PlayerMove{Player: WhiteP, Coord: game.Coord{X: 1, Y: 2}},
		board2: []game.Colour{
			None, White, None,
			White, None, White,
			None, White, None,
		},
		taken: 1,
	},

	// group capture
	// · O · ·
	// O X O ·
	// O X O ·
	// · · · ·
	//
	// becomes:
	//
	// · O · ·
	// O · O ·
	// O · O ·
	// · O · ·
	{
		board: []game.Colour{
			None, White, None, None,
			White, Black, White, None,
			White, Black, White, None,
			None, None, None, None,
		},
		move: game.PlayerMove{Player: WhiteP, Coord: game.Coord{X: 1, Y: 3}},
		board2: []game.Colour{
			None, White, None, None,
			White, None, White, None,
			White, None, White, None,
			None, White, None, None,
		},
		taken: 2,
	},

	// edge case (literally AT THE EDGE)
	// · · · ·
	// · · · ·
	// · X X ·
	// X O O ·
	//
	// becomes:
	//
	// · · · ·
	// · · · ·
	// · X X ·
	// X · · X
	{
		board: []game.Colour{
			None, None, None, None,
			None, None, None, None,
			None, Black, Black, None,
			Black, White, White, None,
		},
		move: game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 3, Y: 3}},
		board2: []game.Colour{
			None, None, None, None,
			None, None, None, None,
			None, Black, Black, None,
			Black, None, None, Black,
		},
		taken: 2,
	},

	// joining two groups through the played stone
	// X · X
	// · · ·
	// · · ·
	{
		board: []game.Colour{
			Black, None, Black,
			None, None, None,
			None, None, None,
		},
		move: game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 1, Y: 0}},
		board2: []game.Colour{
			Black, Black, Black,
			None, None, None,
			None, None, None,
		},
	},

	// a move without liberties is legal when it captures
	// · X O ·
	// X O · O
	// · X O ·
	// · · · ·
	{
		board: []game.Colour{
			None, Black, White, None,
			Black, White, None, White,
			None, Black, White, None,
			None, None, None, None,
		},
		move: game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 2, Y: 1}},
		board2: []game.Colour{
			None, Black, White, None,
			Black, None, Black, White,
			None, Black, White, None,
			None, None, None, None,
		},
		taken: 1,
	},

	// Suicide
	// · O ·
	// O · O
	// · O ·
	//
	// Disallowed:
	// · O ·
	// O X O
	// · O ·
	{
		board: []game.Colour{
			None, White, None,
			White, None, White,
			None, White, None,
		},
		move:    game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 1, Y: 1}},
		willErr: ErrSuicide,
	},

	// group suicide
	// X O ·
	// · O ·
	// O · ·
	{
		board: []game.Colour{
			Black, White, None,
			None, White, None,
			White, None, None,
		},
		move:    game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 0, Y: 1}},
		willErr: ErrSuicide,
	},

	// occupied
	{
		board: []game.Colour{
			None, None, None,
			None, White, None,
			None, None, None,
		},
		move:    game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 1, Y: 1}},
		willErr: ErrOccupied,
	},

	// impossible move
	{
		board: []game.Colour{
			None, None, None,
			None, None, None,
			None, None, None,
		},
		move:    game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 3, Y: 3}},
		willErr: ErrOutOfBounds,
	},

	// impossible colour
	{
		board: []game.Colour{
			None, None, None,
			None, None, None,
			None, None, None,
		},
		move:    game.PlayerMove{Player: game.Player(None), Coord: game.Coord{X: 1, Y: 1}},
		willErr: ErrPlayer,
	},
}

func TestBoard_Apply(t *testing.T) {
	for testID, at := range applyTests {
		board := boardFrom(t, at.board)
		hash := board.Hash()

		taken, err := board.Apply(at.move)

		switch {
		case at.willErr != nil && err == nil:
			t.Errorf("Test %d: Expected an error for \n%s", testID, board)
			continue
		case at.willErr != nil && err != nil:
			if !errors.Is(err, at.willErr) {
				t.Errorf("Test %d: Expected %v. Got %v", testID, at.willErr, err)
			}
			if errors.Cause(at.willErr) == ErrIllegalMove && errors.Cause(err) != ErrIllegalMove {
				t.Errorf("Test %d: Expected the cause of %v to be %v", testID, err, ErrIllegalMove)
			}
			if board.Hash() != hash {
				t.Errorf("Test %d: A failed move changed the board\n%s", testID, board)
			}
			continue
		case at.willErr == nil && err != nil:
			t.Errorf("Test %d: err %v", testID, err)
			continue
		}

		if taken != at.taken {
			t.Errorf("Test %d: Expected %d to be taken. Got %d instead", testID, at.taken, taken)
		}

		for i, v := range board.Colours() {
			if v != at.board2[i] {
				t.Errorf("Test %d: Board failure:\n%s", testID, board)
				break
			}
		}

		for _, g := range board.Groups() {
			if board.Liberties(g) == 0 {
				t.Errorf("Test %d: %v has no liberties left", testID, g)
			}
		}
	}
}

func TestBoard_Merge(t *testing.T) {
	board := boardFrom(t, []game.Colour{
		Black, None, Black,
		None, None, None,
		None, None, None,
	})
	if len(board.Groups()) != 2 {
		t.Fatalf("Expected 2 groups. Got %d", len(board.Groups()))
	}
	before := board.Groups()

	if _, err := board.Apply(game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 1, Y: 0}}); err != nil {
		t.Fatal(err)
	}
	groups := board.Groups()
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group. Got %d", len(groups))
	}
	g := groups[0]
	if g.Size() != 3 {
		t.Errorf("Expected the merged group to have 3 stones. Got %v", g)
	}
	for x := int16(0); x < 3; x++ {
		if board.GroupAt(game.Coord{X: x, Y: 0}) != g {
			t.Errorf("Expected (%d, 0) to point to the merged group", x)
		}
	}
	if board.Liberties(g) != 3 {
		t.Errorf("Expected 3 liberties. Got %d", board.Liberties(g))
	}
	// the old groups are untouched
	for _, old := range before {
		if old.Size() != 1 {
			t.Errorf("Expected old group %v to be left alone", old)
		}
	}
}

func TestBoard_Hash(t *testing.T) {
	a := boardFrom(t, []game.Colour{
		None, White, None,
		White, Black, White,
		None, None, None,
	})
	if _, err := a.Apply(game.PlayerMove{Player: WhiteP, Coord: game.Coord{X: 1, Y: 2}}); err != nil {
		t.Fatal(err)
	}
	b := boardFrom(t, []game.Colour{
		None, White, None,
		White, None, White,
		None, White, None,
	})
	if a.Hash() != b.Hash() {
		t.Errorf("Expected equal positions to hash equally. %v vs %v", a.Hash(), b.Hash())
	}
	if !a.Eq(b) {
		t.Errorf("Expected boards to be equal\n%s\n%s", a, b)
	}
}

func TestCloneEq(t *testing.T) {
	board := newBoard(3)
	if !board.Eq(board) {
		t.Fatal("Failed basic equality")
	}
	// clone a clean board for later
	board3 := board.Clone()
	board.Apply(game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 2, Y: 0}})
	board.Apply(game.PlayerMove{Player: WhiteP, Coord: game.Coord{X: 1, Y: 1}})

	board2 := board.Clone()
	if board2 == board {
		t.Errorf("Cloning should not yield the same address")
	}
	if &board.data[0] == &board2.data[0] {
		t.Errorf("Cloning should not yield the same underlying backing")
	}
	if !board.Eq(board2) {
		t.Fatal("Cloning failed")
	}

	board2.Apply(game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 0, Y: 0}})
	if board.Eq(board2) {
		t.Fatal("Changing a clone should not change the original")
	}

	board.Reset()
	if !board.Eq(board3) {
		t.Fatalf("Reset board should be the same as newBoard\n%s\n%s", board, board3)
	}
}

func TestBoard_Format(t *testing.T) {
	b := newBoard(7)
	b.Apply(game.PlayerMove{Player: WhiteP, Coord: game.Coord{X: 1, Y: 1}})
	b.Apply(game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 3, Y: 3}})
	b.Apply(game.PlayerMove{Player: WhiteP, Coord: game.Coord{X: 5, Y: 1}})
	b.Apply(game.PlayerMove{Player: BlackP, Coord: game.Coord{X: 5, Y: 5}})
	s := fmt.Sprintf("%s", b)
	t.Logf("\n%v", s)

	expected := "⎢ · · · · · · · ⎥\n" +
		"⎢ · O · · · O · ⎥\n" +
		"⎢ · · · · · · · ⎥\n" +
		"⎢ · · · X · · · ⎥\n" +
		"⎢ · · · · · · · ⎥\n" +
		"⎢ · · · · · X · ⎥\n" +
		"⎢ · · · · · · · ⎥\n"
	if s != expected {
		t.Errorf("Expected\n%s\nGot\n%s", expected, s)
	}
}
