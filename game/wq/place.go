package 围碁

import (
	"github.com/gorgonia/goban/game"
)

// placement is a checked move that has not yet been written to the board.
type placement struct {
	move     game.PlayerMove
	group    *Group   // the group the new stone will belong to, allies merged in
	absorbed []*Group // allied groups merged into group
	captures []*Group // enemy groups whose last liberty is the new stone
}

// capturedStones is the number of stones the placement removes from the board.
func (p placement) capturedStones() (retVal int) {
	for _, g := range p.captures {
		retVal += g.Size()
	}
	return
}

// ko returns the point that would be recaptured immediately: a single stone capturing a single stone.
func (p placement) ko() (game.Coord, bool) {
	if p.group.Size() != 1 || len(p.captures) != 1 || p.captures[0].Size() != 1 {
		return game.Coord{}, false
	}
	for c := range p.captures[0].stones {
		return c, true
	}
	return game.Coord{}, false
}

// check will find the captures and merges (if any) if the move is valid.
// If the move is invalid, an error will be returned. The board is not modified.
func (b *Board) check(m game.PlayerMove) (p placement, err error) {
	if !game.IsValid(m.Player) {
		return p, illegal(m, ErrPlayer)
	}
	c := m.Coord
	if !b.isCoordValid(c) {
		return p, illegal(m, ErrOutOfBounds)
	}
	if b.it[c.Y][c.X] != 0 {
		return p, illegal(m, ErrOccupied)
	}

	colour := game.Colour(m.Player)
	tentative := newGroup(c, colour)
	seen := make(map[groupID]struct{}, 4)
	var valid bool
	var allies []*Group

	for _, a := range b.adjacentsCoord(c) {
		if !b.isCoordValid(a) {
			continue
		}
		tentative.border[a] = struct{}{}

		other := b.GroupAt(a)
		switch {
		case other == nil:
			valid = true
			continue
		case other.colour == colour:
			if _, ok := seen[other.id]; !ok {
				allies = append(allies, other)
			}
		case b.Liberties(other) == 1:
			// the only liberty left is c
			if _, ok := seen[other.id]; !ok {
				p.captures = append(p.captures, other)
			}
			valid = true
		}
		seen[other.id] = struct{}{}
	}

	for _, ally := range allies {
		merged, err := Merge(tentative, ally)
		if err != nil {
			// allies are of the same colour by construction
			panic(err)
		}
		tentative = merged
	}
	p.move = m
	p.group = tentative
	p.absorbed = allies

	if !valid && b.Liberties(tentative) > 0 {
		valid = true
	}
	if !valid {
		return placement{}, illegal(m, ErrSuicide)
	}
	return p, nil
}

// commit writes a checked placement: captured groups are removed first, then the absorbed
// allies, and finally the merged group is written. It returns the number of stones captured.
func (b *Board) commit(p placement) int {
	captured := p.capturedStones()
	for _, g := range p.captures {
		b.remove(g)
	}
	for _, g := range p.absorbed {
		b.remove(g)
	}
	b.add(p.group)
	return captured
}

// Apply returns the number of captures or an error, if a move were to be applied.
//
// Apply knows nothing of turns or ko; those are enforced by Game.
func (b *Board) Apply(m game.PlayerMove) (int, error) {
	p, err := b.check(m)
	if err != nil {
		return 0, err
	}
	return b.commit(p), nil
}
