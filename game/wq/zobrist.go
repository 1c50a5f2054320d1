package 围碁

import (
	"math/rand"

	"github.com/gorgonia/goban/game"
)

// zobrist is a data structure for calculating Zobrist hashes.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// Fundamentally it is a (BOARDSIZE * BOARDSIZE, 2) matrix, which stores one random key per
// point per colour. The hash of a board is the XOR of the keys of all stones on it, so
// placing and removing a stone are the same operation.
//
// The table is seeded with the board size, which makes equal positions hash equally
// across games of the same size.
type zobrist struct {
	table []int32   // backing storage
	it    [][]int32 // iterator for quick access
	hash  int32
}

func makeZobrist(size int) zobrist {
	r := rand.New(rand.NewSource(int64(size)))
	table := make([]int32, size*size*2)
	it := make([][]int32, size*size)
	for i := range table {
		table[i] = r.Int31()
	}
	for i := range it {
		it[i] = table[i*2 : i*2+2 : i*2+2]
	}
	return zobrist{
		table: table,
		it:    it,
	}
}

// update toggles the key of colour c at a point. Stones are both placed and removed with update.
// Points without a stone have no key.
func (z *zobrist) update(at game.Single, c game.Colour) {
	switch c {
	case game.Black:
		z.hash ^= z.it[at][0]
	case game.White:
		z.hash ^= z.it[at][1]
	}
}

func (z *zobrist) clone() zobrist {
	retVal := zobrist{
		table: z.table, // the table is never written after construction
		it:    z.it,
		hash:  z.hash,
	}
	return retVal
}
