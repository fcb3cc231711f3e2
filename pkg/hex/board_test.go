package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardNeighborsCorner(t *testing.T) {
	b := NewBoard(5)
	n := b.Neighbors(Cell{Row: 0, Col: 0})
	assert.ElementsMatch(t, []Cell{{Row: 1, Col: 0}, {Row: 0, Col: 1}}, n)
}

func TestBoardNeighborsInterior(t *testing.T) {
	b := NewBoard(5)
	n := b.Neighbors(Cell{Row: 2, Col: 2})
	assert.Len(t, n, 6)
}

func TestBoardMovesRowMajorAndShrinksOnPlay(t *testing.T) {
	b := NewBoard(2)
	assert.Equal(t, []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, b.Moves())

	b.set(Cell{Row: 0, Col: 1}, Red)
	assert.Equal(t, []Cell{{0, 0}, {1, 0}, {1, 1}}, b.Moves())
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(3)
	b.set(Cell{Row: 1, Col: 1}, Blue)

	clone := b.Clone()
	clone.set(Cell{Row: 0, Col: 0}, Red)

	assert.Equal(t, None, b.At(Cell{Row: 0, Col: 0}))
	assert.Equal(t, Blue, clone.At(Cell{Row: 1, Col: 1}))
}

func TestBoardStringFormat(t *testing.T) {
	b := NewBoard(2)
	b.set(Cell{Row: 0, Col: 0}, Red)
	b.set(Cell{Row: 1, Col: 1}, Blue)
	assert.Equal(t, "R 0\n0 B\n", b.String())
}

func TestPlayerOpponent(t *testing.T) {
	assert.Equal(t, Blue, Red.Opponent())
	assert.Equal(t, Red, Blue.Opponent())
	assert.Equal(t, None, None.Opponent())
}
