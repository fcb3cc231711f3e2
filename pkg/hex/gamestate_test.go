package hex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameStateRedMovesFirst(t *testing.T) {
	s := NewGameState(5)
	assert.Equal(t, Red, s.ToPlay)
	assert.Equal(t, None, s.Winner())
}

func TestPlayAlternatesTurnAndCounts(t *testing.T) {
	s := NewGameState(3)
	require.NoError(t, s.Play(Cell{0, 0}))
	assert.Equal(t, Blue, s.ToPlay)
	assert.Equal(t, 1, s.RedPlayed)

	require.NoError(t, s.Play(Cell{1, 1}))
	assert.Equal(t, Red, s.ToPlay)
	assert.Equal(t, 1, s.BluePlayed)
}

func TestPlayOccupiedCellIsIllegal(t *testing.T) {
	s := NewGameState(3)
	require.NoError(t, s.Play(Cell{0, 0}))

	err := s.Play(Cell{0, 0})
	var illegal *IllegalMoveError
	assert.True(t, errors.As(err, &illegal))
	assert.Equal(t, Cell{0, 0}, illegal.Cell)
}

func TestPlayAfterWinIsIllegal(t *testing.T) {
	s := redTrivialWin(t)
	err := s.Play(Cell{2, 2})
	var illegal *IllegalMoveError
	assert.True(t, errors.As(err, &illegal))
}

func TestSetTurnRejectsNone(t *testing.T) {
	s := NewGameState(3)
	err := s.SetTurn(None)
	var invalid *InvalidTurnError
	assert.True(t, errors.As(err, &invalid))
}

func TestSetTurnAccepted(t *testing.T) {
	s := NewGameState(3)
	require.NoError(t, s.SetTurn(Blue))
	assert.Equal(t, Blue, s.ToPlay)
}

// redTrivialWin builds a 3x3 board where Red has filled an entire
// straight column, connecting row 0 to row 2.
func redTrivialWin(t *testing.T) *GameState {
	t.Helper()
	s := NewGameState(3)
	for _, mv := range []Cell{{0, 0}, {0, 1}, {1, 0}, {0, 2}, {2, 0}} {
		require.NoError(t, s.SetTurn(Red))
		require.NoError(t, s.Play(mv))
	}
	return s
}

func TestWinnerDetectsConnectedEdges(t *testing.T) {
	s := redTrivialWin(t)
	assert.Equal(t, Red, s.Winner())
}

func TestNoDrawPossible(t *testing.T) {
	s := NewGameState(3)
	rngMoves := []Cell{
		{0, 0}, {1, 1}, {0, 1}, {1, 0}, {0, 2},
		{2, 0}, {1, 2}, {2, 1}, {2, 2},
	}
	for _, mv := range rngMoves {
		if s.Winner() != None {
			break
		}
		require.NoError(t, s.Play(mv))
	}
	assert.NotEqual(t, None, s.Winner())
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewGameState(3)
	require.NoError(t, s.Play(Cell{1, 1}))

	clone := s.Clone()
	require.NoError(t, clone.Play(Cell{0, 0}))

	assert.Equal(t, None, s.Board.At(Cell{0, 0}))
	assert.Equal(t, Blue, clone.Board.At(Cell{0, 0}))
}
