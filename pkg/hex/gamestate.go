package hex

import "fmt"

// edge1 and edge2 are the two virtual anchors per color in the
// disjoint-set. They live outside any real board index (negative rows),
// so they can never alias an actual cell.
var (
	edge1 = Cell{Row: -1, Col: -1}
	edge2 = Cell{Row: -2, Col: -2}
)

// IllegalMoveError reports a play into an occupied cell, or a play after
// the game already has a winner.
type IllegalMoveError struct {
	Cell Cell
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("hex: illegal move at %s", e.Cell)
}

// InvalidTurnError reports an attempt to set the turn to None.
type InvalidTurnError struct {
	Player Player
}

func (e *InvalidTurnError) Error() string {
	return fmt.Sprintf("hex: invalid turn %v", e.Player)
}

// GameState is a mutable Hex position: the board, whose turn it is, and
// the per-color disjoint-sets used to answer the edge-to-edge
// connectivity question that decides the game.
//
// Red connects the top and bottom rows (row 0 and row Size-1); Blue
// connects the left and right columns (col 0 and col Size-1). Red moves
// first.
type GameState struct {
	Board      *Board
	ToPlay     Player
	RedPlayed  int
	BluePlayed int

	redGroups  *DisjointSet
	blueGroups *DisjointSet
}

// NewGameState returns a fresh size x size position with Red to move.
func NewGameState(size int) *GameState {
	s := &GameState{
		Board:      NewBoard(size),
		ToPlay:     Red,
		redGroups:  NewDisjointSet(),
		blueGroups: NewDisjointSet(),
	}
	s.redGroups.SetIgnored(edge1, edge2)
	s.blueGroups.SetIgnored(edge1, edge2)
	return s
}

// Clone returns a deep copy sharing no state with the receiver. Every
// selection descent and every rollout step operates on a clone so the
// tree's root state is never mutated out from under it.
func (s *GameState) Clone() *GameState {
	return &GameState{
		Board:      s.Board.Clone(),
		ToPlay:     s.ToPlay,
		RedPlayed:  s.RedPlayed,
		BluePlayed: s.BluePlayed,
		redGroups:  s.redGroups.Clone(),
		blueGroups: s.blueGroups.Clone(),
	}
}

// SetTurn forces whose move it is. Returns InvalidTurnError for None.
func (s *GameState) SetTurn(p Player) error {
	if p == None {
		return &InvalidTurnError{Player: p}
	}
	s.ToPlay = p
	return nil
}

// Play places the current player's stone at cell and flips the turn.
// Returns IllegalMoveError if the cell is occupied or the game already
// has a winner.
func (s *GameState) Play(cell Cell) error {
	if s.Board.At(cell) != None || s.Winner() != None {
		return &IllegalMoveError{Cell: cell}
	}

	switch s.ToPlay {
	case Red:
		s.placeRed(cell)
		s.ToPlay = Blue
	case Blue:
		s.placeBlue(cell)
		s.ToPlay = Red
	}
	return nil
}

func (s *GameState) placeRed(cell Cell) {
	s.Board.set(cell, Red)
	s.RedPlayed++

	if cell.Row == 0 {
		s.redGroups.Join(edge1, cell)
	}
	if cell.Row == s.Board.Size-1 {
		s.redGroups.Join(edge2, cell)
	}
	for _, n := range s.Board.Neighbors(cell) {
		if s.Board.At(n) == Red {
			s.redGroups.Join(n, cell)
		}
	}
}

func (s *GameState) placeBlue(cell Cell) {
	s.Board.set(cell, Blue)
	s.BluePlayed++

	if cell.Col == 0 {
		s.blueGroups.Join(edge1, cell)
	}
	if cell.Col == s.Board.Size-1 {
		s.blueGroups.Join(edge2, cell)
	}
	for _, n := range s.Board.Neighbors(cell) {
		if s.Board.At(n) == Blue {
			s.blueGroups.Join(n, cell)
		}
	}
}

// Winner returns Red or Blue once that color's two edge sentinels are
// connected, else None.
func (s *GameState) Winner() Player {
	if s.redGroups.Connected(edge1, edge2) {
		return Red
	}
	if s.blueGroups.Connected(edge1, edge2) {
		return Blue
	}
	return None
}

// Moves returns every empty cell, in deterministic row-major order.
func (s *GameState) Moves() []Cell {
	return s.Board.Moves()
}

// Neighbors returns the in-bounds cells adjacent to cell.
func (s *GameState) Neighbors(cell Cell) []Cell {
	return s.Board.Neighbors(cell)
}

// Size returns the board's side length.
func (s *GameState) Size() int {
	return s.Board.Size
}
