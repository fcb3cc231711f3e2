package hex

import "fmt"

// Player identifies a stone color, or the absence of one.
type Player int

const (
	None Player = iota
	Red
	Blue
)

// String renders the player for logs and board dumps.
func (p Player) String() string {
	switch p {
	case Red:
		return "R"
	case Blue:
		return "B"
	default:
		return "0"
	}
}

// Opponent returns the other color. Opponent(None) is None.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return None
	}
}

// Cell is a board coordinate. Real cells satisfy 0 <= Row,Col < size;
// the disjoint-set edge sentinels (see edge1 and edge2) use negative
// coordinates so they can never collide with a real cell.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighborOffsets enumerates the six hex-grid adjacency directions.
var neighborOffsets = [6]Cell{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: -1, Col: 1},
	{Row: 1, Col: -1},
}

// Board is a mapping from cell to occupying player over an N x N grid.
type Board struct {
	Size  int
	cells []Player
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) *Board {
	return &Board{
		Size:  size,
		cells: make([]Player, size*size),
	}
}

func (b *Board) index(c Cell) int {
	return c.Row*b.Size + c.Col
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Size && c.Col >= 0 && c.Col < b.Size
}

// At returns the player occupying c. c must be in bounds.
func (b *Board) At(c Cell) Player {
	return b.cells[b.index(c)]
}

// set places p at c. c must be in bounds.
func (b *Board) set(c Cell, p Player) {
	b.cells[b.index(c)] = p
}

// Neighbors returns the in-bounds cells adjacent to c.
func (b *Board) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 6)
	for _, off := range neighborOffsets {
		n := Cell{Row: c.Row + off.Row, Col: c.Col + off.Col}
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Moves returns every empty cell in row-major order, a deterministic
// traversal given the board's contents.
func (b *Board) Moves() []Cell {
	moves := make([]Cell, 0, len(b.cells))
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			c := Cell{Row: row, Col: col}
			if b.At(c) == None {
				moves = append(moves, c)
			}
		}
	}
	return moves
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		Size:  b.Size,
		cells: make([]Player, len(b.cells)),
	}
	copy(clone.cells, b.cells)
	return clone
}

// String renders the board with 'R'/'B'/'0' cells, one row per line,
// cells separated by spaces, for logs and debugging. This is not the
// match driver's wire format (see lastRedStone in cmd/hexmcts, the only
// place that parses it).
func (b *Board) String() string {
	out := make([]byte, 0, b.Size*(2*b.Size+1))
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if col > 0 {
				out = append(out, ' ')
			}
			switch b.At(Cell{Row: row, Col: col}) {
			case Red:
				out = append(out, 'R')
			case Blue:
				out = append(out, 'B')
			default:
				out = append(out, '0')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
