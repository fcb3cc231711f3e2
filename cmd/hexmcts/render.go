package main

import (
	"os"
	"strings"

	"github.com/hexmcts/engine/pkg/hex"
	"github.com/muesli/termenv"
)

var (
	output    = termenv.NewOutput(os.Stdout)
	redStone  = termenv.String("R").Foreground(output.Color("1")).Bold()
	blueStone = termenv.String("B").Foreground(output.Color("4")).Bold()
	emptyCell = termenv.String("·").Foreground(output.Color("8"))
)

// renderBoard draws b to a human-readable, colorized string: each row
// indented to form the usual Hex rhombus, stones colored by side.
func renderBoard(b *hex.Board) string {
	var sb strings.Builder
	for row := 0; row < b.Size; row++ {
		sb.WriteString(strings.Repeat(" ", row))
		for col := 0; col < b.Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			switch b.At(hex.Cell{Row: row, Col: col}) {
			case hex.Red:
				sb.WriteString(redStone.String())
			case hex.Blue:
				sb.WriteString(blueStone.String())
			default:
				sb.WriteString(emptyCell.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
