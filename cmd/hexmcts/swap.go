package main

import "github.com/hexmcts/engine/pkg/hex"

// openingMove is the hard-coded reply when we play Red first: a
// sufficiently off-center cell that it is a candidate for the
// opponent's pie-rule swap, without handing over an obviously winning
// first move.
var openingMove = hex.Cell{Row: 1, Col: 3}

// shouldSwap decides the pie-rule response when we are seated as Blue
// on the very first move. Hex's first-move advantage is strong enough
// that always swapping is the standard policy; this is deliberately not
// a function of the opening cell played.
func shouldSwap() bool {
	return true
}

// lastRedStone scans a match-driver board string for the sole Red
// stone. The driver's wire board is comma-separated rows of contiguous
// single-character cells (e.g. "R0B0,0000,0000"), distinct from
// hex.Board.String()'s space-separated debug format.
//
// This reimplements the intended semantics of the original
// extract_last_move_from_board helper, which the match protocol uses to
// recover the move Red just played after a pie-rule swap. ok is false
// if the board has no Red stone or more than one.
func lastRedStone(board string) (cell hex.Cell, ok bool) {
	rows := splitBoardRows(board)
	found := false
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			if row[c] != 'R' {
				continue
			}
			if found {
				return hex.Cell{}, false
			}
			cell = hex.Cell{Row: r, Col: c}
			found = true
		}
	}
	return cell, found
}

func splitBoardRows(board string) []string {
	rows := make([]string, 0, 16)
	start := 0
	for i := 0; i < len(board); i++ {
		if board[i] == ',' {
			rows = append(rows, board[start:i])
			start = i + 1
		}
	}
	rows = append(rows, board[start:])
	return rows
}
