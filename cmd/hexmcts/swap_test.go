package main

import (
	"testing"

	"github.com/hexmcts/engine/pkg/hex"
	"github.com/stretchr/testify/assert"
)

func TestLastRedStoneFindsSoleStone(t *testing.T) {
	cell, ok := lastRedStone("0000,00R0,0000")
	assert.True(t, ok)
	assert.Equal(t, hex.Cell{Row: 1, Col: 2}, cell)
}

func TestLastRedStoneNoRedReturnsFalse(t *testing.T) {
	_, ok := lastRedStone("0000,0B00,0000")
	assert.False(t, ok)
}

func TestLastRedStoneAmbiguousReturnsFalse(t *testing.T) {
	_, ok := lastRedStone("R000,000R,0000")
	assert.False(t, ok)
}

func TestSplitBoardRowsHandlesSingleRow(t *testing.T) {
	rows := splitBoardRows("R0B0")
	assert.Equal(t, []string{"R0B0"}, rows)
}

func TestShouldSwapIsAlwaysTrue(t *testing.T) {
	assert.True(t, shouldSwap())
}
