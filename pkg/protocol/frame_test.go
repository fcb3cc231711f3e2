package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineStart(t *testing.T) {
	f, err := ParseLine("START;11;R")
	require.NoError(t, err)
	assert.Equal(t, FrameStart, f.Kind)
	assert.Equal(t, 11, f.BoardSize)
	assert.Equal(t, ColourRed, f.Colour)
}

func TestParseLineChangeMove(t *testing.T) {
	f, err := ParseLine("CHANGE;3,4;R0B0,0000,0000;B")
	require.NoError(t, err)
	assert.Equal(t, FrameChange, f.Kind)
	assert.Equal(t, Move{Row: 3, Col: 4}, f.Move)
	assert.Equal(t, ColourBlue, f.Turn)
	assert.False(t, f.Swap)
}

func TestParseLineChangeSwap(t *testing.T) {
	f, err := ParseLine("CHANGE;SWAP;R000,0000,0000;B")
	require.NoError(t, err)
	assert.True(t, f.Swap)
	assert.Equal(t, ColourBlue, f.Turn)
}

func TestParseLineChangeEnd(t *testing.T) {
	f, err := ParseLine("CHANGE;3,4;board;END")
	require.NoError(t, err)
	assert.Equal(t, FrameEnd, f.Kind)
}

func TestParseLineEnd(t *testing.T) {
	f, err := ParseLine("END;some reason")
	require.NoError(t, err)
	assert.Equal(t, FrameEnd, f.Kind)
}

func TestParseLineMalformedReturnsProtocolFramingError(t *testing.T) {
	_, err := ParseLine("GARBAGE;1;2")
	assert.True(t, errors.Is(err, ErrProtocolFraming))

	_, err = ParseLine("START;notanumber;R")
	assert.True(t, errors.Is(err, ErrProtocolFraming))

	_, err = ParseLine("CHANGE;1,x;board;R")
	assert.True(t, errors.Is(err, ErrProtocolFraming))
}

func TestParseLinesSplitsAndTrims(t *testing.T) {
	frames, err := ParseLines([]byte("START;11;R\nCHANGE;1,1;board;B\n"))
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, FrameStart, frames[0].Kind)
	assert.Equal(t, FrameChange, frames[1].Kind)
}

func TestColourOpposite(t *testing.T) {
	assert.Equal(t, ColourBlue, ColourRed.Opposite())
	assert.Equal(t, ColourRed, ColourBlue.Opposite())
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "3,4", Move{Row: 3, Col: 4}.String())
}
