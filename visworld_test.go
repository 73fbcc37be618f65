package main

import (
	"testing"

	"github.com/marisvali/tetro/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisWorld_FlashOnClear(t *testing.T) {
	var w world.World
	v := NewVisWorld()

	v.Step(&w)
	assert.Empty(t, v.Flashes)

	w.JustClearedRows = 2
	v.Step(&w)
	require.Len(t, v.Flashes, 1)
	assert.Equal(t, clearFlashColor, v.Flashes[0].CurrentColor())

	// Does the flash fade and then go away?
	w.JustClearedRows = 0
	v.Step(&w)
	require.Len(t, v.Flashes, 1)
	assert.Less(t, v.Flashes[0].CurrentColor().A, clearFlashColor.A)
	for range FlashNFrames {
		v.Step(&w)
	}
	assert.Empty(t, v.Flashes)
}

func TestVisWorld_FlashOnReset(t *testing.T) {
	var w world.World
	v := NewVisWorld()
	w.JustReset = true
	w.JustClearedRows = 1
	v.Step(&w)
	require.Len(t, v.Flashes, 2)
	assert.Equal(t, resetFlashColor, v.Flashes[1].Color)
}
