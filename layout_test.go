package main

import (
	"testing"

	"github.com/marisvali/tetro/world"
	"github.com/stretchr/testify/assert"
)

func TestGui_Layout(t *testing.T) {
	var g Gui
	g.world = world.NewWorld(0, world.Level{})
	g.CellPixelSize = 40

	// The game area is 780 x 920, a square window is wider than that.
	w, h := g.Layout(1000, 1000)
	assert.Equal(t, 920, w)
	assert.Equal(t, 920, h)
	assert.Equal(t, NewRectangle(70, 0, 780, 920), g.gameArea)
	assert.Equal(t, NewRectangle(90, 20, 400, 880), g.boardArea)
	assert.Equal(t, NewRectangle(510, 20, 320, 880), g.panelArea)

	// A tall window gets a screen as wide as the game area.
	w, h = g.Layout(500, 1000)
	assert.Equal(t, 780, w)
	assert.Equal(t, 1560, h)
	assert.Equal(t, Pt{0, 320}, g.gameArea.Min)
}

func TestGui_LayoutWithDebugArea(t *testing.T) {
	var g Gui
	g.world = world.NewWorld(0, world.Level{Width: 5, Height: 5})
	g.CellPixelSize = 10
	g.enableDebugAreas = true

	// Game area is 430 x 90, the debug area adds 60 under it.
	w, h := g.Layout(900, 150)
	assert.Equal(t, 900, w)
	assert.Equal(t, 150, h)
	assert.Equal(t, NewRectangle(235, 0, 430, 90), g.gameArea)
	assert.Equal(t, NewRectangle(235, 90, 430, 60), g.debugArea)
	assert.Equal(t, NewRectangle(235, 90, 60, 60), g.playButton)
	assert.Equal(t, NewRectangle(305, 90, 350, 60), g.playBar)
	assert.True(t, g.playBar.ContainsPt(Pt{400, 120}))
	assert.False(t, g.playButton.ContainsPt(Pt{400, 120}))
}
