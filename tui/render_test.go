package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/tetro/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, l world.Level) (*Game, tcell.SimulationScreen) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 30)
	t.Cleanup(screen.Fini)

	p := world.NewPlaythrough(1, l, 0)
	return NewGame(screen, &p), screen
}

func backgroundAt(screen tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func paletteColor(w *world.World, val int64) tcell.Color {
	c := w.Palette()[val]
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func TestRenderer_DrawsGridAndPiece(t *testing.T) {
	g, screen := newTestGame(t, world.Level{Width: 4, Height: 6,
		Rows: []string{"3..."}})
	w := &g.world

	// A locked cell spans two terminal columns.
	x, y := ScreenPos(world.Pt{X: 0, Y: 5})
	assert.Equal(t, paletteColor(w, 3), backgroundAt(screen, x, y))
	assert.Equal(t, paletteColor(w, 3), backgroundAt(screen, x+1, y))

	// Empty cells show the background of the palette.
	x, y = ScreenPos(world.Pt{X: 3, Y: 5})
	assert.Equal(t, paletteColor(w, 0), backgroundAt(screen, x, y))

	// The live piece is visible right after it spawns.
	require.NotNil(t, w.Piece)
	for pt, val := range w.Piece.Cells() {
		x, y = ScreenPos(pt)
		assert.Equal(t, paletteColor(w, val), backgroundAt(screen, x, y))
	}

	// Everything was painted, nothing is left dirty.
	assert.Empty(t, w.ConsumeDirty())
}

func TestGame_StepRecordsAndRepaints(t *testing.T) {
	g, screen := newTestGame(t, world.Level{Width: 6, Height: 10})
	w := &g.world
	before := w.Piece.Pos

	g.Step(world.PlayerInput{Tick: true})
	assert.Equal(t, []world.PlayerInput{{Tick: true}}, g.playthrough.History)
	assert.Equal(t, before.Plus(world.Down), w.Piece.Pos)

	// The piece shows where it is now, not where it was.
	for pt, val := range w.Piece.Cells() {
		x, y := ScreenPos(pt)
		assert.Equal(t, paletteColor(w, val), backgroundAt(screen, x, y))
	}

	// Does the recorded game replay to the same place?
	replay := g.playthrough.NewWorld()
	for _, input := range g.playthrough.History {
		replay.Step(input)
	}
	assert.Equal(t, w.StateBytes(), replay.StateBytes())
}

func TestKeyInput(t *testing.T) {
	key := func(k tcell.Key, r rune) *tcell.EventKey {
		return tcell.NewEventKey(k, r, tcell.ModNone)
	}

	input, quit := KeyInput(key(tcell.KeyLeft, 0))
	assert.Equal(t, world.PlayerInput{MoveLeft: true}, input)
	assert.False(t, quit)

	input, _ = KeyInput(key(tcell.KeyUp, 0))
	assert.Equal(t, world.PlayerInput{Rotate: true}, input)

	input, _ = KeyInput(key(tcell.KeyRune, 'l'))
	assert.Equal(t, world.PlayerInput{MoveRight: true}, input)

	input, _ = KeyInput(key(tcell.KeyRune, ' '))
	assert.Equal(t, world.PlayerInput{MoveDown: true}, input)

	input, _ = KeyInput(key(tcell.KeyRune, 'r'))
	assert.Equal(t, world.PlayerInput{Restart: true}, input)

	_, quit = KeyInput(key(tcell.KeyRune, 'q'))
	assert.True(t, quit)
	_, quit = KeyInput(key(tcell.KeyEscape, 0))
	assert.True(t, quit)

	// Unknown keys do nothing.
	input, quit = KeyInput(key(tcell.KeyRune, 'z'))
	assert.False(t, input.EventOccurred())
	assert.False(t, quit)
}
