package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// CellMargin is the gap between the colored part of a cell and its border, so
// that neighboring cells of the same color can be told apart.
const CellMargin = int64(2)

var screenBackground = color.NRGBA{R: 7, G: 54, B: 66, A: 255}
var textColor = color.NRGBA{R: 238, G: 232, B: 213, A: 255}
var debugBackground = color.NRGBA{R: 88, G: 110, B: 117, A: 255}
var playBarColor = color.NRGBA{R: 147, G: 161, B: 161, A: 255}
var playBarCursorColor = color.NRGBA{R: 253, G: 246, B: 227, A: 255}

func (g *Gui) Draw(screen *ebiten.Image) {
	defer g.HandlePanic()

	screen.Fill(screenBackground)
	g.DrawPlayScreen(screen)
	if g.enableDebugAreas {
		g.DrawDebugControls(SubImage(screen, g.debugArea))
	}
}

func (g *Gui) cellRect(pt Pt) Rectangle {
	return NewRectangle(pt.X*g.CellPixelSize, pt.Y*g.CellPixelSize,
		g.CellPixelSize, g.CellPixelSize)
}

// DrawCell paints one cell of the board: the background, and on top of it the
// color of val if val is not empty.
func (g *Gui) DrawCell(img *ebiten.Image, pt Pt, val int64) {
	palette := g.world.Palette()
	r := g.cellRect(pt)
	DrawRect(img, r, palette[0])
	if val == 0 {
		return
	}
	inner := Rectangle{
		Min: r.Min.Plus(Pt{CellMargin, CellMargin}),
		Max: r.Max.Minus(Pt{CellMargin, CellMargin}),
	}
	DrawRect(img, inner, palette[val])
}

// updateBoardImage brings the persistent image of the locked cells up to date.
// Only the cells the World reports as dirty are repainted.
func (g *Gui) updateBoardImage() {
	size := g.BoardSize()
	if g.boardImg == nil ||
		int64(g.boardImg.Bounds().Dx()) != size.X ||
		int64(g.boardImg.Bounds().Dy()) != size.Y {
		g.boardImg = ebiten.NewImage(int(size.X), int(size.Y))
		g.world.Grid.MarkAllDirty()
	}

	for _, pt := range g.world.ConsumeDirty() {
		g.DrawCell(g.boardImg, pt, g.world.Grid.Get(pt))
	}
}

func (g *Gui) DrawPlayScreen(screen *ebiten.Image) {
	g.updateBoardImage()
	board := SubImage(screen, g.boardArea)
	DrawImageAt(board, g.boardImg, Pt{})

	// The falling piece is drawn on top of the board every frame, it never
	// becomes part of the board image.
	if p := g.world.Piece; p != nil {
		for pt, val := range p.Cells() {
			if g.world.Grid.Contains(pt) {
				g.DrawCell(board, pt, val)
			}
		}
	}

	boardRect := NewRectangle(0, 0, g.boardArea.Width(), g.boardArea.Height())
	for i := range g.visWorld.Flashes {
		DrawRect(board, boardRect, g.visWorld.Flashes[i].CurrentColor())
	}

	g.DrawPanel(SubImage(screen, g.panelArea))
}

func (g *Gui) DrawPanel(panel *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("Lines: %d", g.world.NClearedRows),
		fmt.Sprintf("Pieces: %d", g.world.NLockedPieces),
		fmt.Sprintf("Game: %d", g.world.NResets+1),
		"",
		"Left/Right: move",
		"Down: drop",
		"Up: rotate",
		"R: restart",
	}
	if g.state != PlayScreen {
		lines = append(lines, "",
			fmt.Sprintf("Frame: %d/%d", g.frameIdx,
				len(g.playthrough.History)))
	}

	lineHeight := int64(g.defaultFont.Metrics().Height.Ceil())
	for i, line := range lines {
		g.DrawText(panel, line, Pt{0, int64(i) * lineHeight}, textColor)
	}
}

func (g *Gui) DrawDebugControls(screen *ebiten.Image) {
	// Background of playback bar.
	screen.Fill(debugBackground)

	// Play/pause button. The areas are in screen coordinates, the debug
	// controls are drawn relative to the debug area.
	playButton := g.playButton.Translated(Pt{}.Minus(g.debugArea.Min))
	DrawRect(screen, playButton, playBarColor)
	label := "||"
	if g.playbackPaused {
		label = ">"
	}
	g.DrawText(SubImage(screen, playButton), label, Pt{10, 10},
		debugBackground)

	// Play bar.
	playBar := g.playBar.Translated(Pt{}.Minus(g.debugArea.Min))
	DrawRect(screen, playBar, playBarColor)

	// Playback bar cursor.
	nFrames := max(int64(len(g.playthrough.History)), 1)
	cursorWidth := int64(8)
	cursorX := playBar.Min.X + g.frameIdx*playBar.Width()/nFrames -
		cursorWidth/2
	DrawRect(screen, NewRectangle(cursorX, playBar.Min.Y, cursorWidth,
		playBar.Height()), playBarCursorColor)
}

// DrawText draws message with the top-left corner of its bounds at pos, in
// the local coordinates of screen.
func (g *Gui) DrawText(screen *ebiten.Image, message string, pos Pt,
	color color.Color) {
	// The origin of the text is on the baseline, so most of the text appears
	// above the origin. BoundString tells how far above: Min.Y is negative.
	textSize := text.BoundString(g.defaultFont, message)
	textX := screen.Bounds().Min.X + int(pos.X)
	textY := screen.Bounds().Min.Y + int(pos.Y) - textSize.Min.Y
	text.Draw(screen, message, g.defaultFont, textX, textY, color)
}
