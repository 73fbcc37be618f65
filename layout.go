package main

import "github.com/hajimehoshi/ebiten/v2"

// Visual areas
// ------------
//
// - The board: the grid of the World, CellPixelSize pixels per cell. Its size
// depends on the level, so it is known only at run time.
// - The panel: right of the board, shows counters and key bindings.
// - The game area: contains the board and the panel with margins around them.
// - The debug area: under the game area, contains the playback controls. It
// is displayed only when replaying a playthrough.
// - The screen: contains the game area, the debug area if it is displayed and
// any margins necessary to fill in the application window on the OS.

const Margin = int64(20)
const PanelWidth = int64(320)
const DebugHeight = int64(60)
const PlayBarMargin = int64(10)

// BoardSize is the size of the board in pixels.
func (g *Gui) BoardSize() Pt {
	return Pt{
		X: g.world.Grid.Width() * g.CellPixelSize,
		Y: g.world.Grid.Height() * g.CellPixelSize,
	}
}

func (g *Gui) GameSize() Pt {
	board := g.BoardSize()
	return Pt{
		X: Margin + board.X + Margin + PanelWidth + Margin,
		Y: Margin + board.Y + Margin,
	}
}

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	defer g.HandlePanic()

	// I receive the application window's actual width and height and return
	// the size of the screen bitmap that Draw will receive. Ebitengine scales
	// the bitmap to the window and preserves its aspect ratio, so I return a
	// bitmap with the aspect ratio of the window, large enough for the game
	// area (plus the debug area) to fit inside it.
	gameSize := g.GameSize()
	totalSize := gameSize
	if g.enableDebugAreas {
		totalSize.Y += DebugHeight
	}

	// The aspect ratio of a rectangle is width / height. If the window is
	// thinner than the game, the game fills the width of the screen and there
	// is space left at the top and the bottom. Otherwise the game fills the
	// height of the screen.
	outsideWidth = max(outsideWidth, 1)
	outsideHeight = max(outsideHeight, 1)
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(totalSize.X) / float64(totalSize.Y)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = int(totalSize.X)
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = int(totalSize.Y)
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}

	// Define every area relative to the total screen area, so that Update()
	// can compare them with the cursor position directly.
	g.gameArea = NewRectangle(
		(int64(screenWidth)-totalSize.X)/2,
		(int64(screenHeight)-totalSize.Y)/2,
		gameSize.X,
		gameSize.Y)

	board := g.BoardSize()
	g.boardArea = NewRectangle(Margin, Margin, board.X, board.Y).
		Translated(g.gameArea.Min)
	g.panelArea = NewRectangle(Margin+board.X+Margin, Margin, PanelWidth,
		board.Y).Translated(g.gameArea.Min)

	g.debugArea = NewRectangle(g.gameArea.Min.X, g.gameArea.Max.Y,
		gameSize.X, DebugHeight)
	g.playButton = NewRectangle(0, 0, DebugHeight, DebugHeight).
		Translated(g.debugArea.Min)
	g.playBar = NewRectangle(DebugHeight+PlayBarMargin, 0,
		gameSize.X-DebugHeight-2*PlayBarMargin, DebugHeight).
		Translated(g.debugArea.Min)
	return
}

func (g *Gui) UpdateWindowSize() {
	game := g.GameSize()
	if g.enableDebugAreas {
		game.Y += DebugHeight
	}
	_, height := ebiten.ScreenSizeInFullscreen()
	windowHeight := int64(height) * 8 / 10
	windowWidth := windowHeight * game.X / game.Y
	ebiten.SetWindowSize(int(windowWidth), int(windowHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Tetro")
}
