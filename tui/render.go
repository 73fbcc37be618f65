package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/tetro/world"
)

// CellWidth is the number of terminal columns per grid cell. Terminal
// characters are about twice as tall as they are wide, so two of them make a
// square.
const CellWidth = 2

// Renderer draws a World on a tcell screen. The board starts one row down and
// one column right of the origin to leave room for a border.
type Renderer struct {
	screen tcell.Screen
	styles []tcell.Style
	border tcell.Style
	text   tcell.Style
}

func NewRenderer(screen tcell.Screen, w *world.World) *Renderer {
	r := &Renderer{screen: screen}
	for _, c := range w.Palette() {
		bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		r.styles = append(r.styles, tcell.StyleDefault.Background(bg))
	}
	r.border = tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.text = tcell.StyleDefault
	return r
}

// ScreenPos is the terminal position of the left half of a grid cell.
func ScreenPos(pt world.Pt) (x, y int) {
	return 1 + int(pt.X)*CellWidth, 1 + int(pt.Y)
}

// Invalidate forces the next Draw to repaint everything, after the terminal
// was resized or cleared.
func (r *Renderer) Invalidate(w *world.World) {
	r.screen.Clear()
	w.Grid.MarkAllDirty()
	r.drawBorder(w)
}

func (r *Renderer) drawBorder(w *world.World) {
	width := int(w.Grid.Width())*CellWidth + 2
	height := int(w.Grid.Height()) + 2
	for x := range width {
		r.screen.SetContent(x, 0, '─', nil, r.border)
		r.screen.SetContent(x, height-1, '─', nil, r.border)
	}
	for y := range height {
		r.screen.SetContent(0, y, '│', nil, r.border)
		r.screen.SetContent(width-1, y, '│', nil, r.border)
	}
	r.screen.SetContent(0, 0, '┌', nil, r.border)
	r.screen.SetContent(width-1, 0, '┐', nil, r.border)
	r.screen.SetContent(0, height-1, '└', nil, r.border)
	r.screen.SetContent(width-1, height-1, '┘', nil, r.border)
}

// Draw repaints the cells the World reports as dirty, the status lines, and
// shows the result.
func (r *Renderer) Draw(w *world.World) {
	for _, pt := range w.ConsumeDirty() {
		style := r.styles[w.ValueAt(pt)]
		x, y := ScreenPos(pt)
		for i := range CellWidth {
			r.screen.SetContent(x+i, y, ' ', nil, style)
		}
	}

	statusX := int(w.Grid.Width())*CellWidth + 4
	r.drawString(statusX, 1, fmt.Sprintf("Lines  %d", w.NClearedRows))
	r.drawString(statusX, 2, fmt.Sprintf("Pieces %d", w.NLockedPieces))
	r.drawString(statusX, 3, fmt.Sprintf("Game   %d", w.NResets+1))
	r.drawString(statusX, 5, "←→↓ move  ↑ rotate")
	r.drawString(statusX, 6, "r restart  q quit")
	r.screen.Show()
}

func (r *Renderer) drawString(x, y int, s string) {
	for _, c := range s {
		r.screen.SetContent(x, y, c, nil, r.text)
		x++
	}
	// Erase what is left of a longer previous string.
	for range 4 {
		r.screen.SetContent(x, y, ' ', nil, r.text)
		x++
	}
}

// KeyInput translates a key press into input for the World. quit is set for
// the keys that end the program.
func KeyInput(ev *tcell.EventKey) (input world.PlayerInput, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		quit = true
	case tcell.KeyLeft:
		input.MoveLeft = true
	case tcell.KeyRight:
		input.MoveRight = true
	case tcell.KeyDown:
		input.MoveDown = true
	case tcell.KeyUp:
		input.Rotate = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			quit = true
		case 'a', 'h':
			input.MoveLeft = true
		case 'd', 'l':
			input.MoveRight = true
		case 's', 'j', ' ':
			input.MoveDown = true
		case 'w', 'k':
			input.Rotate = true
		case 'r':
			input.Restart = true
		}
	}
	return
}
