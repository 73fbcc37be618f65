package world

import "image/color"

// SimulationVersion changes whenever the same seed, level and inputs would
// produce a different game. Playthroughs recorded with another
// SimulationVersion cannot be replayed.
const SimulationVersion = 2

var Down = Pt{0, 1}
var Left = Pt{-1, 0}
var Right = Pt{1, 0}

// World is the whole game state: the grid, the falling piece and the
// generator that picks the next pieces.
//
// World rules
//   - There is at most one falling piece. Piece is nil only in the middle of a
//     lock, never between two calls.
//   - A piece moves only to positions where it is in bounds and does not hit
//     anything solid. Rejected moves and rotations change nothing.
//   - A piece that is blocked while moving down locks into the grid, full rows
//     are cleared and a new piece spawns, all in the same call.
//   - If a new piece hits something solid where it spawns, the game is over:
//     the grid is emptied and the new piece stays.
//
// A World is not safe for concurrent use. Callers serialize every command.
type World struct {
	Level
	Grid    Grid
	Piece   *Piece
	Catalog *Catalog
	Rand    Rand

	// RedrawRequested is set by every command that changed something
	// visible. The renderer resets it.
	RedrawRequested bool

	// Events that happened during the last Step.
	JustLocked      bool
	JustClearedRows int64
	JustReset       bool

	// Totals since the World was created.
	NLockedPieces int64
	NClearedRows  int64
	NResets       int64
}

// NewWorld creates a World for a level and spawns the first piece. The level
// must be valid for the default catalog.
func NewWorld(seed int64, l Level) (w World) {
	w.Catalog = NewDefaultCatalog()
	if err := l.Validate(w.Catalog); err != nil {
		panic(err)
	}
	w.Level = l.WithDefaults()
	w.Grid = w.Level.NewGrid()
	w.Rand = NewRand(seed)
	w.Spawn()
	return
}

func (w *World) Palette() []color.NRGBA {
	return w.Catalog.Palette
}

// Spawn draws the next shape and places it at the top center of the grid.
// If it already hits something there the grid is reset. The cells of the new
// piece are marked dirty, so a renderer that only repaints dirty cells shows
// it right away.
func (w *World) Spawn() {
	shape := w.Catalog.RandomShape(&w.Rand)
	pos := SpawnPos(w.Grid.Width(), shape)

	if HitsSolid(&w.Grid, shape, pos) {
		w.Grid.Reset()
		w.JustReset = true
		w.NResets++
	}

	w.Piece = &Piece{Shape: shape, Pos: pos}
	w.markPieceDirty()
	w.RedrawRequested = true
}

// SpawnPos is where a new piece with shape s appears: the top row, centered.
func SpawnPos(width int64, s Shape) Pt {
	return Pt{X: width/2 - s.Size().X/2, Y: 0}
}

func (w *World) markPieceDirty() {
	if w.Piece == nil {
		return
	}
	for pt := range w.Piece.Cells() {
		if w.Grid.Contains(pt) {
			w.Grid.MarkDirty(pt)
		}
	}
}

// lock merges the piece into the grid, clears full rows and spawns the next
// piece.
func (w *World) lock() {
	w.markPieceDirty()
	w.Grid.Lock(*w.Piece, w.LockedValue)
	w.Piece = nil
	w.JustLocked = true
	w.NLockedPieces++

	n := w.Grid.ClearCompletedRows()
	w.JustClearedRows += n
	w.NClearedRows += n

	w.Spawn()
}

// Move shifts the piece by delta. A downward move that is blocked locks the
// piece. Any other blocked move is ignored.
func (w *World) Move(delta Pt) {
	if w.Piece == nil {
		return
	}

	w.markPieceDirty()
	moved := w.Piece.MovedBy(delta)
	hit := HitsSolid(&w.Grid, moved.Shape, moved.Pos)

	if delta.Y > 0 && hit {
		w.lock()
		w.RedrawRequested = true
		return
	}

	if !hit && InBounds(&w.Grid, moved.Shape, moved.Pos) {
		w.Piece = &moved
	}
	w.markPieceDirty()
	w.RedrawRequested = true
}

// Rotate turns the piece clockwise around its position, if the turned piece
// fits there.
func (w *World) Rotate() {
	if w.Piece == nil {
		return
	}

	rotated := w.Piece.Rotated()
	if !Fits(&w.Grid, rotated) {
		return
	}

	w.markPieceDirty()
	w.Piece = &rotated
	w.markPieceDirty()
	w.RedrawRequested = true
}

func (w *World) Tick() {
	w.Move(Down)
}

func (w *World) MoveLeft() {
	w.Move(Left)
}

func (w *World) MoveRight() {
	w.Move(Right)
}

func (w *World) MoveDown() {
	w.Move(Down)
}

// Restart empties the grid and starts over with a new piece, the same way a
// game over does.
func (w *World) Restart() {
	w.Grid.Reset()
	w.Piece = nil
	w.JustReset = true
	w.NResets++
	w.Spawn()
}

// Step applies one frame of input. The commands run in a fixed order so that
// a recorded playthrough always replays the same way.
func (w *World) Step(input PlayerInput) {
	w.JustLocked = false
	w.JustClearedRows = 0
	w.JustReset = false

	if input.Restart {
		w.Restart()
	}
	if input.MoveLeft {
		w.MoveLeft()
	}
	if input.MoveRight {
		w.MoveRight()
	}
	if input.Rotate {
		w.Rotate()
	}
	if input.MoveDown {
		w.MoveDown()
	}
	if input.Tick {
		w.Tick()
	}
}

// Cells returns a snapshot of the locked cells.
func (w *World) Cells() Mat[int64] {
	return w.Grid.Cells()
}

// DirtyMap returns a snapshot of the dirty map.
func (w *World) DirtyMap() Mat[bool] {
	return w.Grid.DirtyMap()
}

// ConsumeDirty returns the cells that need to be redrawn and marks them
// clean.
func (w *World) ConsumeDirty() []Pt {
	return w.Grid.ConsumeDirty()
}

// ValueAt is what a renderer should show at pt: the falling piece if it
// covers pt, otherwise the locked cell.
func (w *World) ValueAt(pt Pt) int64 {
	if w.Piece != nil {
		for cell, val := range w.Piece.Cells() {
			if cell == pt {
				return val
			}
		}
	}
	return w.Grid.Get(pt)
}
