package world

import "fmt"

// Grid is the play field. It holds the locked cells and a parallel dirty map
// that marks the cells whose visual state changed since the renderer last
// consumed it.
// Cell values are color indices: 0 is empty, anything else is a locked cell.
type Grid struct {
	cells Mat[int64]
	dirty Mat[bool]
}

// NewGrid returns an empty grid with every cell marked dirty, so that the
// first render paints the whole field.
func NewGrid(width, height int64) (g Grid) {
	if width <= 0 || height <= 0 {
		panic(fmt.Errorf("invalid grid size: %dx%d", width, height))
	}
	g.cells = NewMat[int64](Pt{width, height})
	g.dirty = NewMat[bool](Pt{width, height})
	g.dirty.Fill(true)
	return
}

func (g *Grid) Size() Pt {
	return g.cells.Size()
}

func (g *Grid) Width() int64 {
	return g.cells.Size().X
}

func (g *Grid) Height() int64 {
	return g.cells.Size().Y
}

func (g *Grid) Contains(pt Pt) bool {
	return g.cells.InBounds(pt)
}

// mustContain enforces the precondition that callers never pass coordinates
// outside the grid.
func (g *Grid) mustContain(pt Pt) {
	if !g.Contains(pt) {
		panic(fmt.Errorf("coordinate %v outside %dx%d grid", pt, g.Width(),
			g.Height()))
	}
}

func (g *Grid) Get(pt Pt) int64 {
	g.mustContain(pt)
	return g.cells.Get(pt)
}

func (g *Grid) set(pt Pt, val int64) {
	g.mustContain(pt)
	g.cells.Set(pt, val)
}

// AllCells visits every cell in row-major order.
func (g *Grid) AllCells(visit func(pt Pt)) {
	var pt Pt
	for pt.Y = 0; pt.Y < g.Height(); pt.Y++ {
		for pt.X = 0; pt.X < g.Width(); pt.X++ {
			visit(pt)
		}
	}
}

// AllRows visits every row index, top to bottom.
func (g *Grid) AllRows(visit func(row int64)) {
	for row := int64(0); row < g.Height(); row++ {
		visit(row)
	}
}

// Cells returns a snapshot of the locked cells.
func (g *Grid) Cells() Mat[int64] {
	return g.cells.Clone()
}

// Lock merges the occupied cells of p into the grid. If lockedValue is 0 the
// piece keeps its colors, otherwise every merged cell gets lockedValue.
// The caller must have checked that the piece fits. Lock does not touch the
// dirty map.
func (g *Grid) Lock(p Piece, lockedValue int64) {
	for pt, val := range p.Cells() {
		if lockedValue != 0 {
			val = lockedValue
		}
		g.set(pt, val)
	}
}

func (g *Grid) rowComplete(row int64) bool {
	for _, v := range g.cells.Row(row) {
		if v == 0 {
			return false
		}
	}
	return true
}

// ClearCompletedRows removes every row in which all cells are occupied.
// The rows above a removed row shift down by one and an empty row appears at
// the top. Rows are checked once, top to bottom. If anything was cleared the
// whole grid is marked dirty.
func (g *Grid) ClearCompletedRows() (count int64) {
	g.AllRows(func(row int64) {
		if !g.rowComplete(row) {
			return
		}
		count++
		for y := row; y > 0; y-- {
			copy(g.cells.Row(y), g.cells.Row(y-1))
		}
		clear(g.cells.Row(0))
	})

	if count > 0 {
		g.MarkAllDirty()
	}
	return
}

// Reset empties the grid and marks everything dirty.
func (g *Grid) Reset() {
	g.cells.Fill(0)
	g.dirty.Fill(true)
}

func (g *Grid) MarkDirty(pt Pt) {
	g.mustContain(pt)
	g.dirty.Set(pt, true)
}

func (g *Grid) IsDirty(pt Pt) bool {
	g.mustContain(pt)
	return g.dirty.Get(pt)
}

func (g *Grid) ClearDirtyAt(pt Pt) {
	g.mustContain(pt)
	g.dirty.Set(pt, false)
}

func (g *Grid) MarkAllDirty() {
	g.dirty.Fill(true)
}

// DirtyMap returns a snapshot of the dirty map without resetting it.
func (g *Grid) DirtyMap() Mat[bool] {
	return g.dirty.Clone()
}

// ConsumeDirty returns the dirty cells in row-major order and marks them
// clean.
func (g *Grid) ConsumeDirty() (pts []Pt) {
	g.AllCells(func(pt Pt) {
		if g.dirty.Get(pt) {
			pts = append(pts, pt)
			g.dirty.Set(pt, false)
		}
	})
	return
}
