package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allDirty(m Mat[bool]) bool {
	for _, d := range m.cells {
		if !d {
			return false
		}
	}
	return true
}

func noneDirty(m Mat[bool]) bool {
	for _, d := range m.cells {
		if d {
			return false
		}
	}
	return true
}

// gridFromRows builds a grid of any size, including ones too small for the
// default shapes.
func gridFromRows(width, height int64, rows ...string) Grid {
	l := Level{Width: width, Height: height, Rows: rows}
	c := &Catalog{
		Shapes:  []Shape{dot},
		Palette: NewDefaultCatalog().Palette,
	}
	if err := l.Validate(c); err != nil {
		panic(err)
	}
	return l.NewGrid()
}

func TestGrid_NewGrid(t *testing.T) {
	g := NewGrid(10, 22)
	assert.Equal(t, int64(10), g.Width())
	assert.Equal(t, int64(22), g.Height())

	// A new grid is empty but everything needs to be painted once.
	g.AllCells(func(pt Pt) {
		assert.Equal(t, int64(0), g.Get(pt))
	})
	assert.True(t, allDirty(g.DirtyMap()))

	assert.Panics(t, func() { NewGrid(0, 5) })
}

func TestGrid_AllCellsRowMajor(t *testing.T) {
	g := NewGrid(3, 2)
	var visited []Pt
	g.AllCells(func(pt Pt) { visited = append(visited, pt) })
	assert.Equal(t, []Pt{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}},
		visited)

	var rows []int64
	g.AllRows(func(row int64) { rows = append(rows, row) })
	assert.Equal(t, []int64{0, 1}, rows)
}

func TestGrid_OutOfRangePanics(t *testing.T) {
	g := NewGrid(4, 4)
	assert.Panics(t, func() { g.Get(Pt{-1, 0}) })
	assert.Panics(t, func() { g.Get(Pt{4, 0}) })
	assert.Panics(t, func() { g.Get(Pt{0, 4}) })
	assert.Panics(t, func() { g.MarkDirty(Pt{0, -1}) })
	assert.Panics(t, func() { g.IsDirty(Pt{5, 5}) })
	assert.Panics(t, func() { g.ClearDirtyAt(Pt{-3, 2}) })
	assert.NotPanics(t, func() { g.Get(Pt{3, 3}) })
}

func TestGrid_Lock(t *testing.T) {
	shape := NewShape("test", [][]int64{
		{0, 7},
		{7, 7},
	})

	// Does the piece keep its color?
	g := NewGrid(4, 4)
	g.ConsumeDirty()
	g.Lock(Piece{Shape: shape, Pos: Pt{1, 2}}, 0)
	assert.Equal(t, int64(0), g.Get(Pt{1, 2}))
	assert.Equal(t, int64(7), g.Get(Pt{2, 2}))
	assert.Equal(t, int64(7), g.Get(Pt{1, 3}))
	assert.Equal(t, int64(7), g.Get(Pt{2, 3}))
	// Locking is not the grid's business as far as the dirty map goes.
	assert.True(t, noneDirty(g.DirtyMap()))

	// Does a locked value replace the color?
	g = NewGrid(4, 4)
	g.Lock(Piece{Shape: shape, Pos: Pt{0, 0}}, 1)
	assert.Equal(t, int64(0), g.Get(Pt{0, 0}))
	assert.Equal(t, int64(1), g.Get(Pt{1, 0}))
	assert.Equal(t, int64(1), g.Get(Pt{0, 1}))
	assert.Equal(t, int64(1), g.Get(Pt{1, 1}))

	// Empty cells of the shape never blank out locked cells.
	g = gridFromRows(4, 4,
		"3...",
		"....")
	g.Lock(Piece{Shape: shape, Pos: Pt{0, 2}}, 0)
	assert.Equal(t, int64(3), g.Get(Pt{0, 2}))
	assert.Equal(t, int64(7), g.Get(Pt{0, 3}))
}

func TestGrid_ClearCompletedRows(t *testing.T) {
	g := gridFromRows(4, 5,
		"1..2",
		"3333",
		".4..")
	g.ConsumeDirty()

	n := g.ClearCompletedRows()
	assert.Equal(t, int64(1), n)

	expected := gridFromRows(4, 5,
		"1..2",
		".4..")
	assert.Equal(t, expected.Cells(), g.Cells())
	assert.Equal(t, []int64{0, 0, 0, 0}, g.cells.Row(0))
	assert.True(t, allDirty(g.DirtyMap()))
}

func TestGrid_ClearCompletedRowsSeveral(t *testing.T) {
	g := gridFromRows(3, 6,
		"1..",
		"222",
		".3.",
		"444",
		"..5")

	n := g.ClearCompletedRows()
	assert.Equal(t, int64(2), n)

	expected := gridFromRows(3, 6,
		"1..",
		".3.",
		"..5")
	assert.Equal(t, expected.Cells(), g.Cells())

	// Adjacent full rows go together.
	g = gridFromRows(3, 4,
		"9..",
		"111",
		"222")
	assert.Equal(t, int64(2), g.ClearCompletedRows())
	expected = gridFromRows(3, 4, "9..")
	assert.Equal(t, expected.Cells(), g.Cells())
}

func TestGrid_ClearCompletedRowsNothingToClear(t *testing.T) {
	g := gridFromRows(3, 3,
		"1.1",
		"22.")
	g.ConsumeDirty()
	before := g.Cells()

	assert.Equal(t, int64(0), g.ClearCompletedRows())
	assert.Equal(t, before, g.Cells())
	assert.True(t, noneDirty(g.DirtyMap()))
}

func TestGrid_Dirty(t *testing.T) {
	g := NewGrid(3, 3)
	require.Len(t, g.ConsumeDirty(), 9)

	g.MarkDirty(Pt{1, 2})
	g.MarkDirty(Pt{0, 0})
	assert.True(t, g.IsDirty(Pt{1, 2}))
	assert.False(t, g.IsDirty(Pt{1, 1}))

	g.ClearDirtyAt(Pt{0, 0})
	assert.False(t, g.IsDirty(Pt{0, 0}))

	// Consuming twice without changes yields nothing the second time.
	assert.Equal(t, []Pt{{1, 2}}, g.ConsumeDirty())
	assert.Empty(t, g.ConsumeDirty())
	assert.True(t, noneDirty(g.DirtyMap()))
}

func TestGrid_Reset(t *testing.T) {
	g := gridFromRows(3, 3, "123", "4.5")
	g.ConsumeDirty()
	g.Reset()
	assert.Equal(t, NewGrid(3, 3).Cells(), g.Cells())
	assert.True(t, allDirty(g.DirtyMap()))
}
