package world

import "iter"

// Shape is the footprint of a piece: a small matrix of color indices where 0
// means the cell is not part of the piece. Shapes are never modified after
// they are created. RotateClockwise returns a new Shape.
type Shape struct {
	Name  string
	cells Mat[int64]
}

// NewShape builds a shape from rows given top to bottom. All rows must have
// the same length.
func NewShape(name string, rows [][]int64) (s Shape) {
	s.Name = name
	if len(rows) == 0 {
		s.cells = NewMat[int64](Pt{})
		return
	}
	s.cells = NewMat[int64](Pt{int64(len(rows[0])), int64(len(rows))})
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			panic("shape rows must have the same length")
		}
		for x, val := range row {
			s.cells.Set(Pt{int64(x), int64(y)}, val)
		}
	}
	return
}

// Size returns the number of columns (X) and rows (Y) of the shape.
func (s Shape) Size() Pt {
	return s.cells.Size()
}

func (s Shape) Get(local Pt) int64 {
	return s.cells.Get(local)
}

// Occupied yields every cell of the shape with a value > 0, translated by
// pos, together with its value. Cells are yielded row by row.
func (s Shape) Occupied(pos Pt) iter.Seq2[Pt, int64] {
	return func(yield func(Pt, int64) bool) {
		size := s.cells.Size()
		var local Pt
		for local.Y = 0; local.Y < size.Y; local.Y++ {
			for local.X = 0; local.X < size.X; local.X++ {
				val := s.cells.Get(local)
				if val <= 0 {
					continue
				}
				if !yield(pos.Plus(local), val) {
					return
				}
			}
		}
	}
}

// RotateClockwise turns the shape by 90 degrees. The cell at local
// (row, col) ends up at (col, H-1-row), where H is the number of rows. A
// shape with W columns and H rows becomes a shape with H columns and W rows.
func (s Shape) RotateClockwise() Shape {
	size := s.cells.Size()
	r := Shape{Name: s.Name}
	r.cells = NewMat[int64](Pt{size.Y, size.X})
	var local Pt
	for local.Y = 0; local.Y < size.Y; local.Y++ {
		for local.X = 0; local.X < size.X; local.X++ {
			r.cells.Set(Pt{size.Y - 1 - local.Y, local.X}, s.cells.Get(local))
		}
	}
	return r
}

func (s Shape) Equal(other Shape) bool {
	return s.cells.Equal(other.cells)
}

// Piece is the falling shape and the grid position of its local origin.
// A Piece is treated as a value: moving or rotating produces a new Piece.
type Piece struct {
	Shape Shape
	Pos   Pt
}

// Cells yields the grid coordinates and values of the occupied cells.
func (p Piece) Cells() iter.Seq2[Pt, int64] {
	return p.Shape.Occupied(p.Pos)
}

func (p Piece) MovedBy(delta Pt) Piece {
	return Piece{Shape: p.Shape, Pos: p.Pos.Plus(delta)}
}

func (p Piece) Rotated() Piece {
	return Piece{Shape: p.Shape.RotateClockwise(), Pos: p.Pos}
}
