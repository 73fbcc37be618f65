package world

// Mat is a rectangular matrix stored row-major in a single slice.
// Positions are Pt{X: column, Y: row}.
type Mat[T comparable] struct {
	cells []T
	size  Pt
}

func NewMat[T comparable](size Pt) Mat[T] {
	m := Mat[T]{}
	m.size = size
	m.cells = make([]T, size.X*size.Y)
	return m
}

func (m *Mat[T]) Size() Pt {
	return m.size
}

func (m *Mat[T]) Set(pos Pt, val T) {
	Assert(m.InBounds(pos))
	m.cells[pos.Y*m.size.X+pos.X] = val
}

func (m *Mat[T]) Get(pos Pt) T {
	Assert(m.InBounds(pos))
	return m.cells[pos.Y*m.size.X+pos.X]
}

func (m *Mat[T]) InBounds(pt Pt) bool {
	return pt.X >= 0 &&
		pt.Y >= 0 &&
		pt.Y < m.size.Y &&
		pt.X < m.size.X
}

// Row returns the cells of row y. The slice aliases the matrix.
func (m *Mat[T]) Row(y int64) []T {
	Assert(y >= 0 && y < m.size.Y)
	return m.cells[y*m.size.X : (y+1)*m.size.X]
}

func (m *Mat[T]) Fill(val T) {
	for i := range m.cells {
		m.cells[i] = val
	}
}

func (m *Mat[T]) Clone() Mat[T] {
	c := NewMat[T](m.size)
	copy(c.cells, m.cells)
	return c
}

func (m *Mat[T]) Equal(other Mat[T]) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
