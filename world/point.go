package world

// Pt is a position or an offset on the grid. X is the column and Y is the
// row, with row 0 at the top of the grid.
type Pt struct {
	X int64
	Y int64
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p *Pt) Add(other Pt) {
	p.X = p.X + other.X
	p.Y = p.Y + other.Y
}

func Clamp(min, value, max int64) int64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
