package world

// InBounds reports whether every occupied cell of shape, placed at pos, lies
// in a valid column. Rows are not checked: pieces may stick out above the
// grid while they spawn or rotate.
func InBounds(g *Grid, shape Shape, pos Pt) bool {
	for pt := range shape.Occupied(pos) {
		if pt.X < 0 || pt.X >= g.Width() {
			return false
		}
	}
	return true
}

// HitsSolid reports whether shape, placed at pos, touches something solid.
// The row just below the grid is the floor and is always solid. Any other
// cell is clamped into the grid and tested against the locked cell there.
func HitsSolid(g *Grid, shape Shape, pos Pt) bool {
	for pt := range shape.Occupied(pos) {
		if pt.Y >= g.Height() {
			return true
		}
		fixed := Pt{
			X: Clamp(0, pt.X, g.Width()-1),
			Y: Clamp(0, pt.Y, g.Height()-1),
		}
		if g.Get(fixed) > 0 {
			return true
		}
	}
	return false
}

// Fits is the test a piece must pass to be placed: in bounds and not
// overlapping anything solid.
func Fits(g *Grid, p Piece) bool {
	return InBounds(g, p.Shape, p.Pos) && !HitsSolid(g, p.Shape, p.Pos)
}
