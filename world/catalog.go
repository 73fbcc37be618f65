package world

import "image/color"

// Catalog is the fixed set of shapes pieces are drawn from, together with the
// palette that maps cell values to colors. Index 0 of the palette is the
// background.
type Catalog struct {
	Shapes  []Shape
	Palette []color.NRGBA
}

func hex(rgb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 255,
	}
}

func NewDefaultCatalog() *Catalog {
	c := &Catalog{}
	c.Shapes = []Shape{
		NewShape("block", [][]int64{
			{4, 4},
			{4, 4},
		}),
		NewShape("L", [][]int64{
			{0, 8, 0, 0},
			{0, 8, 0, 0},
			{0, 8, 0, 0},
			{0, 8, 8, 0},
		}),
		NewShape("T", [][]int64{
			{9, 9, 9},
			{0, 9, 0},
			{0, 0, 0},
		}),
		NewShape("long", [][]int64{
			{0, 2, 0, 0},
			{0, 2, 0, 0},
			{0, 2, 0, 0},
			{0, 2, 0, 0},
		}),
		NewShape("Z", [][]int64{
			{0, 0, 3, 0},
			{0, 3, 3, 0},
			{0, 3, 0, 0},
			{0, 0, 0, 0},
		}),
		NewShape("S", [][]int64{
			{0, 6, 0, 0},
			{0, 6, 6, 0},
			{0, 0, 6, 0},
			{0, 0, 0, 0},
		}),
	}

	// Solarized.
	c.Palette = []color.NRGBA{
		hex(0x002b36), // background
		hex(0x93a1a1), // gray
		hex(0xdc322f), // red
		hex(0x859900), // green
		hex(0x268bd2), // blue
		hex(0xb58900), // yellow
		hex(0x2aa198), // cyan
		hex(0x6c71c4), // violet
		hex(0xcb4b16), // orange
		hex(0xd33682), // magenta
	}
	return c
}

// RandomShape picks a shape uniformly from the catalog.
func (c *Catalog) RandomShape(r *Rand) Shape {
	return c.Shapes[r.RInt(0, int64(len(c.Shapes))-1)]
}

func (c *Catalog) PaletteSize() int64 {
	return int64(len(c.Palette))
}
