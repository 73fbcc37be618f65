package main

import (
	"image"

	"github.com/marisvali/tetro/world"
)

type Pt = world.Pt

// Rectangle is an area of the screen in pixels. Min is the top-left corner
// and Max is the bottom-right corner, both inclusive.
type Rectangle struct {
	Min Pt
	Max Pt
}

// NewRectangle builds a Rectangle from its top-left corner and its size.
func NewRectangle(x, y, width, height int64) Rectangle {
	return Rectangle{Pt{x, y}, Pt{x + width, y + height}}
}

func (r Rectangle) Width() int64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() int64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X &&
		pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Translated returns the same rectangle in a coordinate system whose origin
// is at origin.
func (r Rectangle) Translated(origin Pt) Rectangle {
	return Rectangle{r.Min.Plus(origin), r.Max.Plus(origin)}
}

func (r Rectangle) ToImageRectangle() image.Rectangle {
	return image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
}
