package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the original image in a sub-image.
	// I prefer to think in local coordinates, so every helper below adds
	// Bounds().Min itself.
	minPt := screen.Bounds().Min
	return screen.SubImage(r.ToImageRectangle().Add(minPt)).(*ebiten.Image)
}

// DrawRect fills r with c. r is in the local coordinates of img.
func DrawRect(img *ebiten.Image, r Rectangle, c color.Color) {
	minPt := img.Bounds().Min
	vector.DrawFilledRect(img,
		float32(r.Min.X)+float32(minPt.X),
		float32(r.Min.Y)+float32(minPt.Y),
		float32(r.Width()),
		float32(r.Height()),
		c,
		false)
}

// DrawImageAt draws src unscaled with its top-left corner at pos, in the local
// coordinates of dst.
func DrawImageAt(dst *ebiten.Image, src *ebiten.Image, pos Pt) {
	minPt := dst.Bounds().Min
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(minPt.X)+float64(pos.X),
		float64(minPt.Y)+float64(pos.Y))
	dst.DrawImage(src, op)
}
