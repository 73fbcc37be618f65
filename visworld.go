package main

import (
	"image/color"

	"github.com/marisvali/tetro/world"
)

// FlashNFrames is how long a flash stays on the board.
const FlashNFrames = 20

var clearFlashColor = color.NRGBA{R: 255, G: 255, B: 255, A: 160}
var resetFlashColor = color.NRGBA{R: 220, G: 50, B: 47, A: 200}

// Flash is a colored overlay on the board that fades out. It doesn't
// represent anything in the World, it is a standalone effect.
type Flash struct {
	Color       color.NRGBA
	NFramesLeft int64
}

// CurrentColor is the color of the flash for the current frame, its alpha
// going down as the flash runs out.
func (f *Flash) CurrentColor() color.NRGBA {
	c := f.Color
	c.A = uint8(int64(c.A) * f.NFramesLeft / FlashNFrames)
	return c
}

// VisWorld is a world parallel to World that holds "visual logic". Its role is
// to store data and execute logic for ongoing visual effects. Draw() relies on
// the information in VisWorld to draw things, just like it relies on World.
//
// VisWorld runs parallel to World and is meant to be updated alongside World,
// in the Update() function.
type VisWorld struct {
	Flashes []Flash
}

func NewVisWorld() (v VisWorld) {
	return
}

func (v *VisWorld) Step(w *world.World) {
	// Step existing flashes and filter out the ones that ran out.
	n := 0
	for i := range v.Flashes {
		v.Flashes[i].NFramesLeft--
		if v.Flashes[i].NFramesLeft > 0 {
			v.Flashes[n] = v.Flashes[i]
			n++
		}
	}
	v.Flashes = v.Flashes[:n]

	// Create new flashes if necessary.
	if w.JustClearedRows > 0 {
		v.Flashes = append(v.Flashes, Flash{
			Color:       clearFlashColor,
			NFramesLeft: FlashNFrames,
		})
	}
	if w.JustReset {
		v.Flashes = append(v.Flashes, Flash{
			Color:       resetFlashColor,
			NFramesLeft: FlashNFrames,
		})
	}
}
