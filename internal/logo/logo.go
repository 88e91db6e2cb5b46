// Package logo draws the placeholder whale mark used when no real logo
// asset exists yet: a white body ellipse, a tail fluke, two spout puffs
// and a red eye on an opaque black background.
package logo

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// refSize is the canvas the fixed-pixel details (spout puffs, eye radius)
// were designed against; they scale proportionally at other sizes.
const refSize = 1024

// Draw renders the placeholder mark at size×size pixels.
func Draw(size int) image.Image {
	s := float64(size)
	px := s / refSize

	dc := gg.NewContext(size, size)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	bodyX := s * 0.3
	bodyY := s * 0.35
	bodyW := s * 0.5
	bodyH := s * 0.35

	dc.SetColor(color.White)
	dc.DrawEllipse(bodyX+bodyW/2, bodyY+bodyH/2, bodyW/2, bodyH/2)
	dc.Fill()

	// Tail fluke off the left flank.
	dc.MoveTo(bodyX-s*0.05, bodyY+bodyH*0.4)
	dc.LineTo(bodyX-s*0.15, bodyY+bodyH*0.2)
	dc.LineTo(bodyX-s*0.1, bodyY+bodyH*0.6)
	dc.ClosePath()
	dc.Fill()

	// Water spout: two puffs above the blowhole.
	spoutX := bodyX + bodyW*0.6
	spoutY := bodyY - s*0.05
	dc.DrawEllipse(spoutX, spoutY-20*px, 20*px, 20*px)
	dc.Fill()
	dc.DrawEllipse(spoutX+50*px, spoutY-20*px, 20*px, 20*px)
	dc.Fill()

	dc.SetHexColor("#ff0000")
	dc.DrawCircle(bodyX+bodyW*0.65, bodyY+bodyH*0.4, 15*px)
	dc.Fill()

	return dc.Image()
}
