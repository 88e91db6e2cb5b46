// Package compose builds app icons by centering a resized logo on an
// opaque background canvas.
package compose

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Icon composites logo onto a size×size canvas filled with bg. The logo is
// resized to a scale fraction of the canvas edge with a Lanczos filter and
// pasted centered; its alpha channel acts as the paste mask. The canvas is
// opaque, so the result is fully opaque as well.
func Icon(logo image.Image, size int, scale float64, bg color.Color) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %d", size)
	}
	if scale <= 0 || scale > 1 {
		return nil, fmt.Errorf("scale must be in (0,1], got %v", scale)
	}

	logoSize := int(float64(size) * scale)
	if logoSize < 1 {
		logoSize = 1
	}
	resized := imaging.Resize(logo, logoSize, logoSize, imaging.Lanczos)
	canvas := imaging.New(size, size, bg)
	pos := image.Pt((size-logoSize)/2, (size-logoSize)/2)
	return imaging.Overlay(canvas, resized, pos, 1.0), nil
}

// Variant downscales a finished icon to a smaller square size.
func Variant(icon image.Image, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("variant size must be positive, got %d", size)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), icon, icon.Bounds(), xdraw.Over, nil)
	return dst, nil
}
