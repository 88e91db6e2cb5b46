// Package imgio loads source logos and writes generated assets.
// PNG and JPEG sources are detected by content; SVG sources by extension,
// rasterized at their intrinsic viewbox size. All writes are atomic so a
// failed encode never leaves a truncated file.
package imgio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/Mavwarf/iconkit/internal/paths"
)

// Load decodes a source image from disk.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		img, err := rasterizeSVG(f)
		if err != nil {
			return nil, fmt.Errorf("rasterizing %s: %w", path, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// rasterizeSVG renders an SVG at its declared viewbox size, falling back
// to 1024×1024 when the document declares none.
func rasterizeSVG(r io.Reader) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}
	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		w, h = 1024, 1024
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.Draw(rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())), 1.0)
	return img, nil
}

// Write encodes img to path, picking the format from the extension:
// .ico gets ICO encoding, everything else PNG.
func Write(path string, img image.Image) error {
	if strings.EqualFold(filepath.Ext(path), ".ico") {
		return WriteICO(path, img)
	}
	return WritePNG(path, img)
}

// WritePNG encodes img with best compression and writes it atomically.
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteICO encodes img as a single-image ICO and writes it atomically.
func WriteICO(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
