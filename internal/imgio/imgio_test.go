package imgio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestWritePNGLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	red := color.NRGBA{0xff, 0, 0, 0xff}

	if err := WritePNG(path, solid(10, 10, red)); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("bounds = %v, want 10x10", b)
	}
	r, g, b, a := img.At(5, 5).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("pixel(5,5) = %d,%d,%d,%d, want opaque red", r, g, b, a)
	}
}

func TestWritePicksEncoderByExtension(t *testing.T) {
	dir := t.TempDir()
	img := solid(16, 16, color.NRGBA{0, 0xff, 0, 0xff})

	pngPath := filepath.Join(dir, "out.png")
	if err := Write(pngPath, img); err != nil {
		t.Fatalf("Write(png): %v", err)
	}
	data, err := os.ReadFile(pngPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("expected PNG signature, got % x", data[:8])
	}

	icoPath := filepath.Join(dir, "out.ico")
	if err := Write(icoPath, img); err != nil {
		t.Fatalf("Write(ico): %v", err)
	}
	data, err = os.ReadFile(icoPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// ICONDIR header: reserved=0, type=1.
	if len(data) < 4 || data[0] != 0 || data[1] != 0 || data[2] != 1 || data[3] != 0 {
		t.Errorf("expected ICO header, got % x", data[:4])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Load of missing file returned nil error")
	}
}

func TestLoadMalformedImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed file returned nil error")
	}
}

func TestLoadSVGRasterizesAtViewBox(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
		<rect x="0" y="0" width="64" height="64" fill="#ff0000"/>
	</svg>`
	path := filepath.Join(t.TempDir(), "logo.svg")
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("bounds = %v, want 64x64", b)
	}
	r, g, _, a := img.At(32, 32).RGBA()
	if r < 0xf000 || g > 0x0fff || a < 0xf000 {
		t.Errorf("pixel(32,32) = %d,%d,-,%d, want opaque red", r, g, a)
	}
}
