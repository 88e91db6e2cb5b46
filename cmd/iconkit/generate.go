package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/Mavwarf/iconkit/internal/compose"
	"github.com/Mavwarf/iconkit/internal/config"
	"github.com/Mavwarf/iconkit/internal/imgio"
	"github.com/Mavwarf/iconkit/internal/logo"
)

// resolveSize returns the canvas size.
// Priority: CLI --size > target size > config default.
func resolveSize(flag int, tgt *config.Target, cfg config.Config) int {
	if flag > 0 {
		return flag
	}
	if tgt.Size > 0 {
		return tgt.Size
	}
	return cfg.Options.Size
}

func resolveScale(tgt *config.Target, cfg config.Config) float64 {
	if tgt.Scale > 0 {
		return tgt.Scale
	}
	return cfg.Options.Scale
}

func resolveBackground(tgt *config.Target, cfg config.Config) string {
	if tgt.Background != "" {
		return tgt.Background
	}
	return cfg.Options.Background
}

// outputPath prefixes relative paths with the --out directory (or the
// config's out_dir). Absolute paths pass through untouched.
func outputPath(path, outDir string, cfg config.Config) string {
	dir := outDir
	if dir == "" {
		dir = cfg.Options.OutDir
	}
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// variantPath derives "icon-256.png" from "icon.png".
func variantPath(path string, size int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), size, ext)
}

// generate renders one target and writes all of its outputs.
func generate(name string, tgt *config.Target, cfg config.Config, outDir string, sizeFlag int) error {
	size := resolveSize(sizeFlag, tgt, cfg)

	var img image.Image
	switch tgt.Kind {
	case "composite":
		src, err := imgio.Load(outputPath(tgt.Source, outDir, cfg))
		if err != nil {
			return fmt.Errorf("target %q: %w", name, err)
		}
		bg, err := config.ParseHexColor(resolveBackground(tgt, cfg))
		if err != nil {
			return fmt.Errorf("target %q: %w", name, err)
		}
		img, err = compose.Icon(src, size, resolveScale(tgt, cfg), bg)
		if err != nil {
			return fmt.Errorf("target %q: %w", name, err)
		}
	case "placeholder":
		img = logo.Draw(size)
	default:
		return fmt.Errorf("target %q: unknown kind %q", name, tgt.Kind)
	}

	for _, out := range tgt.Outputs {
		p := outputPath(out, outDir, cfg)
		if err := imgio.Write(p, img); err != nil {
			return fmt.Errorf("target %q: %w", name, err)
		}
		fmt.Printf("%sCreated %s (%dx%d)\n", marker(), p, size, size)
	}

	if tgt.Kind == "composite" {
		for _, vs := range tgt.Variants {
			v, err := compose.Variant(img, vs)
			if err != nil {
				return fmt.Errorf("target %q: %w", name, err)
			}
			p := variantPath(outputPath(tgt.Outputs[0], outDir, cfg), vs)
			if err := imgio.Write(p, v); err != nil {
				return fmt.Errorf("target %q: %w", name, err)
			}
			fmt.Printf("%sCreated %s (%dx%d)\n", marker(), p, vs, vs)
		}
	}

	return nil
}

// marker returns the success-line prefix; decoration only when stdout is a
// terminal so piped output stays plain.
func marker() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "✅ "
	}
	return ""
}
