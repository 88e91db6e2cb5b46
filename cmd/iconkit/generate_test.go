package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mavwarf/iconkit/internal/config"
	"github.com/Mavwarf/iconkit/internal/imgio"
)

func TestGeneratePlaceholder(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	tgt := &config.Target{Kind: "placeholder", Outputs: []string{"assets/logo.png"}}

	if err := generate("logo", tgt, cfg, dir, 64); err != nil {
		t.Fatalf("generate: %v", err)
	}

	img, err := imgio.Load(filepath.Join(dir, "assets", "logo.png"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("bounds = %v, want 64x64", b)
	}
}

func TestGenerateCompositeWritesIdenticalOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	// Seed the source with the placeholder, like `iconkit all` does.
	logoTgt := &config.Target{Kind: "placeholder", Outputs: []string{"assets/logo.png"}}
	if err := generate("logo", logoTgt, cfg, dir, 128); err != nil {
		t.Fatalf("generate(logo): %v", err)
	}

	iconTgt := &config.Target{
		Kind:     "composite",
		Source:   "assets/logo.png",
		Outputs:  []string{"assets/icon.png", "assets/adaptive-icon.png"},
		Variants: []int{32},
	}
	if err := generate("icon", iconTgt, cfg, dir, 128); err != nil {
		t.Fatalf("generate(icon): %v", err)
	}

	a, err := os.ReadFile(filepath.Join(dir, "assets", "icon.png"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "assets", "adaptive-icon.png"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("icon.png and adaptive-icon.png differ, want identical files")
	}

	img, err := imgio.Load(filepath.Join(dir, "assets", "icon.png"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if bo := img.Bounds(); bo.Dx() != 128 || bo.Dy() != 128 {
		t.Errorf("icon bounds = %v, want 128x128", bo)
	}

	v, err := imgio.Load(filepath.Join(dir, "assets", "icon-32.png"))
	if err != nil {
		t.Fatalf("Load variant: %v", err)
	}
	if bo := v.Bounds(); bo.Dx() != 32 || bo.Dy() != 32 {
		t.Errorf("variant bounds = %v, want 32x32", bo)
	}
}

func TestGenerateCompositeMissingSource(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	tgt := &config.Target{
		Kind:    "composite",
		Source:  "assets/logo.png",
		Outputs: []string{"assets/icon.png"},
	}

	if err := generate("icon", tgt, cfg, dir, 128); err == nil {
		t.Error("generate with missing source returned nil error")
	}
	if _, err := os.Stat(filepath.Join(dir, "assets", "icon.png")); !os.IsNotExist(err) {
		t.Errorf("expected no partial output, stat err = %v", err)
	}
}
