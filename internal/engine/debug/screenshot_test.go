package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveFlipsRows(t *testing.T) {
	dir := t.TempDir()
	s := NewScreenshots(dir, "showcase")
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	// Two rows, bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := s.Save(pixels, 1, 2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, "showcase_2024-05-01_12-00-00_001.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("top pixel should be blue, got r=%d b=%d", r, b)
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Errorf("bottom pixel should be red, got r=%d b=%d", r, b)
	}
}

func TestSaveRejectsBadSize(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "x")
	if _, err := s.Save(make([]byte, 3), 1, 1); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestSequentialNamesDiffer(t *testing.T) {
	s := NewScreenshots("", "x")
	s.now = func() time.Time { return time.Unix(0, 0) }
	if s.nextPath() == s.nextPath() {
		t.Error("expected distinct names within the same second")
	}
}

func TestSaveFitsToLogicalSize(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "hidpi")
	s.Fit(2, 1)

	path, err := s.Save(make([]byte, 4*2*4), 4, 2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 2 || cfg.Height != 1 {
		t.Errorf("size = %dx%d, want 2x1", cfg.Width, cfg.Height)
	}
}
