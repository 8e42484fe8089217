// Package debug provides capture helpers for inspecting the presenter.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"
)

// Screenshots writes framebuffer captures as PNG files.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
	seq    int

	// Logical size to scale captures to. Zero keeps the drawable size.
	fitW, fitH int
}

// NewScreenshots creates a capture writer for dir. An empty dir writes to
// the working directory.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// Fit scales subsequent captures to width x height, so HiDPI captures
// match the window size.
func (s *Screenshots) Fit(width, height int) {
	s.fitW, s.fitH = width, height
}

// Save encodes bottom-up RGBA rows, as read back from OpenGL, into a
// top-down PNG and returns the file path.
func (s *Screenshots) Save(pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}

	var out image.Image = img
	if s.fitW > 0 && s.fitH > 0 && (s.fitW != width || s.fitH != height) {
		scaled := image.NewRGBA(image.Rect(0, 0, s.fitW, s.fitH))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		out = scaled
	}

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	path := s.nextPath()

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, out); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, nil
}

// nextPath names captures by timestamp with a counter so two captures in
// the same second do not collide.
func (s *Screenshots) nextPath() string {
	s.seq++
	name := fmt.Sprintf("%s_%s_%03d.png", s.prefix, s.now().Format("2006-01-02_15-04-05"), s.seq)
	return filepath.Join(s.dir, name)
}
