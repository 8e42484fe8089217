// Package page models the scrolling document around the 3D canvas: the
// stacked sections that drive scroll triggers and the content container
// that fades out during preview.
package page

// Section is a full-width block of the page. Height is in viewport heights.
type Section struct {
	Name   string  `yaml:"name"`
	Height float32 `yaml:"height"`
}

// Region is the scroll span over which a section's top edge travels from
// the viewport bottom to the viewport top.
type Region struct {
	Start float32
	End   float32
}

// Progress returns how far y is through the region, clamped to [0,1].
func (r Region) Progress(y float32) float32 {
	if r.End <= r.Start {
		if y >= r.End {
			return 1
		}
		return 0
	}
	p := (y - r.Start) / (r.End - r.Start)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Passed reports whether y is at or beyond the region end.
func (r Region) Passed(y float32) bool {
	return y >= r.End
}

// Layout places sections top to bottom for a viewport height in pixels.
type Layout struct {
	viewport float32
	sections []Section
	tops     []float32
	height   float32
}

// NewLayout stacks sections for the given viewport height.
func NewLayout(viewportHeight float32, sections []Section) *Layout {
	l := &Layout{sections: append([]Section(nil), sections...)}
	l.Resize(viewportHeight)
	return l
}

// Resize recomputes section offsets for a new viewport height.
func (l *Layout) Resize(viewportHeight float32) {
	l.viewport = viewportHeight
	l.tops = l.tops[:0]
	y := float32(0)
	for _, s := range l.sections {
		l.tops = append(l.tops, y)
		y += s.Height * viewportHeight
	}
	l.height = y
}

// ViewportHeight returns the viewport height in pixels.
func (l *Layout) ViewportHeight() float32 {
	return l.viewport
}

// Sections returns the section list.
func (l *Layout) Sections() []Section {
	return l.sections
}

// Top returns the document offset of the named section.
func (l *Layout) Top(name string) (float32, bool) {
	for i, s := range l.sections {
		if s.Name == name {
			return l.tops[i], true
		}
	}
	return 0, false
}

// Region returns the scroll-trigger region of the named section.
func (l *Layout) Region(name string) (Region, bool) {
	top, ok := l.Top(name)
	if !ok {
		return Region{}, false
	}
	return Region{Start: top - l.viewport, End: top}, true
}

// MaxScroll returns the largest reachable scroll offset.
func (l *Layout) MaxScroll() float32 {
	if m := l.height - l.viewport; m > 0 {
		return m
	}
	return 0
}

// Clamp limits y to the scrollable range.
func (l *Layout) Clamp(y float32) float32 {
	if y < 0 {
		return 0
	}
	if m := l.MaxScroll(); y > m {
		return m
	}
	return y
}
