package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func showcaseLayout() *Layout {
	return NewLayout(600, []Section{
		{Name: "jumbotron", Height: 1},
		{Name: "sound", Height: 1},
		{Name: "display", Height: 1},
	})
}

func TestLayoutRegions(t *testing.T) {
	l := showcaseLayout()

	top, ok := l.Top("display")
	require.True(t, ok)
	assert.Equal(t, float32(1200), top)

	r, ok := l.Region("sound")
	require.True(t, ok)
	assert.Equal(t, Region{Start: 0, End: 600}, r)

	r, ok = l.Region("display")
	require.True(t, ok)
	assert.Equal(t, Region{Start: 600, End: 1200}, r)

	_, ok = l.Region("footer")
	assert.False(t, ok)

	assert.Equal(t, float32(1200), l.MaxScroll())
}

func TestRegionProgress(t *testing.T) {
	r := Region{Start: 600, End: 1200}
	assert.Equal(t, float32(0), r.Progress(0))
	assert.Equal(t, float32(0), r.Progress(600))
	assert.InDelta(t, 0.5, r.Progress(900), 1e-6)
	assert.Equal(t, float32(1), r.Progress(1200))
	assert.Equal(t, float32(1), r.Progress(5000))

	assert.False(t, r.Passed(1199))
	assert.True(t, r.Passed(1200))

	empty := Region{Start: 10, End: 10}
	assert.Equal(t, float32(0), empty.Progress(9))
	assert.Equal(t, float32(1), empty.Progress(10))
}

func TestLayoutResize(t *testing.T) {
	l := showcaseLayout()
	l.Resize(1000)

	r, ok := l.Region("display")
	require.True(t, ok)
	assert.Equal(t, Region{Start: 1000, End: 2000}, r)
	assert.Equal(t, float32(1000), l.ViewportHeight())
}

func TestDocumentScrollClamps(t *testing.T) {
	d := NewDocument(showcaseLayout())

	assert.Equal(t, float32(0), d.ScrollBy(-50))
	assert.Equal(t, float32(700), d.ScrollTo(700))
	assert.Equal(t, float32(1200), d.ScrollBy(10000))
	assert.Equal(t, float32(1200), d.ScrollY())
}

func TestDocumentSurface(t *testing.T) {
	d := NewDocument(showcaseLayout())
	assert.False(t, d.CanvasInteractive())
	assert.Equal(t, float32(1), d.ContentOpacity())

	var s Surface = d
	s.SetCanvasInteractive(true)
	s.SetContentOpacity(-1)
	assert.True(t, d.CanvasInteractive())
	assert.Equal(t, float32(0), d.ContentOpacity())
}
