package viewport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetector_UnknownWidthIsNotCompact(t *testing.T) {
	d := NewDetector(0)
	assert.Equal(t, DefaultBreakpoint, d.Breakpoint())
	assert.False(t, d.IsCompact())

	_, known := d.Width()
	assert.False(t, known)
}

func TestDetector_Threshold(t *testing.T) {
	tests := []struct {
		width   int
		compact bool
	}{
		{320, true},
		{767, true},
		{768, false},
		{1440, false},
	}

	for _, tt := range tests {
		d := NewDetector(DefaultBreakpoint)
		d.SetWidth(tt.width)
		assert.Equal(t, tt.compact, d.IsCompact(), "width %d", tt.width)
	}
}

func TestDetector_SetWidthReportsFlip(t *testing.T) {
	d := NewDetector(DefaultBreakpoint)

	assert.False(t, d.SetWidth(1024), "unknown to wide keeps the full layout")
	assert.True(t, d.SetWidth(500))
	assert.False(t, d.SetWidth(400))
	assert.True(t, d.SetWidth(900))
	assert.False(t, d.SetWidth(-1))

	w, known := d.Width()
	assert.True(t, known)
	assert.Equal(t, 900, w)
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	_, ok := FromRequest(req)
	assert.False(t, ok)

	req.Header.Set(HeaderLegacyViewportWidth, "412.5")
	w, ok := FromRequest(req)
	assert.True(t, ok)
	assert.Equal(t, 412, w)

	req.Header.Set(HeaderViewportWidth, "1280")
	w, ok = FromRequest(req)
	assert.True(t, ok)
	assert.Equal(t, 1280, w)
}

func TestParseWidth(t *testing.T) {
	for _, bad := range []string{"", "wide", "0", "-20", "1e9"} {
		_, ok := ParseWidth(bad)
		assert.False(t, ok, bad)
	}
}
