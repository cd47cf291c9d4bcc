// Package viewport derives the compact-layout signal from the width the
// browser reports.
package viewport

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// DefaultBreakpoint is the width, in CSS pixels, below which the compact
// navigation is used.
const DefaultBreakpoint = 768

// Client hint headers carrying the layout viewport width.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderLegacyViewportWidth = "Viewport-Width"
)

// Detector tracks the last known viewport width of one client.
type Detector struct {
	mu         sync.RWMutex
	breakpoint int
	width      int
}

// NewDetector creates a detector with no known width. Non-positive
// breakpoints fall back to DefaultBreakpoint.
func NewDetector(breakpoint int) *Detector {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Detector{breakpoint: breakpoint}
}

// Breakpoint returns the compact threshold.
func (d *Detector) Breakpoint() int {
	return d.breakpoint
}

// SetWidth records a new width and reports whether the compact signal
// flipped. Non-positive widths are ignored.
func (d *Detector) SetWidth(w int) bool {
	if w <= 0 {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	before := d.compactLocked()
	d.width = w
	return before != d.compactLocked()
}

// Width returns the last recorded width and whether one is known.
func (d *Detector) Width() (int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.width, d.width > 0
}

// IsCompact reports whether the drawer navigation should be rendered.
// Until a width is known the full layout is assumed.
func (d *Detector) IsCompact() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.compactLocked()
}

func (d *Detector) compactLocked() bool {
	return d.width > 0 && d.width < d.breakpoint
}

// FromRequest reads the viewport width client hint, if the browser sent one.
func FromRequest(r *http.Request) (int, bool) {
	for _, h := range []string{HeaderViewportWidth, HeaderLegacyViewportWidth} {
		if w, ok := ParseWidth(r.Header.Get(h)); ok {
			return w, true
		}
	}
	return 0, false
}

// ParseWidth parses a reported width. Fractional values are truncated.
func ParseWidth(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 1 || f > 100000 {
		return 0, false
	}
	return int(f), true
}
