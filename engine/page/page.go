// Package page models the scrollable document the narrative is laid out on:
// one viewport-tall section per path stop, a scroll offset and a scroll lock.
package page

import "github.com/Carmen-Shannon/oxy-scroll/common"

// Page is the scroll surface. User scrolling goes through ScrollBy and is
// ignored while locked; ScrollTo is programmatic and always applies.
type Page interface {
	// Offset returns the current scroll offset in pixels.
	//
	// Returns:
	//   - float32: the offset, in [0, ScrollableHeight()]
	Offset() float32

	// ScrollBy moves the offset by delta pixels, clamped to the page. Ignored while locked.
	//
	// Parameters:
	//   - delta: pixels to move, positive scrolls down
	//
	// Returns:
	//   - bool: true if the offset changed
	ScrollBy(delta float32) bool

	// ScrollTo sets the offset, clamped to the page.
	//
	// Parameters:
	//   - offset: the target offset in pixels
	ScrollTo(offset float32)

	// SetScrollLocked locks or unlocks user scrolling.
	//
	// Parameters:
	//   - locked: the new lock state
	SetScrollLocked(locked bool)

	// ScrollLocked reports whether user scrolling is locked.
	//
	// Returns:
	//   - bool: true when locked
	ScrollLocked() bool

	// ScrollableHeight returns the total height minus one viewport, never negative.
	//
	// Returns:
	//   - float32: the scrollable height in pixels
	ScrollableHeight() float32

	// ViewportHeight returns the viewport height in pixels.
	//
	// Returns:
	//   - float32: the viewport height
	ViewportHeight() float32

	// Resize sets a new viewport height and re-clamps the offset.
	//
	// Parameters:
	//   - viewportHeight: the new viewport height in pixels
	Resize(viewportHeight float32)

	// Sections returns the number of sections on the page.
	//
	// Returns:
	//   - int: the section count
	Sections() int

	// SectionOffset returns the offset at which section i starts, clamped to the page.
	//
	// Parameters:
	//   - i: the section index
	//
	// Returns:
	//   - float32: the offset in pixels
	SectionOffset(i int) float32
}

type pageImpl struct {
	sections       int
	sectionHeight  float32
	viewportHeight float32
	offset         float32
	locked         bool
}

var _ Page = &pageImpl{}

// NewPage creates a page with the given number of sections. Section height
// follows the viewport unless WithSectionHeight sets a fixed value.
//
// Parameters:
//   - sections: the section count
//   - viewportHeight: the initial viewport height in pixels
//   - options: functional options
//
// Returns:
//   - Page: the new page
func NewPage(sections int, viewportHeight float32, options ...PageBuilderOption) Page {
	p := &pageImpl{
		sections:       max(sections, 0),
		viewportHeight: max(viewportHeight, 0),
	}
	for _, option := range options {
		option(p)
	}
	p.ScrollTo(p.offset)
	return p
}

func (p *pageImpl) Offset() float32 {
	return p.offset
}

func (p *pageImpl) ScrollBy(delta float32) bool {
	if p.locked || delta == 0 {
		return false
	}
	before := p.offset
	p.ScrollTo(p.offset + delta)
	return p.offset != before
}

func (p *pageImpl) ScrollTo(offset float32) {
	p.offset = common.Clamp(offset, 0, p.ScrollableHeight())
}

func (p *pageImpl) SetScrollLocked(locked bool) {
	p.locked = locked
}

func (p *pageImpl) ScrollLocked() bool {
	return p.locked
}

func (p *pageImpl) ScrollableHeight() float32 {
	return max(float32(p.sections)*p.section()-p.viewportHeight, 0)
}

func (p *pageImpl) ViewportHeight() float32 {
	return p.viewportHeight
}

func (p *pageImpl) Resize(viewportHeight float32) {
	p.viewportHeight = max(viewportHeight, 0)
	p.ScrollTo(p.offset)
}

func (p *pageImpl) Sections() int {
	return p.sections
}

func (p *pageImpl) SectionOffset(i int) float32 {
	return common.Clamp(float32(i)*p.section(), 0, p.ScrollableHeight())
}

func (p *pageImpl) section() float32 {
	if p.sectionHeight > 0 {
		return p.sectionHeight
	}
	return p.viewportHeight
}
