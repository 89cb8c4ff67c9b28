package page

type PageBuilderOption func(*pageImpl)

// WithSectionHeight fixes the height of each section in pixels. Zero means one viewport.
//
// Parameters:
//   - height: the section height
//
// Returns:
//   - PageBuilderOption: a function that sets the section height
func WithSectionHeight(height float32) PageBuilderOption {
	return func(p *pageImpl) {
		p.sectionHeight = height
	}
}

// WithOffset sets the initial scroll offset.
//
// Parameters:
//   - offset: the initial offset in pixels
//
// Returns:
//   - PageBuilderOption: a function that sets the offset
func WithOffset(offset float32) PageBuilderOption {
	return func(p *pageImpl) {
		p.offset = offset
	}
}
