package scroll

type MapperBuilderOption func(*mapperImpl)

// WithSectionChanged registers a callback fired whenever the nearest stop changes.
//
// Parameters:
//   - fn: the callback
//
// Returns:
//   - MapperBuilderOption: a function that sets the callback
func WithSectionChanged(fn SectionChangedFunc) MapperBuilderOption {
	return func(m *mapperImpl) {
		m.onSectionChanged = fn
	}
}

// WithEnabled sets whether the mapper starts enabled.
//
// Parameters:
//   - enabled: the initial state
//
// Returns:
//   - MapperBuilderOption: a function that sets the initial state
func WithEnabled(enabled bool) MapperBuilderOption {
	return func(m *mapperImpl) {
		m.enabled = enabled
	}
}
