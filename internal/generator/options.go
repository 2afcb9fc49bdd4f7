package generator

// Options controls template emission for one generation call. It is built
// once by the caller and passed immutably into every analyzer; the core
// never reads ambient state.
type Options struct {
	// IncludeExamples emits the # Examples sections.
	IncludeExamples bool
	// ExamplesOnlyForPublicOrExtern suppresses examples unless the item's
	// visibility or extern modifiers indicate public exposure.
	ExamplesOnlyForPublicOrExtern bool
	// IncludeSafetyDetails adds three fixed caller-obligation bullets ahead
	// of any unsafe-specific bullet in the # Safety section.
	IncludeSafetyDetails bool
}

// DefaultOptions returns the documented defaults: examples on, no
// public-only gating, no safety detail bullets.
func DefaultOptions() Options {
	return Options{IncludeExamples: true}
}
