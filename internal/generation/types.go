package generation

// Result is the structured payload every assist action produces. The model
// is instructed to answer with exactly this JSON shape.
type Result struct {
	// Content is the generated or transformed post text.
	Content string `json:"content"`

	// Hashtags are suggested tags for the post, without leading # symbols.
	Hashtags []string `json:"hashtags"`

	// Hook is an alternative opening line suggestion.
	Hook string `json:"hook"`
}

// BrandContext carries the personalization values merged into prompts.
type BrandContext struct {
	Tone   string
	Topics string
	Goal   string
}

// DefaultBrandContext returns the neutral context used when a user has not
// completed onboarding yet and therefore has no brand blueprint.
func DefaultBrandContext() BrandContext {
	return BrandContext{
		Tone:   "Professional",
		Topics: "General professional topics",
		Goal:   "Build thought leadership",
	}
}
