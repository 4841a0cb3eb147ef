package clipper

import "context"

// EnhancementMode selects how an Enhancer rewrites extracted content.
type EnhancementMode string

// Enhancement modes.
const (
	EnhanceSummarize EnhancementMode = "summarize"
	EnhanceRewrite   EnhancementMode = "rewrite"
)

// Validate returns EINVALID for unknown modes.
func (m EnhancementMode) Validate() error {
	switch m {
	case EnhanceSummarize, EnhanceRewrite:
		return nil
	}
	return Errorf(EINVALID, "unknown enhancement mode %q", m)
}

// Enhancer passes extracted content through a language model.
type Enhancer interface {
	// Enhance returns the model's rendition of the result in the given mode.
	// Returns EINVALID if the result has no text or the mode is unknown.
	Enhance(ctx context.Context, result *ExtractionResult, mode EnhancementMode) (string, error)
}
