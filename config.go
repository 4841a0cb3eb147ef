package clipper

import "time"

// Engine selects the implementation of the structured extraction method.
type Engine string

// Structured extraction engines.
const (
	EngineBuiltin     Engine = "builtin"
	EngineReadability Engine = "readability"
	EngineTrafilatura Engine = "trafilatura"
)

// Extraction defaults.
const (
	DefaultCharThreshold     = 500
	DefaultTopCandidateCount = 5
	DefaultLoadTimeout       = 30 * time.Second

	// HeuristicCharThreshold is the minimum text length for candidates of
	// the heuristic method. It is deliberately lower than
	// DefaultCharThreshold and is not configurable.
	HeuristicCharThreshold = 100
)

// DefaultPreservedClasses are the classes kept on content markup by engines
// that strip classes.
var DefaultPreservedClasses = []string{"caption", "emoji", "hidden"}

// Config controls an extraction.
type Config struct {
	// CharThreshold is the minimum trimmed text length of a structured
	// candidate.
	CharThreshold int `json:"charThreshold" yaml:"charThreshold"`

	// TopCandidateCount is the number of top-scoring candidates an engine
	// compares before choosing one.
	TopCandidateCount int `json:"topCandidateCount" yaml:"topCandidateCount"`

	// PreservedClasses are kept on content markup by engines that strip
	// class attributes.
	PreservedClasses []string `json:"preservedClasses" yaml:"preservedClasses"`

	// MaxNodesToParse aborts structured extraction of documents with more
	// elements than this. Zero means unbounded.
	MaxNodesToParse int `json:"maxNodesToParse" yaml:"maxNodesToParse"`

	// LoadTimeout bounds the wait for the page load signal.
	LoadTimeout time.Duration `json:"loadTimeout" yaml:"loadTimeout"`

	// Engine selects the structured extraction implementation.
	Engine Engine `json:"engine" yaml:"engine"`
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{
		CharThreshold:     DefaultCharThreshold,
		TopCandidateCount: DefaultTopCandidateCount,
		PreservedClasses:  append([]string(nil), DefaultPreservedClasses...),
		MaxNodesToParse:   0,
		LoadTimeout:       DefaultLoadTimeout,
		Engine:            EngineBuiltin,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.CharThreshold < 0 {
		return Errorf(EINVALID, "char threshold must not be negative")
	}
	if c.TopCandidateCount < 0 {
		return Errorf(EINVALID, "top candidate count must not be negative")
	}
	if c.MaxNodesToParse < 0 {
		return Errorf(EINVALID, "max nodes to parse must not be negative")
	}
	if c.LoadTimeout < 0 {
		return Errorf(EINVALID, "load timeout must not be negative")
	}
	switch c.Engine {
	case EngineBuiltin, EngineReadability, EngineTrafilatura:
	default:
		return Errorf(EINVALID, "unknown engine %q", c.Engine)
	}
	return nil
}

// WithDefaults returns a copy of c with zero thresholds and timeouts
// replaced by their defaults. Every engine sees the same effective values.
func (c Config) WithDefaults() Config {
	if c.CharThreshold == 0 {
		c.CharThreshold = DefaultCharThreshold
	}
	if c.TopCandidateCount == 0 {
		c.TopCandidateCount = DefaultTopCandidateCount
	}
	if c.LoadTimeout == 0 {
		c.LoadTimeout = DefaultLoadTimeout
	}
	return c
}
