package chunk

import "fmt"

// Mode selects the chunking strategy.
type Mode int

const (
	// ModeWordWindow slides a fixed-size word window over the document's
	// flattened text with a stride of WindowSize-Overlap.
	ModeWordWindow Mode = iota

	// ModeParagraph accumulates whole paragraphs until the window size is
	// reached, then carries a paragraph-granular tail into the next chunk.
	ModeParagraph

	// ModePageBridge emits one chunk per unit plus a synthesized bridge
	// chunk spanning each adjacent unit boundary.
	ModePageBridge
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeWordWindow:
		return "word-window"
	case ModeParagraph:
		return "paragraph"
	case ModePageBridge:
		return "page-bridge"
	default:
		return "unknown"
	}
}

// Config holds configuration options for the chunker. All three modes share
// one configuration surface; fields that don't apply to the selected mode
// are ignored.
type Config struct {
	// Mode selects the chunking strategy.
	Mode Mode

	// WindowSize is the chunk size in words.
	// Default: 1000
	WindowSize int

	// Overlap is the number of words carried over between consecutive
	// chunks. Must be smaller than WindowSize. In ModeParagraph the
	// carry-over is rounded down to whole paragraphs, so the actual
	// overlap may come in under this target.
	// Default: 200
	Overlap int

	// OverlapPercentage is the fraction of each unit's words contributed
	// to a bridge chunk in ModePageBridge. Must be in [0, 1).
	// Default: 0.2
	OverlapPercentage float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Mode:              ModeWordWindow,
		WindowSize:        1000,
		Overlap:           200,
		OverlapPercentage: 0.2,
	}
}

// Validate checks the configuration for errors. It is called eagerly at
// chunker construction so that a bad configuration is rejected before any
// document is processed.
func (c Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("window size must be positive, got %d", c.WindowSize)
	}
	if c.Overlap < 0 {
		return fmt.Errorf("overlap must not be negative, got %d", c.Overlap)
	}
	if c.Overlap >= c.WindowSize {
		return fmt.Errorf("overlap (%d) must be smaller than window size (%d)", c.Overlap, c.WindowSize)
	}
	if c.OverlapPercentage < 0 || c.OverlapPercentage >= 1 {
		return fmt.Errorf("overlap percentage must be in [0, 1), got %g", c.OverlapPercentage)
	}
	switch c.Mode {
	case ModeWordWindow, ModeParagraph, ModePageBridge:
	default:
		return fmt.Errorf("unknown chunking mode %d", int(c.Mode))
	}
	return nil
}
