package hammer

import (
	"fmt"
	"time"

	"github.com/go-drift/hammer/pkg/animation"
	"github.com/go-drift/hammer/pkg/graphics"
)

const (
	// DefaultNodeCount is the number of rows in the stack.
	DefaultNodeCount = 5
	// DefaultBars is the number of hammers drawn per row.
	DefaultBars = 5
	// DefaultSizeFactor divides the row gap to get the row size.
	DefaultSizeFactor = 1.5
	// DefaultStrokeFactor divides the shortest surface side to get the stroke width.
	DefaultStrokeFactor = 90
	// DefaultBarHeightFactor divides the row size to get the hammer head size.
	DefaultBarHeightFactor = 4
	// DefaultStep is the progress added per frame while a row animates.
	DefaultStep = 0.02
)

// Default colors.
var (
	DefaultForeColor = graphics.MustParseHex("#673AB7")
	DefaultBackColor = graphics.MustParseHex("#BDBDBD")
)

// ResumeMode selects the direction a row moves when it is started again.
type ResumeMode int

const (
	// ResumeForward always starts a row moving in the +1 direction, so its
	// progress keeps climbing past 1 on later passes.
	ResumeForward ResumeMode = iota
	// ResumeAlternate starts a row at anchor 0 moving forward and a row at
	// anchor 1 moving back, keeping progress inside [0, 1].
	ResumeAlternate
)

// String returns the configuration name of the mode.
func (m ResumeMode) String() string {
	switch m {
	case ResumeForward:
		return "forward"
	case ResumeAlternate:
		return "alternate"
	default:
		return fmt.Sprintf("ResumeMode(%d)", int(m))
	}
}

// ParseResumeMode parses "forward" or "alternate".
func ParseResumeMode(s string) (ResumeMode, error) {
	switch s {
	case "forward", "":
		return ResumeForward, nil
	case "alternate":
		return ResumeAlternate, nil
	default:
		return 0, fmt.Errorf("unknown resume mode %q (use forward or alternate)", s)
	}
}

// Config holds the fixed parameters of a view.
type Config struct {
	NodeCount       int
	Bars            int
	SizeFactor      float64
	StrokeFactor    float64
	BarHeightFactor float64
	Step            float64
	FrameDelay      time.Duration
	ForeColor       graphics.Color
	BackColor       graphics.Color
	Resume          ResumeMode
}

// DefaultConfig returns the stock five-by-five configuration.
func DefaultConfig() Config {
	return Config{
		NodeCount:       DefaultNodeCount,
		Bars:            DefaultBars,
		SizeFactor:      DefaultSizeFactor,
		StrokeFactor:    DefaultStrokeFactor,
		BarHeightFactor: DefaultBarHeightFactor,
		Step:            DefaultStep,
		FrameDelay:      animation.DefaultFrameDelay,
		ForeColor:       DefaultForeColor,
		BackColor:       DefaultBackColor,
		Resume:          ResumeForward,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.NodeCount < 1:
		return fmt.Errorf("nodes must be at least 1 (got %d)", c.NodeCount)
	case c.Bars < 1:
		return fmt.Errorf("bars must be at least 1 (got %d)", c.Bars)
	case c.SizeFactor <= 0:
		return fmt.Errorf("size_factor must be positive (got %v)", c.SizeFactor)
	case c.StrokeFactor <= 0:
		return fmt.Errorf("stroke_factor must be positive (got %v)", c.StrokeFactor)
	case c.BarHeightFactor <= 0:
		return fmt.Errorf("bar_height_factor must be positive (got %v)", c.BarHeightFactor)
	case c.Step <= 0 || c.Step > 1:
		return fmt.Errorf("step must be in (0, 1] (got %v)", c.Step)
	case c.FrameDelay < 0:
		return fmt.Errorf("frame_delay must not be negative (got %v)", c.FrameDelay)
	case c.Resume != ResumeForward && c.Resume != ResumeAlternate:
		return fmt.Errorf("unknown resume mode %v", c.Resume)
	}
	return nil
}
