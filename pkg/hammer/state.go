package hammer

import (
	"fmt"
	"math"
)

// OutcomeKind enumerates the results of advancing a State.
type OutcomeKind int

const (
	// Unchanged means progress moved but stayed within the threshold.
	Unchanged OutcomeKind = iota
	// ThresholdCrossed means progress passed one unit from the anchor and
	// was snapped onto the new anchor.
	ThresholdCrossed
)

// String returns a human-readable representation of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case ThresholdCrossed:
		return "threshold_crossed"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of one Advance.
type Outcome struct {
	Kind OutcomeKind
	// Anchor is the newly committed progress when Kind is ThresholdCrossed.
	Anchor float64
}

// Crossed reports whether the outcome is a threshold crossing.
func (o Outcome) Crossed() bool {
	return o.Kind == ThresholdCrossed
}

// State is the progress state machine of a single row.
//
// Direction is -1, 0 (idle) or +1. Anchor is the last committed progress;
// Progress never drifts more than one unit from it.
type State struct {
	Progress  float64
	Direction float64
	Anchor    float64
}

// IsIdle reports whether the row is not animating.
func (s State) IsIdle() bool {
	return s.Direction == 0
}

// Advance moves progress one step in the current direction. Once progress
// is more than one unit from the anchor it snaps to anchor+direction, the
// row goes idle and the new anchor is reported.
func (s State) Advance(step float64) (State, Outcome) {
	s.Progress += step * s.Direction
	if math.Abs(s.Progress-s.Anchor) <= 1 {
		return s, Outcome{Kind: Unchanged}
	}
	s.Progress = s.Anchor + s.Direction
	s.Direction = 0
	s.Anchor = s.Progress
	return s, Outcome{Kind: ThresholdCrossed, Anchor: s.Anchor}
}

// Begin arms an idle row and reports true. A row that is already moving is
// returned unchanged with false.
func (s State) Begin(mode ResumeMode) (State, bool) {
	if !s.IsIdle() {
		return s, false
	}
	s.Direction = 1
	if mode == ResumeAlternate && s.Anchor >= 1 {
		s.Direction = -1
	}
	return s, true
}
