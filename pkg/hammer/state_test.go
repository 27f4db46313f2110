package hammer

import "testing"

func TestState_AdvanceCrossesAfterFiftySteps(t *testing.T) {
	s := State{Direction: 1}
	crossings := 0
	crossedAt := 0
	var anchor float64
	for i := 1; i <= 60 && crossings == 0; i++ {
		var out Outcome
		s, out = s.Advance(DefaultStep)
		if out.Crossed() {
			crossings++
			crossedAt = i
			anchor = out.Anchor
		}
	}
	if crossedAt != 50 {
		t.Errorf("crossed after %d steps, want 50", crossedAt)
	}
	if crossings != 1 {
		t.Errorf("crossings = %d, want 1", crossings)
	}
	if anchor != 1 {
		t.Errorf("reported anchor = %v, want 1", anchor)
	}
	if s.Direction != 0 || s.Anchor != 1 || s.Progress != 1 {
		t.Errorf("state after crossing = %+v, want {Progress:1 Direction:0 Anchor:1}", s)
	}
}

func TestState_AdvanceIdleIsUnchanged(t *testing.T) {
	s := State{Progress: 0.3, Anchor: 0}
	next, out := s.Advance(DefaultStep)
	if out.Kind != Unchanged {
		t.Errorf("outcome = %v, want unchanged", out.Kind)
	}
	if next != s {
		t.Errorf("idle advance changed state: %+v -> %+v", s, next)
	}
}

func TestState_Begin(t *testing.T) {
	s, ok := State{}.Begin(ResumeForward)
	if !ok {
		t.Fatal("Begin on idle state returned false")
	}
	if s.Direction != 1 {
		t.Errorf("Direction = %v, want 1", s.Direction)
	}

	again, ok := s.Begin(ResumeForward)
	if ok {
		t.Error("Begin on moving state returned true")
	}
	if again != s {
		t.Errorf("Begin on moving state changed it: %+v -> %+v", s, again)
	}
}

func TestState_BeginResumeModes(t *testing.T) {
	done := State{Progress: 1, Anchor: 1}

	fwd, _ := done.Begin(ResumeForward)
	if fwd.Direction != 1 {
		t.Errorf("ResumeForward direction = %v, want 1", fwd.Direction)
	}

	alt, _ := done.Begin(ResumeAlternate)
	if alt.Direction != -1 {
		t.Errorf("ResumeAlternate direction = %v, want -1", alt.Direction)
	}
	var out Outcome
	for i := 0; i < 100 && !out.Crossed(); i++ {
		alt, out = alt.Advance(DefaultStep)
	}
	if alt.Anchor != 0 || alt.Progress != 0 {
		t.Errorf("reverse pass ended at %+v, want progress and anchor 0", alt)
	}
}

func TestOutcomeKindString(t *testing.T) {
	if got := ThresholdCrossed.String(); got != "threshold_crossed" {
		t.Errorf("ThresholdCrossed.String() = %q", got)
	}
	if got := OutcomeKind(7).String(); got != "OutcomeKind(7)" {
		t.Errorf("OutcomeKind(7).String() = %q", got)
	}
}
