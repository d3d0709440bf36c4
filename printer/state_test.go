package printer

import "testing"

// catchUp pads the buffer with blank lines up to targetLine and never
// rewinds (spec §4.2 "line-number catch-up", §8 P5's monotonicity).
func TestCatchUpAdvancesToTargetLine(t *testing.T) {
	s := newState(MaintainLineno)
	s.catchUp(3)
	if got, want := s.out.String(), "\n\n"; got != want {
		t.Fatalf("catchUp(3) from line 1 wrote %q, want %q", got, want)
	}
	if s.line != 3 {
		t.Fatalf("s.line = %d, want 3", s.line)
	}
}

func TestCatchUpIsNoopGoingBackwards(t *testing.T) {
	s := newState(MaintainLineno)
	s.catchUp(5)
	afterFirst := s.out.String()
	s.catchUp(2)
	if got := s.out.String(); got != afterFirst {
		t.Fatalf("catchUp(2) after catchUp(5) changed output to %q, want unchanged %q", got, afterFirst)
	}
	if s.line != 5 {
		t.Fatalf("s.line = %d, want 5 (catchUp never rewinds)", s.line)
	}
}

// lineno()==0 suppresses catchup (spec.md:107).
func TestCatchUpSuppressedForLinenoZero(t *testing.T) {
	s := newState(MaintainLineno)
	s.catchUp(0)
	if got := s.out.String(); got != "" {
		t.Fatalf("catchUp(0) wrote %q, want nothing", got)
	}
	if s.line != 1 {
		t.Fatalf("s.line = %d, want 1 (unaffected)", s.line)
	}
}

func TestCatchUpNoopWithoutMaintainLineno(t *testing.T) {
	s := newState(None)
	s.catchUp(10)
	if got := s.out.String(); got != "" {
		t.Fatalf("catchUp wrote %q without MaintainLineno set, want nothing", got)
	}
	if s.line != 1 {
		t.Fatalf("s.line = %d, want 1", s.line)
	}
}

func TestCatchUpRepeatedCallsAreMonotonic(t *testing.T) {
	s := newState(MaintainLineno)
	lines := []int{2, 2, 4, 4, 4, 7}
	for _, target := range lines {
		prevLine := s.line
		s.catchUp(target)
		if s.line < prevLine {
			t.Fatalf("s.line regressed from %d to %d catching up to %d", prevLine, s.line, target)
		}
	}
	if s.line != 7 {
		t.Fatalf("s.line = %d, want 7", s.line)
	}
}

func TestRenderToStringLeavesLineAdvancedButRestoresBuffer(t *testing.T) {
	s := newState(MaintainLineno)
	s.writeString("a")
	sub := s.renderToString(func(sub *state) {
		sub.catchUp(3)
		sub.writeString("b")
	})
	if sub != "\n\nb" {
		t.Fatalf("renderToString returned %q, want %q", sub, "\n\nb")
	}
	if got := s.out.String(); got != "a" {
		t.Fatalf("s.out = %q after renderToString, want %q (buffer restored)", got, "a")
	}
	if s.line != 3 {
		t.Fatalf("s.line = %d, want 3 (line bookkeeping survives the buffer swap)", s.line)
	}
}
