package engine

import (
	"testing"

	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/systems/factory"
)

type recorder struct {
	scores  []int
	lives   []int
	streaks []int
	mults   []int
	texts   []string
	ended   []int
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		ScoreChanged: func(score int) { r.scores = append(r.scores, score) },
		LivesChanged: func(lives int) { r.lives = append(r.lives, lives) },
		StreakChanged: func(streak, multiplier int) {
			r.streaks = append(r.streaks, streak)
			r.mults = append(r.mults, multiplier)
		},
		Feedback:     func(x, y float64, text string) { r.texts = append(r.texts, text) },
		SessionEnded: func(final int) { r.ended = append(r.ended, final) },
	}
}

func newTestEngine(rec *recorder) *Engine {
	e := New(640, 360, 1, rec.callbacks())
	e.Start()
	return e
}

func clock(e *Engine) *components.ClockData {
	entry, _ := components.Clock.First(e.ECS().World)
	return components.Clock.Get(entry)
}

func session(e *Engine) *components.SessionData {
	entry, _ := components.Session.First(e.ECS().World)
	return components.Session.Get(entry)
}

// sweep moves the pointer across two ticks so the blade segment crosses x=320.
func sweep(e *Engine) {
	e.SetPointer(220, 200, true)
	e.Step(1)
	e.SetPointer(420, 200, true)
	e.Step(1)
}

func TestSliceEndToEnd(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(rec)

	factory.CreateTarget(e.ECS(), components.KindApple, 320, 200, 0, 0, false)
	sweep(e)

	s := session(e)
	if s.Score != 1 {
		t.Fatalf("score = %d, want 1", s.Score)
	}
	if s.Streak != 1 {
		t.Errorf("streak = %d, want 1", s.Streak)
	}
	if len(rec.scores) != 1 || rec.scores[0] != 1 {
		t.Errorf("score notices = %v, want [1]", rec.scores)
	}
	if len(rec.streaks) != 1 || rec.streaks[0] != 1 || rec.mults[0] != 1 {
		t.Errorf("streak notices = %v x%v, want [1] x[1]", rec.streaks, rec.mults)
	}
}

func TestHazardEndsAndFreezesEngine(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(rec)

	factory.CreateTarget(e.ECS(), components.KindHazard, 320, 200, 0, 0, false)
	sweep(e)

	if e.Running() {
		t.Fatal("engine should stop when the session ends")
	}
	if len(rec.ended) != 1 || rec.ended[0] != 0 {
		t.Errorf("ended notices = %v, want [0]", rec.ended)
	}

	// Frozen: further steps leave the clock alone.
	now := clock(e).NowMs
	e.Step(1)
	if clock(e).NowMs != now {
		t.Error("clock advanced after the session ended")
	}
}

func TestLivesNoticePrecedesSessionEnd(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(rec)
	s := session(e)
	s.Lives = 1

	// A fruit that is already falling past the bottom edge.
	factory.CreateTarget(e.ECS(), components.KindApple, 320, 420, 0, 2, false)

	var order []string
	e.callbacks.LivesChanged = func(lives int) { order = append(order, "lives") }
	e.callbacks.SessionEnded = func(final int) { order = append(order, "ended") }

	e.Step(1)

	if len(order) != 2 || order[0] != "lives" || order[1] != "ended" {
		t.Fatalf("notice order = %v, want [lives ended]", order)
	}
}

func TestStepClampsOversizedDelta(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(rec)

	e.Step(1000)

	want := cfg.Engine.MaxStepScale * cfg.NominalFrameMs
	if got := clock(e).NowMs; got != want {
		t.Errorf("clock advanced %.3fms, want clamp to %.3fms", got, want)
	}
}

func TestNonPositiveStepIsIgnored(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(rec)

	e.Step(0)
	e.Step(-3)

	if got := clock(e).NowMs; got != 0 {
		t.Errorf("clock advanced %.3fms on non-positive steps", got)
	}
}

func TestStartResetsSession(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(rec)

	factory.CreateTarget(e.ECS(), components.KindHazard, 320, 200, 0, 0, false)
	sweep(e)
	if e.Running() {
		t.Fatal("session should have ended")
	}

	e.Start()

	s := session(e)
	if !e.Running() || s.Over {
		t.Fatal("restart should yield a live session")
	}
	if s.Score != 0 || s.Lives != cfg.Scoring.StartingLives {
		t.Errorf("restarted session = score %d lives %d, want fresh", s.Score, s.Lives)
	}
	if clock(e).NowMs != 0 {
		t.Error("restart should reset the clock")
	}
}

func TestStopFreezesWithoutEndingSession(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(rec)

	e.Stop()
	e.Step(1)

	if clock(e).NowMs != 0 {
		t.Error("stopped engine advanced the clock")
	}
	if session(e).Over {
		t.Error("stop must not end the session")
	}
}

func TestResizeMovesFieldBounds(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(rec)

	// Below the old bottom edge but inside the new, taller field.
	factory.CreateTarget(e.ECS(), components.KindApple, 320, 400, 0, 2, false)
	e.Resize(640, 720)

	e.Step(1)

	if session(e).Lives != cfg.Scoring.StartingLives {
		t.Error("target inside the resized field was counted as a miss")
	}
}
