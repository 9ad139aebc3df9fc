package systems

import (
	"testing"

	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// setBlade plants a trail and marks the pointer as a fast, visible sweep.
// The last point is the current smoothed position.
func setBlade(e *ecs.ECS, points ...[2]float64) {
	ptr, trail := testPointer(e)
	ptr.Visible = true
	ptr.Speed = cfg.Collision.MinSliceSpeed * 10

	trail.Points = trail.Points[:0]
	for i, p := range points {
		trail.Points = append(trail.Points, components.TrailPoint{
			X: p[0], Y: p[1], StampMs: float64(i) * cfg.NominalFrameMs,
		})
	}
	if n := len(points); n > 0 {
		ptr.X = points[n-1][0]
		ptr.Y = points[n-1][1]
	}
}

func TestPointHitSlices(t *testing.T) {
	e := newTestECS(1)
	session := testSession(e)
	stepClock(e, 1)

	factory.CreateTarget(e, components.KindApple, 320, 200, 0, 0, false)
	setBlade(e, [2]float64{300, 200}, [2]float64{321, 201})

	UpdateSlices(e)

	if session.Score != 1 {
		t.Fatalf("score = %d, want 1", session.Score)
	}
	if countTargets(e) != 0 {
		t.Errorf("sliced target should be removed, %d remain", countTargets(e))
	}
}

func TestSweptSegmentHitsBetweenSamples(t *testing.T) {
	e := newTestECS(1)
	session := testSession(e)
	stepClock(e, 1)

	// Both samples land outside the padded radius; only the segment between
	// them crosses the target.
	factory.CreateTarget(e, components.KindApple, 320, 200, 0, 0, false)
	setBlade(e, [2]float64{220, 200}, [2]float64{420, 200})

	UpdateSlices(e)

	if session.Score != 1 {
		t.Errorf("score = %d, want 1 from the swept segment", session.Score)
	}
}

func TestSlowPointerNeverSlices(t *testing.T) {
	e := newTestECS(1)
	session := testSession(e)
	stepClock(e, 1)

	factory.CreateTarget(e, components.KindApple, 320, 200, 0, 0, false)
	setBlade(e, [2]float64{300, 200}, [2]float64{321, 201})
	ptr, _ := testPointer(e)
	ptr.Speed = cfg.Collision.MinSliceSpeed / 2

	UpdateSlices(e)

	if session.Score != 0 {
		t.Errorf("score = %d, want 0 below the speed gate", session.Score)
	}
	if countTargets(e) != 1 {
		t.Errorf("target should survive a resting pointer")
	}
}

func TestInvisiblePointerNeverSlices(t *testing.T) {
	e := newTestECS(1)
	session := testSession(e)
	stepClock(e, 1)

	factory.CreateTarget(e, components.KindApple, 320, 200, 0, 0, false)
	setBlade(e, [2]float64{300, 200}, [2]float64{321, 201})
	ptr, _ := testPointer(e)
	ptr.Visible = false

	UpdateSlices(e)

	if session.Score != 0 {
		t.Errorf("score = %d, want 0 while tracking is lost", session.Score)
	}
}

func TestDistantBladeMisses(t *testing.T) {
	e := newTestECS(1)
	session := testSession(e)
	stepClock(e, 1)

	factory.CreateTarget(e, components.KindApple, 320, 200, 0, 0, false)
	setBlade(e, [2]float64{100, 100}, [2]float64{150, 100})

	UpdateSlices(e)

	if session.Score != 0 {
		t.Errorf("score = %d, want 0 for a far-away sweep", session.Score)
	}
	if countTargets(e) != 1 {
		t.Errorf("target should survive")
	}
}

func TestSimultaneousHitsFormCombo(t *testing.T) {
	e := newTestECS(1)
	session := testSession(e)
	stepClock(e, 1)

	// Two fruits on the same horizontal sweep, hit in one frame.
	factory.CreateTarget(e, components.KindApple, 300, 200, 0, 0, false)
	factory.CreateTarget(e, components.KindPlum, 360, 200, 0, 0, false)
	setBlade(e, [2]float64{220, 200}, [2]float64{440, 200})

	UpdateSlices(e)

	if want := 1 + 1 + cfg.Scoring.DoubleBonus; session.Score != want {
		t.Errorf("score = %d, want %d for a same-frame double", session.Score, want)
	}
	if session.Streak != 2 {
		t.Errorf("streak = %d, want 2", session.Streak)
	}
}

func TestHazardHitStopsFurtherScoring(t *testing.T) {
	e := newTestECS(1)
	session := testSession(e)
	stepClock(e, 1)

	factory.CreateTarget(e, components.KindHazard, 300, 200, 0, 0, false)
	factory.CreateTarget(e, components.KindApple, 360, 200, 0, 0, false)
	setBlade(e, [2]float64{220, 200}, [2]float64{440, 200})

	UpdateSlices(e)

	if !session.Over {
		t.Fatal("session should end on the hazard hit")
	}
	// Resolution order follows the candidate list; whichever way it lands,
	// nothing scores after the session ends.
	if session.Score > 1 {
		t.Errorf("score = %d, want at most 1", session.Score)
	}
}

func TestSessionOverFreezesSlicing(t *testing.T) {
	e := newTestECS(1)
	session := testSession(e)
	session.Over = true
	stepClock(e, 1)

	factory.CreateTarget(e, components.KindApple, 320, 200, 0, 0, false)
	setBlade(e, [2]float64{300, 200}, [2]float64{321, 201})

	UpdateSlices(e)

	if session.Score != 0 {
		t.Errorf("score = %d, want 0 after the session ended", session.Score)
	}
}
