package systems

import (
	"testing"

	cfg "github.com/LeulTew/Kitefew/config"
)

func TestPointerFirstSampleIsPassthrough(t *testing.T) {
	e := newTestECS(1)
	ptr, _ := testPointer(e)

	ptr.RawX, ptr.RawY = 111, 222
	ptr.Visible = true
	stepClock(e, 1)
	UpdatePointer(e)

	if ptr.X != 111 || ptr.Y != 222 {
		t.Errorf("smoothed = (%.1f, %.1f), want raw passthrough (111, 222)", ptr.X, ptr.Y)
	}
}

func TestTrailPrunedToRetentionWindow(t *testing.T) {
	e := newTestECS(1)
	ptr, trail := testPointer(e)
	ptr.Visible = true

	frames := int(cfg.Trail.RetentionMs/cfg.NominalFrameMs) * 3
	for i := 0; i < frames; i++ {
		ptr.RawX = float64(i)
		ptr.RawY = 100
		stepClock(e, 1)
		UpdatePointer(e)
	}

	now := clockNow(e)
	for _, p := range trail.Points {
		if p.StampMs <= now-cfg.Trail.RetentionMs {
			t.Fatalf("trail keeps a point aged %.1fms, window is %.1fms",
				now-p.StampMs, cfg.Trail.RetentionMs)
		}
	}
	maxPoints := int(cfg.Trail.RetentionMs/cfg.NominalFrameMs) + 1
	if len(trail.Points) > maxPoints {
		t.Errorf("trail holds %d points, want at most %d", len(trail.Points), maxPoints)
	}
}

func TestTrackingLossFreezesSmoothedPosition(t *testing.T) {
	e := newTestECS(1)
	ptr, trail := testPointer(e)

	ptr.RawX, ptr.RawY = 100, 100
	ptr.Visible = true
	stepClock(e, 1)
	UpdatePointer(e)
	heldX, heldY := ptr.X, ptr.Y
	points := len(trail.Points)

	ptr.RawX, ptr.RawY = 500, 300
	ptr.Visible = false
	stepClock(e, 1)
	UpdatePointer(e)

	if ptr.X != heldX || ptr.Y != heldY {
		t.Errorf("smoothed moved to (%.1f, %.1f) while invisible", ptr.X, ptr.Y)
	}
	if len(trail.Points) > points {
		t.Error("trail grew while tracking was lost")
	}
}

func TestRegainedTrackingSnapsToNewSample(t *testing.T) {
	e := newTestECS(1)
	ptr, _ := testPointer(e)

	ptr.RawX, ptr.RawY = 100, 100
	ptr.Visible = true
	stepClock(e, 1)
	UpdatePointer(e)

	ptr.Visible = false
	stepClock(e, 1)
	UpdatePointer(e)

	// The filter restarts; the far-away regain sample must not be smoothed
	// against the stale position.
	ptr.RawX, ptr.RawY = 600, 50
	ptr.Visible = true
	stepClock(e, 1)
	UpdatePointer(e)

	if ptr.X != 600 || ptr.Y != 50 {
		t.Errorf("regained position = (%.1f, %.1f), want snap to (600, 50)", ptr.X, ptr.Y)
	}
}

func TestSpeedReflectsLastInterval(t *testing.T) {
	e := newTestECS(1)
	ptr, _ := testPointer(e)
	ptr.Visible = true

	ptr.RawX, ptr.RawY = 100, 100
	stepClock(e, 1)
	UpdatePointer(e)
	if ptr.Speed != 0 {
		t.Errorf("speed = %.3f with a single sample, want 0", ptr.Speed)
	}

	ptr.RawX = 300
	stepClock(e, 1)
	UpdatePointer(e)
	if ptr.Speed <= cfg.Collision.MinSliceSpeed {
		t.Errorf("speed = %.3f after a fast sweep, want above the slice gate %.3f",
			ptr.Speed, cfg.Collision.MinSliceSpeed)
	}
}
