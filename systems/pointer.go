package systems

import (
	"math"

	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer advances the smoothed pointer from the latest raw sample,
// appends to the trail and prunes expired trail points.
func UpdatePointer(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)

	pointerEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	ptr := components.Pointer.Get(pointerEntry)
	trail := components.Trail.Get(pointerEntry)

	if ptr.Visible {
		// Tracking regained after a loss: take the new sample as ground
		// truth instead of smoothing across the gap.
		if !ptr.WasVisible {
			ptr.FilterX.Reset()
			ptr.FilterY.Reset()
		}
		ptr.X = ptr.FilterX.Filter(ptr.RawX, clock.NowMs)
		ptr.Y = ptr.FilterY.Filter(ptr.RawY, clock.NowMs)
		trail.Points = append(trail.Points, components.TrailPoint{
			X:       ptr.X,
			Y:       ptr.Y,
			StampMs: clock.NowMs,
		})
	}
	ptr.WasVisible = ptr.Visible

	pruneTrail(trail, clock.NowMs)

	// Displacement speed over the most recent sampled interval, px/ms.
	ptr.Speed = 0
	if n := len(trail.Points); n >= 2 {
		a := trail.Points[n-2]
		b := trail.Points[n-1]
		dtMs := b.StampMs - a.StampMs
		if dtMs < 1 {
			dtMs = 1
		}
		ptr.Speed = math.Hypot(b.X-a.X, b.Y-a.Y) / dtMs
	}
}

func pruneTrail(trail *components.TrailData, nowMs float64) {
	cutoff := nowMs - cfg.Trail.RetentionMs
	keep := 0
	for keep < len(trail.Points) && trail.Points[keep].StampMs <= cutoff {
		keep++
	}
	if keep > 0 {
		trail.Points = append(trail.Points[:0], trail.Points[keep:]...)
	}
}
