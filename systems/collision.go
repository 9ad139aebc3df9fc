package systems

import (
	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/gmath"
	"github.com/LeulTew/Kitefew/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSlices runs the swept slice detection for this frame and feeds every
// confirmed hit through the scoring transitions. Targets are hit at most
// once; the Sliced latch never clears.
func UpdateSlices(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.Over {
		return
	}

	pointerEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	ptr := components.Pointer.Get(pointerEntry)
	trail := components.Trail.Get(pointerEntry)

	// Slicing requires motion: a pointer resting on a target never cuts it,
	// and an invisible pointer produces no new hits.
	if !ptr.Visible || ptr.Speed < cfg.Collision.MinSliceSpeed {
		return
	}

	blade := bladePoints(trail)
	if len(blade) == 0 {
		return
	}

	candidates := sweepCandidates(e, pointerEntry, blade)
	if len(candidates) == 0 {
		return
	}

	var hits []*donburi.Entry
	for _, entry := range candidates {
		t := components.Target.Get(entry)
		if t.Sliced || !t.Active {
			continue
		}
		if bladeHits(blade, t) {
			t.Sliced = true
			hits = append(hits, entry)
		}
	}

	// All simultaneous qualifying hits are accepted; that is what makes
	// combo tiers reachable. A hazard among them ends the session and stops
	// further scoring.
	for _, entry := range hits {
		ResolveSlice(e, entry)
		if session.Over {
			break
		}
	}
}

// bladePoints returns the cutting path, newest first: the current smoothed
// position followed by up to MaxSegments older trail points.
func bladePoints(trail *components.TrailData) []mgl64.Vec2 {
	n := len(trail.Points)
	if n == 0 {
		return nil
	}
	count := cfg.Trail.MaxSegments + 1
	if count > n {
		count = n
	}
	pts := make([]mgl64.Vec2, 0, count)
	for i := 0; i < count; i++ {
		p := trail.Points[n-1-i]
		pts = append(pts, mgl64.Vec2{p.X, p.Y})
	}
	return pts
}

// sweepCandidates narrows the active targets through the resolv space: the
// pointer's probe object is stretched over the blade path's bounding box and
// checked against target cells.
func sweepCandidates(e *ecs.ECS, pointerEntry *donburi.Entry, blade []mgl64.Vec2) []*donburi.Entry {
	probe := components.Object.Get(pointerEntry)
	if probe == nil || probe.Object == nil {
		return nil
	}

	minX, minY := blade[0][0], blade[0][1]
	maxX, maxY := minX, minY
	for _, p := range blade[1:] {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}

	margin := cfg.Target.Radius + cfg.Collision.HitboxPadding
	probe.X = minX - margin
	probe.Y = minY - margin
	probe.W = maxX - minX + 2*margin
	probe.H = maxY - minY + 2*margin
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvTarget)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tags.ResolvTarget) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// bladeHits applies the narrow phase: a padded-radius point test on the
// current position, then the recent trail segments with progressively
// tighter padding (a trailing edge should not extend hit generosity).
func bladeHits(blade []mgl64.Vec2, t *components.TargetData) bool {
	center := mgl64.Vec2{t.X, t.Y}
	pad := cfg.Collision.HitboxPadding

	if blade[0].Sub(center).Len() < t.Radius+pad {
		return true
	}

	segPad := pad
	for i := 0; i+1 < len(blade); i++ {
		segPad *= cfg.Collision.SegmentPadScale
		if gmath.PointSegmentDistance(center, blade[i+1], blade[i]) < t.Radius+segPad {
			return true
		}
	}
	return false
}
