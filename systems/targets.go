package systems

import (
	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTargets integrates every active target and resolves the ones whose
// arc completed below the field. A target removed here was never hit this
// frame, so miss and slice stay mutually exclusive: slice detection runs
// after this system and only sees survivors.
func UpdateTargets(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)

	fieldEntry, ok := components.Field.First(e.World)
	if !ok {
		return
	}
	field := components.Field.Get(fieldEntry)

	var exited []*donburi.Entry

	components.Target.Each(e.World, func(entry *donburi.Entry) {
		t := components.Target.Get(entry)
		if !t.Active {
			exited = append(exited, entry)
			return
		}

		dt := clock.DT
		g := cfg.Target.Gravity

		// Closed-form ballistic step: the position picks up the half-g*dt^2
		// term so N unit steps land exactly where N/2 double steps do.
		t.X += t.VelX * dt
		t.Y += t.VelY*dt + 0.5*g*dt*dt
		t.VelY += g * dt
		t.Rotation += t.RotSpeed * dt

		// Mirror the broad-phase box onto the new center.
		obj := components.Object.Get(entry)
		half := t.Radius + cfg.Collision.HitboxPadding
		obj.X = t.X - half
		obj.Y = t.Y - half
		obj.Update()

		// Arc complete: falling again and fully below the bottom edge.
		if t.VelY >= 0 && t.Y-t.Radius > field.Height {
			t.Active = false
			exited = append(exited, entry)
		}
	})

	for _, entry := range exited {
		t := components.Target.Get(entry)
		if !t.Sliced {
			ResolveMiss(e, t)
		}
		factory.DestroyTarget(e, entry)
	}
}
