package factory

import (
	"math/rand"

	"github.com/LeulTew/Kitefew/archetypes"
	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawKind performs the weighted kind draw: small fixed chances for hazard
// and life-bonus, remainder split evenly across the fruit flavors.
func DrawKind(rng *rand.Rand) components.Kind {
	r := rng.Float64()
	switch {
	case r < cfg.Target.HazardChance:
		return components.KindHazard
	case r < cfg.Target.HazardChance+cfg.Target.BonusChance:
		return components.KindLifeBonus
	default:
		return components.FruitKinds[rng.Intn(len(components.FruitKinds))]
	}
}

// KindRadius returns the circle radius for a kind.
func KindRadius(kind components.Kind) float64 {
	switch kind {
	case components.KindHazard:
		return cfg.Target.HazardRadius
	case components.KindLifeBonus:
		return cfg.Target.BonusRadius
	default:
		return cfg.Target.Radius
	}
}

// SpawnTarget creates one randomized target rising from below the field.
// A nil forced kind means a weighted draw.
func SpawnTarget(e *ecs.ECS, rng *rand.Rand, forced *components.Kind) *donburi.Entry {
	fieldEntry, ok := components.Field.First(e.World)
	if !ok {
		return nil
	}
	field := components.Field.Get(fieldEntry)

	kind := DrawKind(rng)
	if forced != nil {
		kind = *forced
	}

	margin := cfg.Target.SpawnMargin
	x := margin + rng.Float64()*(field.Width-2*margin)
	vy := cfg.Target.LaunchVYMin + rng.Float64()*(cfg.Target.LaunchVYMax-cfg.Target.LaunchVYMin)

	return CreateTarget(e, kind, x, field.Height+cfg.Target.SpawnOffsetY, launchVX(rng), vy, false)
}

// SpawnTargetPair creates two targets around a shared base position with a
// fixed horizontal offset. They share a kind unless the first draw was
// hazard or life-bonus, in which case the second is drawn independently.
// The second member's launch speed is perturbed slightly from the first's.
func SpawnTargetPair(e *ecs.ECS, rng *rand.Rand) (*donburi.Entry, *donburi.Entry) {
	fieldEntry, ok := components.Field.First(e.World)
	if !ok {
		return nil, nil
	}
	field := components.Field.Get(fieldEntry)

	first := DrawKind(rng)
	second := first
	if !first.IsFruit() {
		second = DrawKind(rng)
	}

	margin := cfg.Target.SpawnMargin + cfg.Spawn.PairOffset/2
	baseX := margin + rng.Float64()*(field.Width-2*margin)
	vy := cfg.Target.LaunchVYMin + rng.Float64()*(cfg.Target.LaunchVYMax-cfg.Target.LaunchVYMin)
	vy2 := vy + (rng.Float64()*2-1)*cfg.Spawn.PairVYJitter

	y := field.Height + cfg.Target.SpawnOffsetY
	a := CreateTarget(e, first, baseX-cfg.Spawn.PairOffset/2, y, launchVX(rng), vy, true)
	b := CreateTarget(e, second, baseX+cfg.Spawn.PairOffset/2, y, launchVX(rng), vy2, true)
	return a, b
}

// CreateTarget creates a target with explicit kinematics. Tests use it
// directly to place deterministic targets.
func CreateTarget(e *ecs.ECS, kind components.Kind, x, y, vx, vy float64, paired bool) *donburi.Entry {
	target := archetypes.Target.Spawn(e)

	radius := KindRadius(kind)
	var spawnMs float64
	var rotSpeed float64
	if clockEntry, ok := components.Clock.First(e.World); ok {
		spawnMs = components.Clock.Get(clockEntry).NowMs
	}
	if spawnerEntry, ok := components.Spawner.First(e.World); ok {
		rng := components.Spawner.Get(spawnerEntry).Rand
		rotSpeed = (rng.Float64()*2 - 1) * cfg.Target.RotSpeedSpan
	}

	components.Target.SetValue(target, components.TargetData{
		Kind:     kind,
		X:        x,
		Y:        y,
		VelX:     vx,
		VelY:     vy,
		RotSpeed: rotSpeed,
		Radius:   radius,
		Active:   true,
		Paired:   paired,
		SpawnMs:  spawnMs,
	})

	// Broad-phase AABB covers the padded hit circle.
	half := radius + cfg.Collision.HitboxPadding
	obj := resolv.NewObject(x-half, y-half, 2*half, 2*half)
	obj.AddTags(tags.ResolvTarget)
	obj.Data = target
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.SetValue(target, components.ObjectData{Object: obj})

	return target
}

// DestroyTarget removes a target and its broad-phase object.
func DestroyTarget(e *ecs.ECS, entry *donburi.Entry) {
	if obj := components.Object.Get(entry); obj != nil && obj.Object != nil {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}

func launchVX(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * cfg.Target.LaunchVXSpan
}
