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

func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Lives:      cfg.Scoring.StartingLives,
		MaxLives:   cfg.Scoring.MaxLives,
		Multiplier: 1,
	})
	return session
}

func CreateSpawner(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Timer: 0,
		Rand:  rng,
	})
	return spawner
}

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{})
	return clock
}

func CreateField(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	field := archetypes.Field.Spawn(ecs)
	components.Field.SetValue(field, components.FieldData{
		Width:  width,
		Height: height,
	})
	return field
}

func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, NewSpace(width, height))
	return space
}

// NewSpace builds a bare broad-phase space for the field, used both at world
// creation and when the field is resized.
func NewSpace(width, height int) *resolv.Space {
	cell := cfg.Collision.SpaceCellSize
	return resolv.NewSpace(width, height, cell, cell)
}

// CreatePointer creates the pointer singleton centered on the field, with
// fresh filters and an empty trail. Its resolv object is the broad-phase
// probe swept along the blade path each frame.
func CreatePointer(ecs *ecs.ECS, space *resolv.Space, fieldWidth, fieldHeight float64) *donburi.Entry {
	pointer := archetypes.Pointer.Spawn(ecs, components.Object)

	cx := fieldWidth / 2
	cy := fieldHeight / 2
	components.Pointer.SetValue(pointer, components.PointerData{
		RawX:    cx,
		RawY:    cy,
		X:       cx,
		Y:       cy,
		FilterX: newAxisFilter(),
		FilterY: newAxisFilter(),
	})
	components.Trail.SetValue(pointer, components.TrailData{})

	probe := resolv.NewObject(cx, cy, 1, 1)
	probe.AddTags(tags.ResolvProbe)
	probe.Data = pointer
	space.Add(probe)
	components.Object.SetValue(pointer, components.ObjectData{Object: probe})

	return pointer
}
