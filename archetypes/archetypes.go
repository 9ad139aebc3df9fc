package archetypes

import (
	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Splash = newArchetype(
		tags.Splash,
		components.Splash,
	)
	Session = newArchetype(
		components.Session,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Pointer = newArchetype(
		components.Pointer,
		components.Trail,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Field = newArchetype(
		components.Field,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
