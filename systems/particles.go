package systems

import (
	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles ages and integrates the slice debris and removes particles
// whose life ran out.
func UpdateParticles(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	dt := components.Clock.Get(clockEntry).DT

	var dead []*donburi.Entry

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		p.Life -= p.Decay * dt
		if p.Life <= 0 {
			dead = append(dead, entry)
			return
		}
		p.X += p.VelX * dt
		p.Y += p.VelY * dt
		p.VelY += cfg.Particle.Gravity * dt
	})

	for _, entry := range dead {
		e.World.Remove(entry.Entity())
	}
}
