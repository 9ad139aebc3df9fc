package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/LeulTew/Kitefew/archetypes"
	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/yohamta/donburi/ecs"
)

// SpawnSliceBurst creates the particle burst for a sliced target, colored by
// its kind.
func SpawnSliceBurst(e *ecs.ECS, rng *rand.Rand, x, y float64, kind components.Kind) {
	hue := kind.Hue()
	for i := 0; i < cfg.Particle.BurstCount; i++ {
		spawnParticle(e, rng, x, y, hue, cfg.Particle.Decay, false)
	}
}

// SpawnSparks creates the short-lived spark shower for a hazard slice.
func SpawnSparks(e *ecs.ECS, rng *rand.Rand, x, y float64) {
	for i := 0; i < cfg.Particle.SparkCount; i++ {
		spawnParticle(e, rng, x, y, cfg.Yellow, cfg.Particle.SparkDecay, true)
	}
}

func spawnParticle(e *ecs.ECS, rng *rand.Rand, x, y float64, hue color.RGBA, decay float64, spark bool) {
	angle := rng.Float64() * 2 * math.Pi
	speed := cfg.Particle.SpeedMin + rng.Float64()*(cfg.Particle.SpeedMax-cfg.Particle.SpeedMin)

	particle := archetypes.Particle.Spawn(e)
	components.Particle.SetValue(particle, components.ParticleData{
		X:     x,
		Y:     y,
		VelX:  math.Cos(angle) * speed,
		VelY:  math.Sin(angle) * speed,
		Life:  1.0,
		Decay: decay,
		Hue:   hue,
		Spark: spark,
	})
}
