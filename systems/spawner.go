package systems

import (
	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// SpawnRate returns the frames between spawn decisions for a score. The
// cadence tightens as the score grows, down to a fixed floor.
func SpawnRate(score int) int {
	rate := cfg.Spawn.BaseRate - score/cfg.Spawn.ScoreDivisor
	if rate < cfg.Spawn.MinRate {
		rate = cfg.Spawn.MinRate
	}
	return rate
}

// UpdateSpawner advances the spawn timer and launches a single target or a
// pair when the difficulty-ramped interval elapses.
func UpdateSpawner(e *ecs.ECS) {
	spawnerEntry, ok := components.Spawner.First(e.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(spawnerEntry)

	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	spawner.Timer += components.Clock.Get(clockEntry).DT

	rate := float64(SpawnRate(session.Score))
	if spawner.Timer < rate {
		return
	}
	spawner.Timer -= rate

	if spawner.Rand.Float64() < cfg.Spawn.PairChance {
		factory.SpawnTargetPair(e, spawner.Rand)
	} else {
		factory.SpawnTarget(e, spawner.Rand, nil)
	}
}
