package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SpawnerData is the singleton spawn timer. Rand is injected so spawn kind
// and launch jitter are reproducible in tests.
type SpawnerData struct {
	Timer float64 // frames accumulated since the last spawn
	Rand  *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
