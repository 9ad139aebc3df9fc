package tags

import "github.com/yohamta/donburi"

var (
	Target   = donburi.NewTag().SetName("Target")
	Particle = donburi.NewTag().SetName("Particle")
	Splash   = donburi.NewTag().SetName("Splash")
)

// Resolv tags for broad-phase queries
const (
	ResolvTarget = "target"
	ResolvProbe  = "probe"
)
