package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleData is an ephemeral visual entity (slice burst or hazard spark).
// Life drains by Decay each frame; the entity is removed at zero.
type ParticleData struct {
	X, Y  float64
	VelX  float64
	VelY  float64
	Life  float64 // (0, 1]
	Decay float64
	Hue   color.RGBA
	Spark bool
}

var Particle = donburi.NewComponentType[ParticleData]()
