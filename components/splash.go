package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SplashData is transient feedback text ("DOUBLE!", "+1 LIFE") that rises
// and fades out over its tween, then is removed.
type SplashData struct {
	Text string
	X, Y float64
	Rise *gween.Tween // vertical offset, 0 -> RisePx
	Fade *gween.Tween // alpha, 1 -> 0
	Done bool
}

var Splash = donburi.NewComponentType[SplashData]()
