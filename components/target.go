package components

import (
	"image/color"

	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/yohamta/donburi"
)

// Kind classifies a falling target.
type Kind int

const (
	KindApple Kind = iota
	KindMelon
	KindMango
	KindPlum
	KindHazard
	KindLifeBonus
)

// FruitKinds are the interchangeable beneficial flavors.
var FruitKinds = []Kind{KindApple, KindMelon, KindMango, KindPlum}

// IsFruit reports whether slicing this kind scores and misses penalize.
func (k Kind) IsFruit() bool {
	return k != KindHazard && k != KindLifeBonus
}

// Hue is the kind's display color, shared by the body and its slice burst.
func (k Kind) Hue() color.RGBA {
	switch k {
	case KindApple:
		return cfg.Green
	case KindMelon:
		return cfg.Pink
	case KindMango:
		return cfg.Orange
	case KindPlum:
		return cfg.Purple
	case KindLifeBonus:
		return cfg.HeartRed
	default:
		return cfg.HazardGray
	}
}

// TargetData is a falling interactive entity. Position is the circle center;
// the paired resolv object is broad-phase only and mirrors it.
type TargetData struct {
	Kind     Kind
	X, Y     float64
	VelX     float64
	VelY     float64
	Rotation float64
	RotSpeed float64
	Radius   float64
	Sliced   bool // latches true once; a target never un-slices
	Active   bool
	Paired   bool // spawned as half of a simultaneous pair
	SpawnMs  float64
}

var Target = donburi.NewComponentType[TargetData]()
