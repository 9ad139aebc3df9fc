package components

import (
	"github.com/LeulTew/Kitefew/filter"
	"github.com/yohamta/donburi"
)

// PointerData is the singleton holding the raw tracked sample and the
// engine-owned smoothed trajectory derived from it.
type PointerData struct {
	// Latest raw sample pushed by the tracking collaborator. Overwritten at
	// its cadence; may be stale for several ticks.
	RawX, RawY float64
	Visible    bool

	// Smoothed position. Defined from session start (field center until the
	// first visible sample arrives).
	X, Y float64

	// Displacement speed over the most recent trail interval, px/ms. Zero
	// until the trail has two points.
	Speed float64

	WasVisible bool

	FilterX *filter.OneEuro
	FilterY *filter.OneEuro
}

var Pointer = donburi.NewComponentType[PointerData]()
