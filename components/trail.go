package components

import "github.com/yohamta/donburi"

// TrailPoint is one historical sample of the smoothed pointer.
type TrailPoint struct {
	X, Y    float64
	StampMs float64
}

// TrailData is the rolling history of smoothed pointer positions, ordered
// oldest to newest with strictly increasing timestamps. The recent segments
// form the swept cutting edge.
type TrailData struct {
	Points []TrailPoint
}

var Trail = donburi.NewComponentType[TrailData]()
