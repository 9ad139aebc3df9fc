package components

import "github.com/yohamta/donburi"

// ClockData is the singleton simulation clock. DT is the current step in
// nominal-frame multiples; NowMs advances by DT * config.NominalFrameMs.
type ClockData struct {
	NowMs float64
	DT    float64
	Frame int64
}

var Clock = donburi.NewComponentType[ClockData]()
