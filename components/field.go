package components

import "github.com/yohamta/donburi"

// FieldData is the singleton play-field size. Updated on resize.
type FieldData struct {
	Width  float64
	Height float64
}

var Field = donburi.NewComponentType[FieldData]()
