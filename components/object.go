package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the broad-phase resolv object mirroring a target's padded
// bounding box in the shared space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the shared resolv space used for slice broad-phase queries.
var Space = donburi.NewComponentType[resolv.Space]()
