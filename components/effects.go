package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives a looping float animation, such as the debug marker bob.
var Tween = donburi.NewComponentType[gween.Sequence]()

// MarkerData floats above its owner in the debug overlay.
type MarkerData struct {
	Owner  *donburi.Entry
	Offset float64
}

var Marker = donburi.NewComponentType[MarkerData]()
