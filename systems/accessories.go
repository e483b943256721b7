package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var accessoryKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

func pressedAccessories() []int {
	var out []int
	for i, k := range accessoryKeys {
		if inpututil.IsKeyJustPressed(k) {
			out = append(out, i+1)
		}
	}
	return out
}
