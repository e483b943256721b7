package components

import (
	"github.com/automoto/beachbomb/outfit"
	"github.com/yohamta/donburi"
)

type OutfitData struct {
	outfit.State
	Dirty bool // changed since the last save
}

var Outfit = donburi.NewComponentType[OutfitData]()
