package components

import (
	"github.com/automoto/beachbomb/player"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *player.Controller
	// Feet position the player respawns at.
	SpawnX, SpawnY float64
	Index          int
}

var Player = donburi.NewComponentType[PlayerData]()
