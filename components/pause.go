package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused bool
	Ticks    int // ticks spent in the current pause
}

var Pause = donburi.NewComponentType[PauseData]()
