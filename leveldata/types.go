// Package leveldata parses arena TMX files into plain collision data. It has
// no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Arena holds everything the host needs from a TMX arena.
type Arena struct {
	Solids      []Rect
	SpawnPoints []SpawnPoint
	Width       int
	Height      int
	// LaneDepth is the depth of the walkable band in pixels.
	LaneDepth float64
}

type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is the bottom-centre of a player's feet.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
