package animator

import (
	"math"

	"github.com/automoto/beachbomb/config"
)

// clip is the playback cursor of one animation state.
type clip struct {
	name    string
	def     config.ClipDef
	elapsed float64
	// Done is set once a non-looping clip reaches its last frame.
	Done bool
}

func newClip(name string, def config.ClipDef, start float64) *clip {
	c := &clip{name: name, def: def}
	c.Restart(start)
	return c
}

// Update advances the clip and reports whether it finished this call.
func (c *clip) Update(dt float64) bool {
	if c.Done {
		return false
	}
	c.elapsed += dt
	if c.def.Loop {
		return false
	}
	if c.elapsed >= c.def.Duration {
		// Stay on last frame
		c.elapsed = c.def.Duration
		c.Done = true
		return true
	}
	return false
}

// Progress is normalised time. Looping clips keep counting past 1.
func (c *clip) Progress() float64 {
	if c.def.Duration <= 0 {
		return 1
	}
	return c.elapsed / c.def.Duration
}

func (c *clip) Frame() int {
	frames := c.def.Frames
	if frames <= 1 {
		return 0
	}
	f := int(math.Floor(c.Progress() * float64(frames)))
	if c.def.Loop {
		return f % frames
	}
	return min(f, frames-1)
}

func (c *clip) Restart(start float64) {
	c.elapsed = math.Max(0, start) * c.def.Duration
	c.Done = false
}
