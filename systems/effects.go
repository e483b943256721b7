package systems

import (
	"github.com/automoto/beachbomb/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMarkers advances each marker's bob tween, looping it when the
// sequence finishes. Markers whose owner is gone are destroyed.
func UpdateMarkers(ecs *ecs.ECS) {
	dt := float32(tickSeconds())
	var toDestroy []*donburi.Entry

	components.Marker.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Marker.Get(e)
		if m.Owner == nil || !m.Owner.Valid() {
			toDestroy = append(toDestroy, e)
			return
		}
		seq := components.Tween.Get(e)
		offset, _, done := seq.Update(dt)
		m.Offset = float64(offset)
		if done {
			seq.Reset()
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
