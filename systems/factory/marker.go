package factory

import (
	"github.com/automoto/beachbomb/archetypes"
	"github.com/automoto/beachbomb/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	markerBob    = 4
	markerPeriod = 0.6
)

// CreateMarker floats a bobbing debug marker above owner.
func CreateMarker(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	marker := archetypes.Marker.Spawn(ecs)
	components.Marker.SetValue(marker, components.MarkerData{Owner: owner})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, markerBob, markerPeriod, ease.InOutSine),
		gween.New(markerBob, 0, markerPeriod, ease.InOutSine),
	)
	components.Tween.Set(marker, tw)
	return marker
}
