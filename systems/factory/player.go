package factory

import (
	"github.com/automoto/beachbomb/animator"
	"github.com/automoto/beachbomb/archetypes"
	"github.com/automoto/beachbomb/body"
	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/components"
	cfg "github.com/automoto/beachbomb/config"
	"github.com/automoto/beachbomb/leveldata"
	"github.com/automoto/beachbomb/player"
	"github.com/automoto/beachbomb/systems"
	"github.com/automoto/beachbomb/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player standing on spawn. laneDepth is the arena's
// walkable depth band in pixels.
func CreatePlayer(ecs *ecs.ECS, moves *catalog.Catalog, spawn leveldata.SpawnPoint, laneDepth float64) *donburi.Entry {
	e := archetypes.Player.Spawn(ecs)

	w, h := cfg.Body.Width, cfg.Body.Height
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	b := body.New(obj, cfg.C.PixelsPerUnit, 0, laneDepth)
	components.Body.SetValue(e, components.BodyData{Body: b})

	anim := animator.NewPlayer()
	components.Animation.SetValue(e, components.AnimationData{Animator: anim})

	ctrl := player.NewController(player.Deps{
		Probe:  anim,
		Input:  systems.NewInputSource(ecs),
		Ground: b,
		Pause:  systems.NewPauseSignal(ecs),
		Mover:  b,
	}, moves.NewSlots())
	anim.OnComplete = ctrl.NotifyAnimationPhaseComplete

	components.Player.SetValue(e, components.PlayerData{
		Controller: ctrl,
		SpawnX:     spawn.X,
		SpawnY:     spawn.Y,
		Index:      spawn.Index,
	})
	components.Outfit.SetValue(e, components.OutfitData{State: systems.LoadOutfit()})

	CreateMarker(ecs, e)
	return e
}
