package systems

import (
	"log"

	"github.com/automoto/beachbomb/components"
	cfg "github.com/automoto/beachbomb/config"
	"github.com/automoto/beachbomb/outfit"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for outfit storage
func InitPersistence() error {
	m, err := outfit.Open(cfg.Persistence.AppName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadOutfit returns the saved outfit, or the default when nothing usable is
// on disk.
func LoadOutfit() outfit.State {
	if !gdataInitialized || gdataManager == nil {
		return outfit.Default()
	}
	s, err := outfit.Load(gdataManager, cfg.Persistence.OutfitKey, cfg.Persistence.Outfits)
	if err != nil {
		log.Printf("Warning: Could not load outfit: %v", err)
	}
	return s
}

// SaveOutfits writes every changed outfit to disk.
func SaveOutfits(ecs *ecs.ECS) {
	if !gdataInitialized || gdataManager == nil {
		return
	}
	components.Outfit.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Outfit.Get(e)
		if !o.Dirty {
			return
		}
		if err := outfit.Save(gdataManager, cfg.Persistence.OutfitKey, o.State); err != nil {
			log.Printf("Warning: Could not save outfit: %v", err)
			return
		}
		o.Dirty = false
	})
}

// UpdateOutfit cycles outfits and toggles accessories 1-4 from the number
// keys.
func UpdateOutfit(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	next := GetAction(input, cfg.ActionNextOutfit).JustPressed
	toggles := pressedAccessories()
	if !next && len(toggles) == 0 {
		return
	}
	components.Outfit.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Outfit.Get(e)
		if next {
			o.Next(cfg.Persistence.Outfits)
		}
		for _, a := range toggles {
			o.Toggle(a)
		}
		o.Dirty = true
	})
}
