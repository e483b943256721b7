package systems

import (
	"log"

	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/components"
	"github.com/automoto/beachbomb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewCatalogReload returns a system that reloads the move catalog from dir
// whenever the watcher reports a change, and rebinds every player's slots.
// A catalog that fails to load leaves the current moves in place.
func NewCatalogReload(w *catalog.Watcher, dir string) ecs.System {
	return func(ecs *ecs.ECS) {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				c, err := catalog.Load(dir)
				if err != nil {
					log.Printf("Warning: Could not reload catalog after %s changed: %v", path, err)
					continue
				}
				tags.Player.Each(ecs.World, func(e *donburi.Entry) {
					components.Player.Get(e).Controller.Slots().Rebind(c)
				})
				log.Printf("catalog: reloaded %d moves from %s", len(c.Moves()), dir)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Warning: catalog watcher: %v", err)
			default:
				return
			}
		}
	}
}
