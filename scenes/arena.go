package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/beachbomb/archetypes"
	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/leveldata"
	"github.com/automoto/beachbomb/systems"
	"github.com/automoto/beachbomb/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaConfig is everything an arena scene needs up front.
type ArenaConfig struct {
	Arena   *leveldata.Arena
	Catalog *catalog.Catalog
	// Watcher and CatalogDir enable live catalog reloads when Watcher is set.
	Watcher    *catalog.Watcher
	CatalogDir string
}

// ArenaScene is a single player sandbox on one arena.
type ArenaScene struct {
	ecs    *ecs.ECS
	config ArenaConfig
	once   sync.Once
}

func NewArenaScene(config ArenaConfig) *ArenaScene {
	return &ArenaScene{config: config}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)
	if as.config.Watcher != nil {
		ecs.AddSystem(systems.NewCatalogReload(as.config.Watcher, as.config.CatalogDir))
	}
	// The controller handles pause itself.
	ecs.AddSystem(systems.UpdatePlayer)

	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimation))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateOutfit))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMarkers))

	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawArena)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawPlayers)
	ecs.AddRenderer(archetypes.LayerOverlay, systems.DrawHUD)
	ecs.AddRenderer(archetypes.LayerOverlay, systems.DrawDebug)
	ecs.AddRenderer(archetypes.LayerOverlay, systems.DrawPause)

	as.ecs = ecs

	arena := as.config.Arena
	factory.CreateSpace(ecs, arena.Width, arena.Height, 16)
	for _, r := range arena.Solids {
		factory.CreateWall(ecs, r)
	}

	spawn := arena.SpawnPoints[0]
	factory.CreatePlayer(ecs, as.config.Catalog, spawn, arena.LaneDepth)
	log.Printf("arena: %d solids, player at (%.0f, %.0f)", len(arena.Solids), spawn.X, spawn.Y)
}
