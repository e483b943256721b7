package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/beachbomb/assets"
	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/config"
	"github.com/automoto/beachbomb/fonts"
	"github.com/automoto/beachbomb/leveldata"
	"github.com/automoto/beachbomb/metrics"
	"github.com/automoto/beachbomb/scenes"
	"github.com/automoto/beachbomb/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	metricsAddr := flag.String("metrics", "", "serve /metrics and /debug/state on this address")
	catalogDir := flag.String("catalog", "", "directory holding moves.yaml (embedded copy when empty or missing)")
	watch := flag.Bool("watch", false, "reload the catalog when it changes on disk")
	tuning := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	arenaName := flag.String("arena", "arena", "arena to load from the embedded levels")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	moves, err := catalog.Load(*catalogDir)
	if err != nil {
		log.Fatalf("Failed to load move catalog: %v", err)
	}

	arenas, names, err := leveldata.LoadAll(assets.FS, assets.LevelsDir)
	if err != nil {
		log.Fatalf("Failed to load arenas: %v", err)
	}
	arena, ok := arenas[*arenaName]
	if !ok {
		log.Fatalf("Unknown arena %q (have %v)", *arenaName, names)
	}

	sceneConfig := scenes.ArenaConfig{Arena: arena, Catalog: moves, CatalogDir: *catalogDir}
	if *watch {
		if *catalogDir == "" {
			log.Printf("Warning: -watch needs -catalog; live reload disabled")
		} else if w, err := catalog.NewWatcher(*catalogDir); err != nil {
			log.Printf("Warning: Could not watch catalog: %v", err)
		} else {
			defer w.Close()
			sceneConfig.Watcher = w
		}
	}

	metrics.Serve(*metricsAddr)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("beachbomb")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence before the scene loads the saved outfit
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(scenes.NewArenaScene(sceneConfig))); err != nil {
		log.Fatal(err)
	}
}
