package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	solidGroup = "Solids"
	tileLayer  = "wg-tiles"
	spawnGroup = "PlayerSpawn"

	defaultLaneDepth = 48
)

// Load parses a TMX arena. Solids come from the Solids object group and from
// any tile on the wg-tiles layer.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Width:     m.Width * m.TileWidth,
		Height:    m.Height * m.TileHeight,
		LaneDepth: defaultLaneDepth,
	}
	if m.Properties != nil {
		if d := m.Properties.GetInt("laneDepth"); d > 0 {
			a.LaneDepth = float64(d)
		}
	}

	tileW, tileH := float64(m.TileWidth), float64(m.TileHeight)
	for _, layer := range m.Layers {
		if layer.Name != tileLayer {
			continue
		}
		for i, tile := range layer.Tiles {
			if tile == nil || tile.IsNil() {
				continue
			}
			x, y := i%m.Width, i/m.Width
			a.Solids = append(a.Solids, Rect{X: float64(x) * tileW, Y: float64(y) * tileH, W: tileW, H: tileH})
		}
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case solidGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("%s: solid %d has no area", tmxPath, o.ID)
				}
				a.Solids = append(a.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case spawnGroup:
			for _, o := range og.Objects {
				a.SpawnPoints = append(a.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}
	if len(a.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%s: no %s objects", tmxPath, spawnGroup)
	}

	sort.Slice(a.SpawnPoints, func(i, j int) bool {
		return a.SpawnPoints[i].Index < a.SpawnPoints[j].Index
	})
	return a, nil
}

// LoadAll loads every .tmx file in dir, keyed by file stem, plus the sorted
// stem list.
func LoadAll(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		a, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(path.Base(p), ".tmx")
		arenas[stem] = a
		names = append(names, stem)
	}
	sort.Strings(names)
	return arenas, names, nil
}
