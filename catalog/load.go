package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the catalog file looked up on disk and in the embedded copy.
const FileName = "moves.yaml"

//go:embed moves.yaml
var movesFS embed.FS

var (
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownMove      = errors.New("unknown move")
	ErrDuplicateMove    = errors.New("duplicate move")
	ErrCategoryMismatch = errors.New("category mismatch")
	ErrNilMove          = errors.New("nil move")
	ErrNoSuchLoadout    = errors.New("no such loadout")
	ErrInvalidStance    = errors.New("invalid stance")
	ErrInvalidMove      = errors.New("invalid move")
)

type fileSpec struct {
	Moves    []*Move       `yaml:"moves"`
	Loadouts []loadoutSpec `yaml:"loadouts"`
}

type loadoutSpec struct {
	Name   string            `yaml:"name"`
	Ground map[string]string `yaml:"ground"`
	Prone  map[string]string `yaml:"prone"`
	Air    map[string]string `yaml:"air"`
}

// Catalog is the loaded set of moves and loadouts.
type Catalog struct {
	moves    map[string]*Move
	order    []string
	Loadouts []Loadout
}

// Move looks up a move by name.
func (c *Catalog) Move(name string) (*Move, bool) {
	m, ok := c.moves[name]
	return m, ok
}

// Moves returns every move in file order.
func (c *Catalog) Moves() []*Move {
	out := make([]*Move, 0, len(c.order))
	for _, n := range c.order {
		out = append(out, c.moves[n])
	}
	return out
}

// NewSlots returns slots with the first loadout applied.
func (c *Catalog) NewSlots() *Slots {
	s := NewSlots(c.Loadouts)
	if len(c.Loadouts) > 0 {
		_ = s.ApplyLoadout(0)
	}
	return s
}

// Read returns the catalog bytes from dir when present, otherwise the
// embedded copy.
func Read(dir string) ([]byte, error) {
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, FileName)); err == nil {
			return data, nil
		}
	}
	return movesFS.ReadFile(FileName)
}

// Load reads and parses the catalog, preferring dir over the embedded copy.
func Load(dir string) (*Catalog, error) {
	data, err := Read(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal: %w", err)
	}

	c := &Catalog{moves: make(map[string]*Move, len(spec.Moves))}
	for _, m := range spec.Moves {
		if err := normalize(m); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := c.moves[m.Name]; dup {
			return nil, fmt.Errorf("catalog: %s: %w", m.Name, ErrDuplicateMove)
		}
		c.moves[m.Name] = m
		c.order = append(c.order, m.Name)
	}

	for _, m := range spec.Moves {
		for i := range m.Followups {
			f := &m.Followups[i]
			if _, ok := c.moves[f.Move]; !ok {
				return nil, fmt.Errorf("catalog: %s followup %s: %w", m.Name, f.Move, ErrUnknownMove)
			}
			p, err := CompilePredicate(f.Ready)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s followup %s: %w", m.Name, f.Move, err)
			}
			f.ready = p
		}
	}

	for _, ls := range spec.Loadouts {
		l, err := c.resolveLoadout(ls)
		if err != nil {
			return nil, fmt.Errorf("catalog: loadout %s: %w", ls.Name, err)
		}
		c.Loadouts = append(c.Loadouts, l)
	}
	return c, nil
}

func normalize(m *Move) error {
	if m.Name == "" {
		return fmt.Errorf("unnamed move: %w", ErrInvalidMove)
	}
	if m.Duration <= 0 {
		return fmt.Errorf("%s duration %v: %w", m.Name, m.Duration, ErrInvalidMove)
	}
	if m.RequiresGrounded && m.RequiresAirborne {
		return fmt.Errorf("%s requires both grounded and airborne: %w", m.Name, ErrInvalidMove)
	}
	if m.Clip == "" {
		m.Clip = m.Name
	}
	if m.Force.Kind == ForceNone && (m.LaunchForce > 0 || m.HorizontalForce > 0) {
		m.Force.Kind = ForceImpulse
		m.Force.Delay = m.LaunchForceDelay
		m.Force.Horizontal = m.HorizontalForce
	}
	switch m.Force.Kind {
	case ForceNone, ForceImpulse:
	case ForceVerticalSamples:
		if len(m.Force.Samples) == 0 || m.Force.Duration <= 0 {
			return fmt.Errorf("%s vertical samples need samples and duration: %w", m.Name, ErrInvalidMove)
		}
	case ForceDisplacement:
		if len(m.Force.Keyframes) < 2 || m.Force.Duration <= 0 {
			return fmt.Errorf("%s displacement needs two keyframes and a duration: %w", m.Name, ErrInvalidMove)
		}
	default:
		return fmt.Errorf("%s force kind %q: %w", m.Name, m.Force.Kind, ErrInvalidMove)
	}
	return nil
}

func (c *Catalog) resolveLoadout(ls loadoutSpec) (Loadout, error) {
	l := Loadout{Name: ls.Name}
	for stance, entries := range [StanceCount]map[string]string{ls.Ground, ls.Prone, ls.Air} {
		for catName, moveName := range entries {
			cat, err := ParseCategory(catName)
			if err != nil {
				return l, err
			}
			m, ok := c.moves[moveName]
			if !ok {
				return l, fmt.Errorf("%s: %w", moveName, ErrUnknownMove)
			}
			if m.Category != cat {
				return l, fmt.Errorf("%s in %s slot: %w", moveName, cat, ErrCategoryMismatch)
			}
			l.Slots[stance][cat] = m
		}
	}
	return l, nil
}
