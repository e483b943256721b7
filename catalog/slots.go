package catalog

import "fmt"

// Loadout is a named bundle of slot assignments. Nil entries leave the
// current slot untouched when applied.
type Loadout struct {
	Name  string
	Slots [StanceCount][CategoryCount]*Move
}

// Slots holds the nine attack slots of one player.
type Slots struct {
	slots    [StanceCount][CategoryCount]*Move
	loadouts []Loadout
	current  int
}

func NewSlots(loadouts []Loadout) *Slots {
	return &Slots{loadouts: loadouts, current: -1}
}

// Get returns the move bound to (category, stance), or nil.
func (s *Slots) Get(c Category, st Stance) *Move {
	if !validSlot(c, st) {
		return nil
	}
	return s.slots[st][c]
}

// SwapSlot binds m to (category, stance). The move's own category must match.
func (s *Slots) SwapSlot(c Category, st Stance, m *Move) error {
	if !validSlot(c, st) {
		return fmt.Errorf("catalog: swap %s/%s: %w", st, c, ErrInvalidStance)
	}
	if m == nil {
		return fmt.Errorf("catalog: swap %s/%s: %w", st, c, ErrNilMove)
	}
	if m.Category != c {
		return fmt.Errorf("catalog: swap %s into %s/%s: %w", m.Name, st, c, ErrCategoryMismatch)
	}
	s.slots[st][c] = m
	return nil
}

// ApplyLoadout overwrites every slot the loadout assigns.
func (s *Slots) ApplyLoadout(index int) error {
	if index < 0 || index >= len(s.loadouts) {
		return fmt.Errorf("catalog: loadout %d of %d: %w", index, len(s.loadouts), ErrNoSuchLoadout)
	}
	l := s.loadouts[index]
	for st := range l.Slots {
		for c, m := range l.Slots[st] {
			if m != nil {
				s.slots[st][c] = m
			}
		}
	}
	s.current = index
	return nil
}

// Current is the index of the last applied loadout, or -1.
func (s *Slots) Current() int { return s.current }

func (s *Slots) Loadouts() []Loadout { return s.loadouts }

// Rebind replaces the loadout list and re-resolves every bound slot by move
// name against moves. Slots whose move vanished are cleared.
func (s *Slots) Rebind(c *Catalog) {
	for st := range s.slots {
		for cat, m := range s.slots[st] {
			if m == nil {
				continue
			}
			if fresh, ok := c.Move(m.Name); ok && fresh.Category == m.Category {
				s.slots[st][cat] = fresh
			} else {
				s.slots[st][cat] = nil
			}
		}
	}
	s.loadouts = c.Loadouts
	if s.current >= len(s.loadouts) {
		s.current = -1
	}
}

func validSlot(c Category, st Stance) bool {
	return c >= 0 && c < CategoryCount && st >= 0 && st < StanceCount
}
