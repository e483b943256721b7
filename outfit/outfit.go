// Package outfit holds the player's cosmetic state and its save format.
package outfit

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/quasilyte/gdata"
)

// DefaultOutfit is worn when nothing has been saved.
const DefaultOutfit = "PJs"

var ErrUnknownOutfit = errors.New("unknown outfit")

// State is the cosmetic state of one player.
type State struct {
	CurrentOutfit     string
	ActiveAccessories map[int]struct{}
}

func Default() State {
	return State{CurrentOutfit: DefaultOutfit, ActiveAccessories: map[int]struct{}{}}
}

// Next moves to the outfit after the current one in outfits, wrapping.
func (s *State) Next(outfits []string) {
	if len(outfits) == 0 {
		return
	}
	i := slices.Index(outfits, s.CurrentOutfit)
	s.CurrentOutfit = outfits[(i+1)%len(outfits)]
}

// Toggle flips one accessory and reports whether it is now worn.
func (s *State) Toggle(accessory int) bool {
	if s.ActiveAccessories == nil {
		s.ActiveAccessories = map[int]struct{}{}
	}
	if _, ok := s.ActiveAccessories[accessory]; ok {
		delete(s.ActiveAccessories, accessory)
		return false
	}
	s.ActiveAccessories[accessory] = struct{}{}
	return true
}

func (s State) Accessories() []int {
	out := make([]int, 0, len(s.ActiveAccessories))
	for a := range s.ActiveAccessories {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

type savedState struct {
	CurrentOutfit     string `json:"currentOutfit"`
	ActiveAccessories []int  `json:"activeAccessories"`
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(savedState{
		CurrentOutfit:     s.CurrentOutfit,
		ActiveAccessories: s.Accessories(),
	})
}

func (s *State) UnmarshalJSON(data []byte) error {
	var saved savedState
	if err := json.Unmarshal(data, &saved); err != nil {
		return err
	}
	s.CurrentOutfit = saved.CurrentOutfit
	s.ActiveAccessories = make(map[int]struct{}, len(saved.ActiveAccessories))
	for _, a := range saved.ActiveAccessories {
		s.ActiveAccessories[a] = struct{}{}
	}
	return nil
}

// Store is the slice of gdata.Manager used for saves.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Open returns the platform save store for app.
func Open(app string) (*gdata.Manager, error) {
	return gdata.Open(gdata.Config{AppName: app})
}

// Load reads the saved state under key. A missing item yields Default.
func Load(store Store, key string, outfits []string) (State, error) {
	data, err := store.LoadItem(key)
	if err != nil {
		return Default(), fmt.Errorf("outfit: load %s: %w", key, err)
	}
	if len(data) == 0 {
		return Default(), nil
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("outfit: parse %s: %w", key, err)
	}
	if len(outfits) > 0 && !slices.Contains(outfits, s.CurrentOutfit) {
		return Default(), fmt.Errorf("outfit: %q: %w", s.CurrentOutfit, ErrUnknownOutfit)
	}
	return s, nil
}

func Save(store Store, key string, s State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("outfit: encode: %w", err)
	}
	if err := store.SaveItem(key, data); err != nil {
		return fmt.Errorf("outfit: save %s: %w", key, err)
	}
	return nil
}
