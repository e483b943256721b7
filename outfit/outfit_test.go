package outfit

import (
	"errors"
	"slices"
	"testing"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

var outfits = []string{"PJs", "Swimsuit", "Wetsuit"}

func TestLoadMissingIsDefault(t *testing.T) {
	s, err := Load(memStore{}, "outfit", outfits)
	if err != nil {
		t.Fatal(err)
	}
	if s.CurrentOutfit != DefaultOutfit || len(s.ActiveAccessories) != 0 {
		t.Errorf("state = %+v", s)
	}
}

func TestSaveLoadKeepsAccessorySet(t *testing.T) {
	store := memStore{}
	s := Default()
	s.Next(outfits)
	s.Toggle(3)
	s.Toggle(1)
	s.Toggle(3)
	s.Toggle(7)

	if err := Save(store, "outfit", s); err != nil {
		t.Fatal(err)
	}
	if got := string(store["outfit"]); got != `{"currentOutfit":"Swimsuit","activeAccessories":[1,7]}` {
		t.Errorf("saved %s", got)
	}

	back, err := Load(store, "outfit", outfits)
	if err != nil {
		t.Fatal(err)
	}
	if back.CurrentOutfit != "Swimsuit" || !slices.Equal(back.Accessories(), []int{1, 7}) {
		t.Errorf("loaded %+v", back)
	}
}

func TestLoadRejectsUnknownOutfit(t *testing.T) {
	store := memStore{"outfit": []byte(`{"currentOutfit":"Armor"}`)}
	s, err := Load(store, "outfit", outfits)
	if !errors.Is(err, ErrUnknownOutfit) {
		t.Errorf("err = %v", err)
	}
	if s.CurrentOutfit != DefaultOutfit {
		t.Errorf("fallback = %+v", s)
	}
}

func TestNextWraps(t *testing.T) {
	s := State{CurrentOutfit: "Wetsuit"}
	s.Next(outfits)
	if s.CurrentOutfit != "PJs" {
		t.Errorf("after Wetsuit: %s", s.CurrentOutfit)
	}
}
