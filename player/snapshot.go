package player

// Snapshot is a read-only view of a controller for overlays and the debug
// endpoint.
type Snapshot struct {
	Attack        string  `json:"attack,omitempty"`
	AttackPhase   string  `json:"attack_phase"`
	Cooldown      float64 `json:"cooldown"`
	Locomotion    string  `json:"locomotion"`
	Prone         string  `json:"prone"`
	Grounded      bool    `json:"grounded"`
	Vertical      float64 `json:"vertical_velocity"`
	Speed         float64 `json:"horizontal_speed"`
	FallTimer     float64 `json:"fall_timer"`
	LastLanding   string  `json:"last_landing"`
	Slip          string  `json:"slip"`
	Authority     string  `json:"authority"`
	Dropped       int     `json:"dropped_vertical_writes"`
	LastRejection string  `json:"last_rejection"`
	Loadout       int     `json:"loadout"`
}

func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		AttackPhase:   c.attack.Phase.String(),
		Cooldown:      c.attack.Cooldown,
		Locomotion:    c.loco.Phase.String(),
		Prone:         c.loco.Prone.String(),
		Grounded:      c.loco.Grounded,
		Vertical:      c.vertical.v,
		Speed:         c.loco.HorizontalSpeed,
		FallTimer:     c.loco.FallTimer,
		LastLanding:   c.loco.LastLanding.String(),
		Slip:          c.slip.State(),
		Authority:     c.vertical.owner.String(),
		Dropped:       c.vertical.dropped,
		LastRejection: c.attack.LastRejection().String(),
		Loadout:       c.slots.Current(),
	}
	if m := c.attack.Current; m != nil {
		s.Attack = m.Name
	}
	return s
}
