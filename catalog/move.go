package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is the attack button a move is bound to.
type Category int

const (
	Light Category = iota
	Medium
	Heavy
	CategoryCount
)

var categoryNames = [...]string{"light", "medium", "heavy"}

func (c Category) String() string {
	if c < 0 || c >= CategoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory converts a lower-case category name.
func ParseCategory(s string) (Category, error) {
	for i, n := range categoryNames {
		if strings.EqualFold(n, s) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("category %q: %w", s, ErrUnknownCategory)
}

func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseCategory(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Stance is the locomotion context a slot is resolved in.
type Stance int

const (
	Ground Stance = iota
	Prone
	Air
	StanceCount
)

var stanceNames = [...]string{"ground", "prone", "air"}

func (s Stance) String() string {
	if s < 0 || s >= StanceCount {
		return "unknown"
	}
	return stanceNames[s]
}

// ForceKind selects how a move's force schedule is applied.
type ForceKind string

const (
	ForceNone            ForceKind = ""
	ForceImpulse         ForceKind = "impulse"
	ForceVerticalSamples ForceKind = "vertical_samples"
	ForceDisplacement    ForceKind = "displacement"
)

// Keyframe is one authored sample of a displacement curve.
type Keyframe struct {
	Frame float64 `yaml:"frame"`
	Value float64 `yaml:"value"`
}

// ForceSpec describes the force curve a move schedules when it starts.
type ForceSpec struct {
	Kind      ForceKind  `yaml:"kind"`
	Delay     float64    `yaml:"delay"`
	Duration  float64    `yaml:"duration"`
	Samples   []float64  `yaml:"samples"`
	Keyframes []Keyframe `yaml:"keyframes"`

	// Horizontal is an optional dash force applied along the facing with an
	// impulse. Moves without their own force block take it from
	// horizontal_force.
	Horizontal float64 `yaml:"horizontal"`
}

// Followup is an allowed cancel from one move into another.
type Followup struct {
	Move  string `yaml:"move"`
	Ready string `yaml:"ready"`

	ready *Predicate
}

// Predicate returns the compiled readiness check.
func (f *Followup) Predicate() *Predicate { return f.ready }

// Move is an immutable attack definition. Slots and loadouts share moves by
// pointer.
type Move struct {
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Clip     string   `yaml:"clip"`
	Damage   int      `yaml:"damage"`

	LaunchForce      float64 `yaml:"launch_force"`
	DownwardForce    float64 `yaml:"downward_force"`
	HorizontalForce  float64 `yaml:"horizontal_force"` // dash for moves without a displacement curve
	Duration         float64 `yaml:"duration"`
	LaunchForceDelay float64 `yaml:"launch_force_delay"`

	RequiresGrounded bool `yaml:"requires_grounded"`
	RequiresAirborne bool `yaml:"requires_airborne"`
	RequiresProne    bool `yaml:"requires_prone"`

	CanAirAttackAfter bool       `yaml:"can_air_attack_after"` // follow-ups may resolve from the air stance
	Followups         []Followup `yaml:"followups"`

	HasSpecialFall          bool    `yaml:"has_special_fall"`
	HasSpecialLanding       bool    `yaml:"has_special_landing"`
	SpecialFallAnim         string  `yaml:"special_fall_anim"`
	SpecialRecoveryAnim     string  `yaml:"special_recovery_anim"`
	SpecialFallDuration     float64 `yaml:"special_fall_duration"` // abandon the fall after this long; 0 uses the global timeout
	SpecialRecoveryDuration float64 `yaml:"special_recovery_duration"`

	AttackMovementMultiplier   float64 `yaml:"attack_movement_multiplier"`
	RecoveryMovementMultiplier float64 `yaml:"recovery_movement_multiplier"`

	Force ForceSpec `yaml:"force"`

	BlockedStates          []string `yaml:"blocked_states"`
	BlockedParams          []string `yaml:"blocked_params"`
	OncePerJump            bool     `yaml:"once_per_jump"`
	BlockedAfterLedgePunch bool     `yaml:"blocked_after_ledge_punch"`
	LedgeWalkOff           bool     `yaml:"ledge_walk_off"`
	LaunchesPendingJump    bool     `yaml:"launches_pending_jump"`
	ForcePlayAfter         float64  `yaml:"force_play_after"`
}

// Followup returns the follow-up entry for name, if the move allows it.
func (m *Move) Followup(name string) (*Followup, bool) {
	for i := range m.Followups {
		if m.Followups[i].Move == name {
			return &m.Followups[i], true
		}
	}
	return nil, false
}

// Slams reports whether the move drives the player downward.
func (m *Move) Slams() bool { return m.DownwardForce > 0 }
