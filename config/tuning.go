package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the overridable globals. Keys omitted from the file keep
// their current values.
type tuningFile struct {
	Attack     *AttackConfig     `yaml:"attack"`
	Locomotion *LocomotionConfig `yaml:"locomotion"`
	Slip       *SlipConfig       `yaml:"slip"`
	Pause      *PauseConfig      `yaml:"pause"`
	Force      *ForceConfig      `yaml:"force"`
	Debug      *DebugConfig      `yaml:"debug"`
}

// ApplyTuning overlays YAML tuning data onto the global configuration.
func ApplyTuning(data []byte) error {
	f := tuningFile{
		Attack:     &Attack,
		Locomotion: &Locomotion,
		Slip:       &Slip,
		Pause:      &Pause,
		Force:      &Force,
		Debug:      &Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if Attack.Cooldown < 0 {
		return fmt.Errorf("config: attack cooldown %v: %w", Attack.Cooldown, ErrInvalidTuning)
	}
	if Locomotion.SplatThreshold < Locomotion.HighLandThreshold {
		return fmt.Errorf("config: splat threshold below high land threshold: %w", ErrInvalidTuning)
	}
	return nil
}

// LoadTuning reads a YAML tuning file from disk and applies it.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return ApplyTuning(data)
}
