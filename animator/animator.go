// Package animator is the player's animation state machine. Parameters
// written by the controller select states through a priority rule table;
// non-looping clips chain to their successor when they finish.
package animator

import (
	"log"

	"github.com/automoto/beachbomb/config"
)

// Animator implements player.AnimationStateProbe.
type Animator struct {
	clips   map[string]config.ClipDef
	rules   []Rule
	params  map[string]bool
	prev    map[string]bool
	floats  map[string]float64
	current *clip
	ruleIdx int
	// head is the state last entered by a rule or by Play. States reached by
	// chaining from it still count as that target.
	head string

	// forced is set by Play and holds off the rule table until the forced
	// chain settles on a looping or finished clip.
	forced bool

	// OnComplete is called with the state name whenever a non-looping clip
	// reaches its end.
	OnComplete func(state string)
}

// New builds an animator over a clip table, starting in initial.
func New(clips map[string]config.ClipDef, rules []Rule, initial string) *Animator {
	a := &Animator{
		clips:   clips,
		rules:   rules,
		params:  make(map[string]bool),
		prev:    make(map[string]bool),
		floats:  make(map[string]float64),
		ruleIdx: len(rules),
	}
	a.enter(initial, 0)
	a.head = initial
	return a
}

// NewPlayer builds the player's animator.
func NewPlayer() *Animator {
	return New(config.PlayerClips, PlayerRules, config.StateIdle)
}

func (a *Animator) IsCurrentState(name string) bool {
	return a.current != nil && a.current.name == name
}

func (a *Animator) NormalizedProgress() float64 {
	if a.current == nil {
		return 0
	}
	return a.current.Progress()
}

func (a *Animator) Param(name string) bool { return a.params[name] }

func (a *Animator) SetParam(name string, v bool) { a.params[name] = v }

func (a *Animator) SetFloat(name string, v float64) { a.floats[name] = v }

func (a *Animator) Float(name string) float64 { return a.floats[name] }

// Play jumps straight to a state, bypassing the rules.
func (a *Animator) Play(name string, normalizedStart float64) {
	if _, ok := a.clips[name]; !ok {
		log.Printf("Warning: animator: no clip %q", name)
		return
	}
	a.enter(name, normalizedStart)
	a.head = name
	a.forced = true
	a.ruleIdx = -1
}

// State is the current state name.
func (a *Animator) State() string {
	if a.current == nil {
		return ""
	}
	return a.current.name
}

// Frame is the sprite frame index of the current state.
func (a *Animator) Frame() int {
	if a.current == nil {
		return 0
	}
	return a.current.Frame()
}

// Update applies the rule table and advances playback by dt seconds.
func (a *Animator) Update(dt float64) {
	if !a.forced {
		a.applyRules()
	}
	for k, v := range a.params {
		a.prev[k] = v
	}

	c := a.current
	if c == nil || !c.Update(dt) {
		if c != nil && c.def.Loop {
			a.forced = false
		}
		return
	}
	if a.OnComplete != nil {
		a.OnComplete(c.name)
	}
	if c.def.Next != "" {
		a.enter(c.def.Next, 0)
		if a.current.def.Loop {
			a.forced = false
		}
		return
	}
	a.forced = false
}

// Rose reports whether a parameter went from false to true since the last
// Update.
func (a *Animator) Rose(name string) bool {
	return a.params[name] && !a.prev[name]
}

func (a *Animator) applyRules() {
	for i, r := range a.rules {
		target := r.Target(a)
		if target == "" {
			continue
		}
		if a.satisfies(target) {
			a.ruleIdx = i
			return
		}
		// A sticky state plays out unless a higher priority rule wants in.
		if a.current != nil && !a.current.Done && a.ruleIdx >= 0 &&
			a.ruleIdx < len(a.rules) && a.rules[a.ruleIdx].Sticky && i > a.ruleIdx {
			return
		}
		if _, ok := a.clips[target]; !ok {
			continue
		}
		a.enter(target, 0)
		a.head = target
		a.ruleIdx = i
		return
	}
}

// satisfies reports whether the current state is target, or a state target
// chains into after being entered as target.
func (a *Animator) satisfies(target string) bool {
	if a.current == nil {
		return false
	}
	if a.current.name == target {
		return true
	}
	if a.head != target {
		return false
	}
	seen := 0
	for name := target; name != "" && seen < len(a.clips); seen++ {
		if name == a.current.name {
			return true
		}
		def := a.clips[name]
		if def.Loop {
			break
		}
		name = def.Next
	}
	return false
}

func (a *Animator) enter(name string, start float64) {
	def, ok := a.clips[name]
	if !ok {
		return
	}
	if a.current == nil {
		a.current = newClip(name, def, start)
		return
	}
	a.current.name = name
	a.current.def = def
	a.current.Restart(start)
}
