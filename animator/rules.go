package animator

import (
	"slices"

	"github.com/automoto/beachbomb/config"
)

// Rule picks a target state from the animator's parameters. An empty
// target means the rule does not apply.
type Rule struct {
	Target func(a *Animator) string
	// Sticky states are not left for a lower priority rule until they finish.
	Sticky bool
}

const movingSpeed = 0.01

var proneFamily = []string{
	config.StateProneDown, config.StateProneTo, config.StateProneIdle, config.StateCrawl,
}

func paramRule(name string) Rule {
	return Rule{Target: func(a *Animator) string {
		if a.Param(name) {
			return name
		}
		return ""
	}}
}

// PlayerRules is ordered from highest to lowest priority.
var PlayerRules = []Rule{
	paramRule(config.StateGPRecover),
	paramRule(config.StateGPFall),
	paramRule(config.StateSKRecover),
	paramRule(config.StateSKFall),
	paramRule(config.StateGroundPound),
	paramRule(config.StateUppercut),
	paramRule(config.StateSpinKick),
	paramRule(config.StatePunch),
	{Target: func(a *Animator) string {
		if a.Param(config.ParamShouldSplat) {
			return config.StateSplat
		}
		return ""
	}},
	{Sticky: true, Target: func(a *Animator) string {
		if a.Rose(config.ParamShouldHighLnd) ||
			(a.Param(config.ParamShouldHighLnd) && a.IsCurrentState(config.StateHighLand)) {
			return config.StateHighLand
		}
		return ""
	}},
	{Target: proneTarget},
	{Sticky: true, Target: func(a *Animator) string {
		if slices.Contains(proneFamily, a.State()) || a.IsCurrentState(config.StateProneUp) {
			return config.StateProneUp
		}
		return ""
	}},
	{Target: func(a *Animator) string {
		if a.Param(config.ParamIsJumping) {
			return config.StateJump
		}
		return ""
	}},
	{Target: func(a *Animator) string {
		if a.Param(config.ParamIsFalling) {
			return config.StateFall
		}
		return ""
	}},
	{Target: func(a *Animator) string {
		if a.Float(config.ParamSpeed) > movingSpeed {
			return config.StateIdleToRun
		}
		return ""
	}},
	{Target: func(a *Animator) string { return config.StateIdle }},
}

func proneTarget(a *Animator) string {
	if !a.Param(config.ParamShouldProne) || !a.Param(config.ParamGrounded) {
		return ""
	}
	switch a.State() {
	case config.StateProneDown, config.StateProneTo:
		return a.State()
	case config.StateProneIdle, config.StateCrawl:
		if a.Float(config.ParamSpeed) > movingSpeed {
			return config.StateCrawl
		}
		return config.StateProneIdle
	}
	return config.StateProneDown
}
