package player

import (
	"github.com/automoto/beachbomb/config"
)

// capState picks the speed cap row for the current attack phase or fall.
func (l *LocomotionDriver) capState() config.SpeedCapState {
	a := l.attack
	if m := a.Current; m != nil {
		switch a.Phase {
		case PhaseSpecialRecovery:
			switch m.SpecialRecoveryAnim {
			case config.StateGPRecover:
				return config.CapGroundPoundRecover
			case config.StateSKRecover:
				return config.CapSpinKickRecover
			}
		case PhaseSpecialFall:
			switch m.SpecialFallAnim {
			case config.StateSKFall:
				return config.CapSpinKickFall
			case config.StateGPFall:
				return config.CapGroundPoundFall
			}
		case PhaseActive:
			switch m.Name {
			case config.StateSpinKick:
				return config.CapSpinKick
			case config.StateUppercut:
				return config.CapUppercut
			}
		}
	}
	if !l.ctx.grounded && l.Phase == LocoFalling {
		if l.FallTimer >= config.Locomotion.HighLandThreshold {
			return config.CapHighFall
		}
		return config.CapFall
	}
	return config.CapNone
}

// speedCap returns the active cap. The prone row only tightens another
// active cap.
func (l *LocomotionDriver) speedCap() (float64, bool) {
	s := l.capState()
	if s == config.CapNone {
		return 0, false
	}
	limit := config.Locomotion.SpeedCaps[s]
	if l.ctx.grounded && l.ctx.frame.ProneHeld {
		if p := config.Locomotion.SpeedCaps[config.CapProne]; p < limit {
			limit = p
		}
	}
	return limit, true
}

func (l *LocomotionDriver) speedMultiplier() float64 {
	a := l.attack
	mult := 1.0
	if m := a.Current; m != nil {
		switch a.Phase {
		case PhaseSpecialRecovery:
			if m.SpecialRecoveryAnim != config.StateGPRecover {
				mult = m.RecoveryMovementMultiplier
			}
		case PhaseActive:
			mult = m.AttackMovementMultiplier
		case PhaseSpecialFall:
			if m.SpecialFallAnim != config.StateSKFall {
				mult = config.Locomotion.SpecialFallFactor
			}
		}
	}
	if l.ctx.grounded && l.ctx.frame.ProneHeld {
		mult *= config.Locomotion.ProneMultiplier
	}
	return mult
}
