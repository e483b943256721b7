package player

import "github.com/automoto/beachbomb/config"

// ProneAxis runs orthogonally to the jump/fall phase.
type ProneAxis int

const (
	ProneStanding ProneAxis = iota
	ProneEntering
	ProneLying
	ProneExiting
)

func (p ProneAxis) String() string {
	switch p {
	case ProneEntering:
		return "entering"
	case ProneLying:
		return "prone"
	case ProneExiting:
		return "exiting"
	}
	return "standing"
}

func (l *LocomotionDriver) enterProne() {
	if l.Prone == ProneStanding || l.Prone == ProneExiting {
		l.Prone = ProneEntering
		l.proneTimer = 0
	}
}

func (l *LocomotionDriver) exitProne() {
	if l.Prone == ProneLying || l.Prone == ProneEntering {
		l.Prone = ProneExiting
		l.proneTimer = 0
	}
}

func (l *LocomotionDriver) handleProneInput(t *tickContext) {
	if !t.grounded || l.InLandingLock() || l.Phase == LocoPreJump {
		return
	}
	if t.frame.ProneHeld {
		// A re-press aborts a stand-up in progress.
		l.enterProne()
		return
	}
	l.exitProne()
}

// tickProne advances the axis from the probe, falling back to a short
// grace when the animation never reaches the expected state.
func (l *LocomotionDriver) tickProne(t *tickContext) {
	if !t.grounded && l.Prone != ProneStanding {
		l.Prone = ProneStanding
		l.proneTimer = 0
		return
	}
	grace := config.Locomotion.ProneExitGrace

	switch l.Prone {
	case ProneEntering:
		l.proneTimer += t.dt
		settled := inAnyState(l.probe, config.StateProneIdle, config.StateCrawl, config.StateProneTo)
		downDone := l.probe.IsCurrentState(config.StateProneDown) && l.probe.NormalizedProgress() >= 1
		stray := l.proneTimer >= grace && !l.probe.IsCurrentState(config.StateProneDown)
		if settled || downDone || stray {
			l.Prone = ProneLying
			l.proneTimer = 0
		}
	case ProneExiting:
		l.proneTimer += t.dt
		upDone := l.probe.IsCurrentState(config.StateProneUp) &&
			l.probe.NormalizedProgress() >= config.Locomotion.ProneUpDone
		stray := l.proneTimer >= grace && !inAnyState(l.probe, config.ProneStates...)
		if upDone || stray {
			l.Prone = ProneStanding
			l.proneTimer = 0
		}
	}
}
