package player

import "github.com/automoto/beachbomb/metrics"

// Authority is the stage allowed to write vertical velocity this tick.
type Authority int

const (
	AuthorityNone Authority = iota
	AuthoritySlip
	AuthorityAttack
	AuthorityLocomotion
)

func (a Authority) String() string {
	switch a {
	case AuthoritySlip:
		return "slip"
	case AuthorityAttack:
		return "attack"
	case AuthorityLocomotion:
		return "locomotion"
	}
	return "none"
}

// verticalChannel holds vertical velocity (up positive). The first stage to
// claim it in a tick owns it until the next tick begins; writes from anyone
// else are dropped.
type verticalChannel struct {
	v       float64
	owner   Authority
	dropped int
}

func (c *verticalChannel) begin() {
	c.owner = AuthorityNone
}

func (c *verticalChannel) claim(a Authority) bool {
	if c.owner == AuthorityNone {
		c.owner = a
	}
	return c.owner == a
}

func (c *verticalChannel) set(a Authority, v float64) bool {
	if !c.claim(a) {
		c.dropped++
		metrics.VerticalWriteDropped()
		diagf("dropped vertical write by %s (owner %s)", a, c.owner)
		return false
	}
	c.v = v
	return true
}
