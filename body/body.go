// Package body moves the player's collision box through a resolv space. It
// implements the controller's Mover and GroundProbe.
//
// The core works in world units with +Y up and a horizontal plane (x, y).
// The arena is drawn side-on: plane x maps to screen x, height to screen y,
// and plane y to a depth lane clamped to the arena's walkable band.
package body

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Solid is the resolv tag of static collision.
const Solid = "solid"

const (
	edge        = 0.01
	groundReach = 0.5
)

type Body struct {
	Object *resolv.Object

	Depth              float64
	MinDepth, MaxDepth float64

	// Scale converts world units to pixels.
	Scale float64

	grounded bool
	blocked  [2]bool
}

func New(obj *resolv.Object, scale, minDepth, maxDepth float64) *Body {
	b := &Body{
		Object:   obj,
		Scale:    scale,
		MinDepth: minDepth,
		MaxDepth: maxDepth,
		Depth:    (minDepth + maxDepth) / 2,
	}
	b.grounded = b.touchingGround()
	return b
}

// MoveBy applies one tick of core displacement.
func (b *Body) MoveBy(delta mgl64.Vec3) {
	b.moveHorizontal(delta.X() * b.Scale)
	b.moveVertical(-delta.Y() * b.Scale)
	b.Depth = clamp(b.Depth+delta.Z()*b.Scale, b.MinDepth, b.MaxDepth)
	b.Object.Update()
}

func (b *Body) IsGrounded() bool { return b.grounded }

// Blocked reports whether the last move hit a wall (0) or a ceiling (1).
func (b *Body) Blocked() (wall, ceiling bool) { return b.blocked[0], b.blocked[1] }

// Teleport places the box's top-left corner, as when respawning.
func (b *Body) Teleport(x, y float64) {
	b.Object.X, b.Object.Y = x, y
	b.Object.Update()
	b.grounded = b.touchingGround()
}

func (b *Body) moveHorizontal(dx float64) {
	b.blocked[0] = false
	if dx == 0 {
		return
	}
	check := b.Object.Check(dx, 0, Solid)
	if check == nil {
		b.Object.X += dx
		return
	}
	obj := b.Object
	for _, s := range check.ObjectsByTags(Solid) {
		if !overlaps(obj.Y, obj.H, s.Y, s.H) {
			continue
		}
		contact := check.ContactWithObject(s).X()
		// Only faces in the direction of travel block.
		if dx > 0 && contact >= -edge && contact < dx {
			dx = max(contact, 0)
			b.blocked[0] = true
		} else if dx < 0 && contact <= edge && contact > dx {
			dx = min(contact, 0)
			b.blocked[0] = true
		}
	}
	obj.X += dx
}

func (b *Body) moveVertical(dy float64) {
	b.blocked[1] = false
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := b.Object.Check(0, checkDistance, Solid)
	if check == nil {
		b.Object.Y += dy
		b.grounded = false
		return
	}

	obj := b.Object
	landed := false
	for _, s := range check.ObjectsByTags(Solid) {
		if !overlaps(obj.X, obj.W, s.X, s.W) {
			continue
		}
		contact := check.ContactWithObject(s).Y()
		if dy < 0 && contact <= edge && contact > dy {
			dy = min(contact, 0)
			b.blocked[1] = true
		} else if dy >= 0 && contact >= -edge && contact <= dy {
			dy = max(contact, 0)
			landed = true
		}
	}
	obj.Y += dy
	b.grounded = landed || (dy >= 0 && b.touchingGround())
}

func (b *Body) touchingGround() bool {
	check := b.Object.Check(0, 1, Solid)
	if check == nil {
		return false
	}
	obj := b.Object
	for _, s := range check.ObjectsByTags(Solid) {
		if !overlaps(obj.X, obj.W, s.X, s.W) {
			continue
		}
		if gap := s.Y - (obj.Y + obj.H); gap >= -edge && gap <= groundReach {
			return true
		}
	}
	return false
}

// overlaps reports whether two spans share more than an edge.
func overlaps(a, aw, b, bw float64) bool {
	return a < b+bw-edge && b < a+aw-edge
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
