package body

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

func arena(t *testing.T) (*resolv.Space, *Body) {
	t.Helper()
	space := resolv.NewSpace(640, 360, 16, 16)
	floor := resolv.NewObject(0, 320, 640, 16, Solid)
	wall := resolv.NewObject(400, 160, 16, 160, Solid)
	roof := resolv.NewObject(0, 0, 640, 16, Solid)
	space.Add(floor, wall, roof)

	obj := resolv.NewObject(100, 200, 16, 32)
	space.Add(obj)
	return space, New(obj, 16, 0, 64)
}

func TestFallsOntoFloor(t *testing.T) {
	_, b := arena(t)
	if b.IsGrounded() {
		t.Fatal("grounded in mid air")
	}
	for i := 0; i < 40 && !b.IsGrounded(); i++ {
		b.MoveBy(mgl64.Vec3{0, -0.5, 0})
	}
	if !b.IsGrounded() {
		t.Fatal("never landed")
	}
	if bottom := b.Object.Y + b.Object.H; bottom != 320 {
		t.Errorf("bottom = %v, want 320", bottom)
	}

	// Ground stick keeps contact without sinking.
	b.MoveBy(mgl64.Vec3{0, -2.0 / 60, 0})
	if !b.IsGrounded() || b.Object.Y+b.Object.H != 320 {
		t.Errorf("ground stick moved the body to %v", b.Object.Y)
	}
}

func TestWallStopsHorizontal(t *testing.T) {
	_, b := arena(t)
	b.Teleport(370, 288)
	b.MoveBy(mgl64.Vec3{1, 0, 0})
	if right := b.Object.X + b.Object.W; right != 400 {
		t.Errorf("right edge = %v, want flush with the wall", right)
	}
	if wall, _ := b.Blocked(); !wall {
		t.Error("wall contact not reported")
	}
	b.MoveBy(mgl64.Vec3{-1, 0, 0})
	if b.Object.X != 368 {
		t.Errorf("moving away from the wall: x = %v", b.Object.X)
	}
}

func TestCeilingStopsRise(t *testing.T) {
	_, b := arena(t)
	b.Teleport(100, 30)
	b.MoveBy(mgl64.Vec3{0, 2, 0})
	if b.Object.Y != 16 {
		t.Errorf("top = %v, want 16", b.Object.Y)
	}
	if _, ceiling := b.Blocked(); !ceiling {
		t.Error("ceiling contact not reported")
	}
}

func TestDepthClampsToLane(t *testing.T) {
	_, b := arena(t)
	b.MoveBy(mgl64.Vec3{0, 0, 10})
	if b.Depth != 64 {
		t.Errorf("depth = %v", b.Depth)
	}
	b.MoveBy(mgl64.Vec3{0, 0, -100})
	if b.Depth != 0 {
		t.Errorf("depth = %v", b.Depth)
	}
}

func TestWalksOffLedge(t *testing.T) {
	space := resolv.NewSpace(640, 360, 16, 16)
	space.Add(resolv.NewObject(0, 320, 128, 16, Solid))
	obj := resolv.NewObject(100, 288, 16, 32)
	space.Add(obj)
	b := New(obj, 16, 0, 0)
	if !b.IsGrounded() {
		t.Fatal("not grounded on the ledge")
	}
	b.MoveBy(mgl64.Vec3{2, 0, 0})
	b.MoveBy(mgl64.Vec3{0, -0.01, 0})
	if b.IsGrounded() {
		t.Error("still grounded past the ledge")
	}
}
