package quarkgl

import (
	"math"
	"testing"
)

func TestNodeChildFollowsParentRotation(t *testing.T) {
	pivot := NewNode(nil)
	body := NewNode(pivot)
	body.Position = V3(16, 0, 0)

	p := body.WorldPosition()
	if !near(p.X, 16) || !near(p.Z, 0) {
		t.Fatalf("unrotated body at %+v", p)
	}

	pivot.RotationY = math.Pi / 2
	p = body.WorldPosition()
	if !near(p.X, 0) || !near(p.Z, -16) {
		t.Fatalf("quarter-turn body at %+v", p)
	}
}

func TestNodeSpinDoesNotMoveOrigin(t *testing.T) {
	pivot := NewNode(nil)
	body := NewNode(pivot)
	body.Position = V3(8, 0, 0)
	body.RotationY = 1.3

	p := body.WorldPosition()
	if !near(p.X, 8) || !near(p.Y, 0) || !near(p.Z, 0) {
		t.Fatalf("spinning body moved to %+v", p)
	}
}

func TestNodeZeroScaleIsUnit(t *testing.T) {
	n := &Node{}
	if n.Local() != Mat4Identity() {
		t.Fatalf("zero node not identity")
	}
}
