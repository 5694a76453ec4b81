package game_object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGameObjectBox(t *testing.T) {
	g := NewGameObject(WithPosition(0, 1, 0), WithSize(2, 2, 2))
	bb := g.BBox()
	if bb.Min() != (mgl32.Vec3{-1, 0, -1}) || bb.Max() != (mgl32.Vec3{1, 2, 1}) {
		t.Fatalf("unexpected box %v..%v", bb.Min(), bb.Max())
	}

	g.SetPosition(mgl32.Vec3{0, 5, 0})
	if g.BBox().Min().Y() != 4 {
		t.Fatalf("box did not follow position")
	}
}

func TestGameObjectIDsUnique(t *testing.T) {
	a, b := NewGameObject(), NewGameObject()
	if a.ID() == b.ID() {
		t.Fatalf("expected unique IDs, both %d", a.ID())
	}
	if !a.Enabled() {
		t.Fatalf("expected enabled by default")
	}
	if NewGameObject(WithEnabled(false)).Enabled() {
		t.Fatalf("WithEnabled(false) ignored")
	}
}
