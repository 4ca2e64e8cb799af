package wezzle

import "testing"

func TestMoveAnimationAccelerates(t *testing.T) {
	tile := &Tile{}
	a := NewMoveAnimation(tile, AxisVertical, 2, 100, 50)

	var steps []int
	for !a.IsFinished() {
		a.Update()
		_, dy := tile.Offset()
		steps = append(steps, dy)
		if len(steps) > 100 {
			t.Fatal("animation never finished")
		}
	}
	// 100, 250, 450, 700, 1000, 1350, 1750, 2000 (clamped)
	want := []int{100, 250, 450, 700, 1000, 1350, 1750, 2000}
	if len(steps) != len(want) {
		t.Fatalf("offsets = %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("offsets = %v, want %v", steps, want)
		}
	}
}

func TestMoveAnimationNegative(t *testing.T) {
	tile := &Tile{}
	a := NewMoveAnimation(tile, AxisHorizontal, -1, 600, 0)
	a.Update()
	a.Update()
	if dx, dy := tile.Offset(); dx != -1000 || dy != 0 {
		t.Errorf("offset = (%d, %d), want (-1000, 0)", dx, dy)
	}
	if !a.IsFinished() {
		t.Error("animation should be finished")
	}
}

func TestZeroMoveIsFinished(t *testing.T) {
	if !NewMoveAnimation(&Tile{}, AxisVertical, 0, 10, 1).IsFinished() {
		t.Error("a zero-cell move should start finished")
	}
}

func TestZoomAnimations(t *testing.T) {
	tile := &Tile{scale: cellUnits}
	in := NewZoomIn(tile, 4)
	if tile.Scale() != 0 {
		t.Fatalf("zoom-in should start at scale 0, got %d", tile.Scale())
	}
	for i := 0; i < 4; i++ {
		in.Update()
	}
	if !in.IsFinished() || tile.Scale() != cellUnits {
		t.Errorf("zoom-in finished=%v scale=%d", in.IsFinished(), tile.Scale())
	}

	out := NewZoomOut(tile, 2)
	out.Update()
	if tile.Scale() != cellUnits/2 {
		t.Errorf("halfway zoom-out scale = %d", tile.Scale())
	}
	out.Update()
	if !out.IsFinished() || tile.Scale() != 0 {
		t.Errorf("zoom-out finished=%v scale=%d", out.IsFinished(), tile.Scale())
	}
}

func TestAnimationManagerDropsFinished(t *testing.T) {
	m := NewAnimationManager()
	short := NewZoomOut(&Tile{}, 1)
	long := NewZoomOut(&Tile{}, 3)
	m.Add(short)
	m.Add(long)
	m.Add(NewMoveAnimation(&Tile{}, AxisVertical, 0, 1, 0))
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (finished animations are skipped)", m.Len())
	}

	m.Update()
	if m.Len() != 1 || !short.IsFinished() {
		t.Errorf("after one tick Len = %d, want 1", m.Len())
	}
	m.Update()
	m.Update()
	if m.Active() {
		t.Error("all animations should be done")
	}
}
