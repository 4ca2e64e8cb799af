package wezzle

import "testing"

// movesByAxis counts running move animations in the manager.
func movesByAxis(m *AnimationManager) (vertical, horizontal int) {
	for _, a := range m.active {
		if mv, ok := a.(*MoveAnimation); ok {
			if mv.Axis() == AxisVertical {
				vertical++
			} else {
				horizontal++
			}
		}
	}
	return vertical, horizontal
}

func TestRefactorTwoPhaseOrdering(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1,
		"R...",
		"....",
		"..G.",
	)
	s := &fakeSession{}
	hub.Refactorer.StartRefactor()

	sawVertical, sawHorizontal := false, false
	for i := 0; i < 1000 && hub.Refactorer.IsRefactoring(); i++ {
		tick(s, hub)
		v, h := movesByAxis(hub.Animations)
		if v > 0 && h > 0 {
			t.Fatalf("tick %d: %d vertical and %d horizontal moves running together", i, v, h)
		}
		sawVertical = sawVertical || v > 0
		sawHorizontal = sawHorizontal || h > 0
	}

	if !sawVertical || !sawHorizontal {
		t.Errorf("expected both phases to animate, vertical=%v horizontal=%v", sawVertical, sawHorizontal)
	}
	if got, want := hub.Board.String(), dump("....", "....", "RG.."); got != want {
		t.Errorf("board after refactor\n%s\nwant\n%s", got, want)
	}
}

func TestRefactorFinishedIsEdgeTriggered(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1,
		"B..",
		"...",
		"...",
	)
	s := &fakeSession{}

	for i := 0; i < 5; i++ {
		tick(s, hub)
		if hub.Refactorer.IsFinished() {
			t.Fatal("IsFinished must be false before any refactor")
		}
	}

	hub.Refactorer.StartRefactor()
	finished := 0
	for i := 0; i < 500; i++ {
		tick(s, hub)
		if hub.Refactorer.IsFinished() {
			finished++
			if hub.Refactorer.IsRefactoring() {
				t.Error("refactorer should be idle on the finishing tick")
			}
		}
	}
	if finished != 1 {
		t.Errorf("IsFinished was true on %d ticks, want exactly 1", finished)
	}
}

func TestRefactorStatesInOrder(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1, "...", "R..")
	s := &fakeSession{}
	r := hub.Refactorer

	if r.State() != RefactorIdle {
		t.Fatalf("initial state = %v", r.State())
	}
	r.StartRefactor()
	r.StartRefactor()
	if r.State() != RefactorPending {
		t.Fatalf("after StartRefactor state = %v, want pending", r.State())
	}

	want := []RefactorState{RefactorVertical, RefactorHorizontal, RefactorIdle}
	for _, w := range want {
		tick(s, hub)
		if r.State() != w {
			t.Fatalf("state = %v, want %v", r.State(), w)
		}
	}
	if !r.IsFinished() {
		t.Error("a no-op refactor should still report completion")
	}
}

func TestStartRefactorDuringCycleQueuesRerun(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1,
		"R..",
		"...",
		"...",
	)
	s := &fakeSession{}
	r := hub.Refactorer

	r.StartRefactor()
	tick(s, hub)
	if r.State() != RefactorVertical {
		t.Fatalf("state = %v, want vertical", r.State())
	}
	r.StartRefactor()

	verticalStarts, finished, finishedWithRerun := 0, 0, 0
	prev := r.State()
	for i := 0; i < 1000; i++ {
		tick(s, hub)
		if r.State() == RefactorVertical && prev != RefactorVertical {
			verticalStarts++
		}
		if r.IsFinished() {
			finished++
			if r.IsRefactoring() {
				finishedWithRerun++
			}
		}
		prev = r.State()
	}
	if verticalStarts != 1 {
		t.Errorf("queued request should run one more cycle, saw %d", verticalStarts)
	}
	if finished != 2 {
		t.Errorf("completion reported %d times, want once per cycle", finished)
	}
	if finishedWithRerun != 1 {
		t.Errorf("first completion should see the rerun pending, saw %d", finishedWithRerun)
	}
	if r.IsRefactoring() {
		t.Errorf("state = %v after both cycles, want idle", r.State())
	}
}

func TestRefactorSpeedAppliesToNextCycle(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1,
		"R.",
		"..",
		"..",
	)
	s := &fakeSession{}
	r := hub.Refactorer

	fast := RefactorSpeed{Horizontal: 5000, Vertical: 5000, Gravity: 0, Acceleration: 0}
	r.StartRefactor()
	tick(s, hub) // vertical shift built with the old speed
	r.SetRefactorSpeed(fast)
	if r.RefactorSpeed() != fast {
		t.Error("RefactorSpeed should report the new profile")
	}

	mv := r.anims[0].(*MoveAnimation)
	if mv.velocity == fast.Vertical {
		t.Error("running shift must keep the speed it was built with")
	}

	for r.IsRefactoring() {
		tick(s, hub)
	}
	hub.Board.RemoveTile(hub.Board.Index(0, 2))
	hub.Board.CreateTile(0, TileNormal, ColorRed)
	r.StartRefactor()
	tick(s, hub)
	mv = r.anims[0].(*MoveAnimation)
	if mv.velocity != fast.Vertical {
		t.Errorf("next shift velocity = %d, want %d", mv.velocity, fast.Vertical)
	}
}

func TestRefactorNotifiesPieces(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1,
		"R..",
		"...",
		"...",
	)
	s := &fakeSession{}
	hub.Pieces.piece = newPiece(ShapeDot)
	hub.Pieces.MoveTo(0, 2, hub.Board)
	if len(hub.Pieces.Hover()) != 0 {
		t.Fatal("cursor cell should start empty")
	}

	hub.Refactorer.StartRefactor()
	for i := 0; i < 500 && !hub.Refactorer.IsFinished(); i++ {
		tick(s, hub)
	}
	if got := hub.Pieces.Hover(); len(got) != 1 || got[0] != hub.Board.Index(0, 2) {
		t.Errorf("hover after refactor = %v, want the fallen tile", got)
	}
}

func TestRefactorerPanicsOnNil(t *testing.T) {
	hub := newTestHub(t, testConfig(), 1, "...")
	defer func() {
		if recover() == nil {
			t.Error("UpdateLogic with a nil session should panic")
		}
	}()
	hub.Refactorer.UpdateLogic(nil, hub)
}

func TestRefactorerResetState(t *testing.T) {
	r := NewRefactorer(RefactorSpeed{Vertical: 1})
	r.StartRefactor()
	r.ResetState(RefactorSpeed{Vertical: 2})
	if r.IsRefactoring() || r.IsFinished() || r.RefactorSpeed().Vertical != 2 {
		t.Errorf("ResetState left %+v", r)
	}
}
