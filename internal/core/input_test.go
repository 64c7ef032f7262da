package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionPause) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionPause)
	f.Set(ActionLeft)
	if !f.Has(ActionPause) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRestart) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionPause) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFramePointerLastWriteWins(t *testing.T) {
	f := NewInputFrame()
	f.Point(10)
	f.Point(42)

	if !f.HasPointer || f.PointerX != 42 {
		t.Errorf("Pointer = (%d, %v), expected (42, true)", f.PointerX, f.HasPointer)
	}

	f.Clear()
	if f.HasPointer {
		t.Error("Clear should reset the pointer")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionScoreboard, "Scoreboard"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventHit, Level: 1}, {Kind: EventLevelUp, Level: 2}}}
	if !r.Has(EventLevelUp) {
		t.Error("Has(EventLevelUp) should be true")
	}
	if r.Has(EventGameOver) {
		t.Error("Has(EventGameOver) should be false")
	}
}
