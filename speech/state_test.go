package speech

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Idle, "idle"},
		{Speaking, "speaking"},
		{Paused, "paused"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestStateActive(t *testing.T) {
	if Idle.Active() {
		t.Error("Idle.Active() = true")
	}
	if !Speaking.Active() {
		t.Error("Speaking.Active() = false")
	}
	if !Paused.Active() {
		t.Error("Paused.Active() = false")
	}
}
