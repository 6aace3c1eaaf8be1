package builder

import "testing"

func TestStateMachine(t *testing.T) {
	t.Parallel()

	machine := newStateMachine(stages...)
	if machine.curr() != stateKindActors {
		t.Fatalf("expected actors step first, got %d", machine.curr())
	}

	if machine.prev() {
		t.Errorf("prev on the first step must not move")
	}

	for _, expected := range stages[1:] {
		if !machine.next() {
			t.Fatalf("next refused before the last step")
		}

		if machine.curr() != expected {
			t.Fatalf("expected %d, got %d", expected, machine.curr())
		}
	}

	if machine.next() {
		t.Errorf("next on the last step must not move")
	}

	if !machine.isMax() {
		t.Errorf("expected the last step")
	}

	if !machine.seek(stateKindDuration) || machine.curr() != stateKindDuration {
		t.Errorf("seek to duration failed")
	}

	if !machine.prev() || !machine.isMin() {
		t.Errorf("expected to return to the first step")
	}
}
