package mapping

import (
	"errors"
	"slices"
	"testing"
)

func TestDriveMultiplePasses(t *testing.T) {
	r := newRecorder(NewFlags(NeedsMultiplePasses))
	r.ends = []bool{false, false, true}

	if err := testTree().Accept(NewChecker(r)); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}

	var want []string
	for i := 0; i < 3; i++ {
		want = append(want, fullPass...)
	}
	if !slices.Equal(r.calls, want) {
		t.Errorf("got %d calls, want %d identical passes", len(r.calls), 3)
	}
}

func TestDriveRejectsRestartWithoutFlag(t *testing.T) {
	r := newRecorder(NoFlags)
	r.ends = []bool{false, true}

	err := testTree().Accept(r)
	if !errors.Is(err, ErrUnexpectedRestart) {
		t.Fatalf("Accept() error = %v, want ErrUnexpectedRestart", err)
	}

	ends := 0
	for _, call := range r.calls {
		if call == "end" {
			ends++
		}
	}
	if ends != 1 {
		t.Errorf("visitor saw %d passes, want 1", ends)
	}
}

func TestDriveGivesUp(t *testing.T) {
	passes := 0
	err := Drive(newRecorder(NewFlags(NeedsMultiplePasses)), func(v Visitor) (bool, error) {
		passes++
		return false, nil
	})
	if !errors.Is(err, ErrTooManyPasses) {
		t.Fatalf("Drive() error = %v, want ErrTooManyPasses", err)
	}
	if passes != MaxPasses {
		t.Errorf("passes = %d, want %d", passes, MaxPasses)
	}
}

func TestDriveWrapsPassErrors(t *testing.T) {
	errBoom := errors.New("boom")
	err := Drive(newRecorder(NoFlags), func(v Visitor) (bool, error) {
		return false, errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("Drive() error = %v, want %v", err, errBoom)
	}
	if err.Error() != "pass 1: boom" {
		t.Errorf("Drive() error = %q", err)
	}
}
