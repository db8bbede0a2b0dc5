package cardtilt

import "testing"

func TestSchedulerFiresAfterDelay(t *testing.T) {
	var s taskScheduler
	fired := false
	s.after(1.0, func() { fired = true })

	s.advance(0.5)
	if fired {
		t.Fatal("task fired early")
	}
	s.advance(0.5)
	if !fired {
		t.Fatal("task did not fire at its deadline")
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s taskScheduler
	fired := false
	h := s.after(1.0, func() { fired = true })

	if !s.pending(h) {
		t.Fatal("handle should be pending")
	}
	s.cancel(h)
	if s.pending(h) {
		t.Fatal("handle still pending after cancel")
	}

	s.advance(2.0)
	if fired {
		t.Error("cancelled task fired")
	}
}

func TestSchedulerZeroHandleSafe(t *testing.T) {
	var s taskScheduler
	s.cancel(0) // no-op, no panic
	if s.pending(0) {
		t.Error("zero handle reported pending")
	}
}

func TestSchedulerTaskRemovedBeforeRun(t *testing.T) {
	var s taskScheduler
	var h taskHandle
	h = s.after(1.0, func() {
		// The running task is already dequeued.
		if s.pending(h) {
			t.Error("task pending while running")
		}
	})
	s.advance(1.0)
}

func TestSchedulerTaskMayReschedule(t *testing.T) {
	var s taskScheduler
	count := 0
	var rearm func()
	rearm = func() {
		count++
		if count < 3 {
			s.after(1.0, rearm)
		}
	}
	s.after(1.0, rearm)

	s.advance(1.0)
	s.advance(1.0)
	s.advance(1.0)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestSchedulerRunsAllDueTasks(t *testing.T) {
	var s taskScheduler
	ran := 0
	s.after(0.2, func() { ran++ })
	s.after(0.4, func() { ran++ })
	s.after(5.0, func() { ran++ })

	s.advance(1.0)
	if ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}
}
