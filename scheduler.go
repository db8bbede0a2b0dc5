package cardtilt

// taskScheduler is a frame-driven delayed-task queue. The controller owns one
// and advances it from Update; tasks run on the same goroutine as everything
// else, so a task never races the state it touches. Handles make cancellation
// explicit — the auto-return timer in particular must be cancellable the
// instant any new interaction begins.
type taskScheduler struct {
	now    float64
	tasks  []scheduledTask
	nextID uint64
}

type scheduledTask struct {
	id  uint64
	due float64
	fn  func()
}

// taskHandle identifies a pending task. The zero handle is "no task" and is
// always safe to cancel.
type taskHandle uint64

// after schedules fn to run once delay seconds of scheduler time have
// elapsed. A delay of zero fires on the next advance.
func (s *taskScheduler) after(delay float64, fn func()) taskHandle {
	s.nextID++
	s.tasks = append(s.tasks, scheduledTask{
		id:  s.nextID,
		due: s.now + delay,
		fn:  fn,
	})
	return taskHandle(s.nextID)
}

// cancel removes a pending task. Cancelling a finished, unknown, or zero
// handle is a no-op.
func (s *taskScheduler) cancel(h taskHandle) {
	if h == 0 {
		return
	}
	for i := range s.tasks {
		if s.tasks[i].id == uint64(h) {
			copy(s.tasks[i:], s.tasks[i+1:])
			s.tasks[len(s.tasks)-1] = scheduledTask{}
			s.tasks = s.tasks[:len(s.tasks)-1]
			return
		}
	}
}

// pending reports whether the handle still refers to a queued task.
func (s *taskScheduler) pending(h taskHandle) bool {
	if h == 0 {
		return false
	}
	for i := range s.tasks {
		if s.tasks[i].id == uint64(h) {
			return true
		}
	}
	return false
}

// advance moves scheduler time forward by dt seconds and runs every task
// that has come due. A task is removed from the queue before it runs, so a
// task rescheduling itself (or cancelling others) sees a consistent queue.
func (s *taskScheduler) advance(dt float64) {
	s.now += dt
	for {
		idx := -1
		for i := range s.tasks {
			if s.tasks[i].due <= s.now {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}
		task := s.tasks[idx]
		copy(s.tasks[idx:], s.tasks[idx+1:])
		s.tasks[len(s.tasks)-1] = scheduledTask{}
		s.tasks = s.tasks[:len(s.tasks)-1]
		task.fn()
	}
}
