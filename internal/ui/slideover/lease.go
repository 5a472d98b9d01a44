package slideover

import "sync"

// ScrollLock suppresses background scrolling while any panel is open. It is
// reference counted: the lock holds until every lease is released, so two
// open panels closing in either order never unlock early.
//
// Leases also order Escape handling. Only the most recently acquired live
// lease owns Escape, so one keypress dismisses only the topmost panel.
type ScrollLock struct {
	mu       sync.Mutex
	stack    []*Lease
	onChange func(locked bool)
}

// NewScrollLock returns an unlocked scroll lock.
func NewScrollLock() *ScrollLock {
	return &ScrollLock{}
}

// OnChange registers fn to be called when the lock engages or releases.
func (s *ScrollLock) OnChange(fn func(locked bool)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Locked reports whether any lease is held.
func (s *ScrollLock) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stack) > 0
}

// Held returns the number of live leases.
func (s *ScrollLock) Held() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stack)
}

// Acquire takes a lease for owner.
func (s *ScrollLock) Acquire(owner string) *Lease {
	s.mu.Lock()
	l := &Lease{lock: s, owner: owner}
	s.stack = append(s.stack, l)
	engaged := len(s.stack) == 1
	fn := s.onChange
	s.mu.Unlock()

	if engaged && fn != nil {
		fn(true)
	}
	return l
}

// Top returns the owner of the most recent live lease, or "".
func (s *ScrollLock) Top() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.stack) == 0 {
		return ""
	}
	return s.stack[len(s.stack)-1].owner
}

func (s *ScrollLock) release(l *Lease) {
	s.mu.Lock()
	idx := -1
	for i, held := range s.stack {
		if held == l {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.stack = append(s.stack[:idx], s.stack[idx+1:]...)
	disengaged := len(s.stack) == 0
	fn := s.onChange
	s.mu.Unlock()

	if disengaged && fn != nil {
		fn(false)
	}
}

// Lease is one panel's hold on the scroll lock.
type Lease struct {
	lock     *ScrollLock
	owner    string
	released bool
}

// Owner returns the id the lease was acquired for.
func (l *Lease) Owner() string { return l.owner }

// Active reports whether the lease is still held.
func (l *Lease) Active() bool {
	return l != nil && !l.released
}

// OwnsEscape reports whether this lease is the topmost live lease.
func (l *Lease) OwnsEscape() bool {
	if !l.Active() {
		return false
	}
	l.lock.mu.Lock()
	defer l.lock.mu.Unlock()
	return len(l.lock.stack) > 0 && l.lock.stack[len(l.lock.stack)-1] == l
}

// Release returns the lease. Calling it more than once is a no-op.
func (l *Lease) Release() {
	if !l.Active() {
		return
	}
	l.released = true
	l.lock.release(l)
}
