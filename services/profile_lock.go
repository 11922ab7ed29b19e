package services

import "sync"

// profileLocks serialises interactions per profile. Entries are dropped once
// no request holds or waits on them, so the map stays bounded by in-flight
// profiles.
type profileLocks struct {
	mu    sync.Mutex
	locks map[string]*profileLock
}

type profileLock struct {
	mu   sync.Mutex
	refs int
}

func newProfileLocks() *profileLocks {
	return &profileLocks{locks: make(map[string]*profileLock)}
}

// lock blocks until profileID is free and returns its unlock function.
func (p *profileLocks) lock(profileID string) func() {
	p.mu.Lock()
	l, ok := p.locks[profileID]
	if !ok {
		l = &profileLock{}
		p.locks[profileID] = l
	}
	l.refs++
	p.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, profileID)
		}
		p.mu.Unlock()
	}
}

func (p *profileLocks) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.locks)
}
