package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfileLocks_SerialisesSameProfile(t *testing.T) {
	locks := newProfileLocks()
	unlock := locks.lock("a")

	acquired := make(chan struct{})
	go func() {
		release := locks.lock("a")
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock on the same profile acquired while held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock not released")
	}
}

func TestProfileLocks_IndependentProfiles(t *testing.T) {
	locks := newProfileLocks()
	unlockA := locks.lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		locks.lock("b")()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("profile b blocked by profile a")
	}
}

func TestProfileLocks_EntriesDropped(t *testing.T) {
	locks := newProfileLocks()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.lock("a")()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, locks.size())
}
