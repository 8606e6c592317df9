package usecase

import (
	"sync"

	"marketlens/internal/feature/market/domain"
)

// snapshotStore keeps the most recent published snapshot under a
// latest-wins discipline: every refresh takes a generation before fetching,
// and a finished refresh publishes only while its generation is still the
// newest one handed out. A stale response arriving after a newer refresh
// began is discarded instead of overwriting fresher state.
type snapshotStore struct {
	mu      sync.Mutex
	nextGen uint64
	snap    *domain.Snapshot
}

// begin reserves a generation for a refresh that is about to start.
func (s *snapshotStore) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextGen++
	return s.nextGen
}

// publish installs snap if gen is still the newest reserved generation.
// It reports whether the snapshot was installed.
func (s *snapshotStore) publish(gen uint64, snap *domain.Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.nextGen {
		return false
	}
	s.snap = snap
	return true
}

// latest returns the current snapshot, if any refresh has published one.
func (s *snapshotStore) latest() (*domain.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, s.snap != nil
}
