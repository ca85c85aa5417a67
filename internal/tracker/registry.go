package tracker

import (
	"sync"
	"time"
)

// Registry holds one tracker per session id. Trackers not accessed
// for longer than the idle timeout are dropped on the next access.
type Registry struct {
	backend     Backend
	lookup      Lookuper
	logger      Logger
	idleTimeout time.Duration
	timeNow     func() time.Time

	mutex    sync.Mutex
	trackers map[string]*registryEntry
}

type registryEntry struct {
	tracker    *Tracker
	lastAccess time.Time
}

func NewRegistry(backend Backend, lookup Lookuper, logger Logger,
	idleTimeout time.Duration, timeNow func() time.Time) *Registry {
	return &Registry{
		backend:     backend,
		lookup:      lookup,
		logger:      logger,
		idleTimeout: idleTimeout,
		timeNow:     timeNow,
		trackers:    make(map[string]*registryEntry),
	}
}

// Get returns the tracker for the session id, creating it if needed.
func (r *Registry) Get(sessionID string) *Tracker {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := r.timeNow()
	r.prune(now)

	entry, ok := r.trackers[sessionID]
	if !ok {
		entry = &registryEntry{
			tracker: New(r.backend, r.lookup, r.logger),
		}
		r.trackers[sessionID] = entry
	}
	entry.lastAccess = now
	return entry.tracker
}

// Delete drops the tracker for the session id, if any.
func (r *Registry) Delete(sessionID string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.trackers, sessionID)
}

func (r *Registry) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.trackers)
}

func (r *Registry) prune(now time.Time) {
	if r.idleTimeout <= 0 {
		return
	}
	for sessionID, entry := range r.trackers {
		if now.Sub(entry.lastAccess) > r.idleTimeout {
			delete(r.trackers, sessionID)
		}
	}
}
