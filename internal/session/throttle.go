package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"goparts/internal/metrics"
)

// Throttled coalesces traffic to a backend Store, per session id:
//   - the first Save in a quiet period is written through; further Saves inside the write
//     window only replace a pending value, written once when the window closes
//   - Loads inside the read window are served from the last value seen or written
//   - Delete is immediate, drops any pending write and waits out a write already in flight
//
// Idle entries are dropped when their window closes or by a periodic sweep.
type Throttled struct {
	backend    Store
	writeEvery time.Duration
	readEvery  time.Duration
	sweepEvery time.Duration
	logger     *zap.Logger
	now        func() time.Time

	mu        sync.Mutex
	entries   map[string]*throttleEntry
	deletes   uint64
	lastSweep time.Time
}

type throttleEntry struct {
	// write serializes backend writes for the id; Delete takes it too.
	write   sync.Mutex
	deleted bool

	timer *time.Timer

	pending    string
	hasPending bool

	cached    string
	hasCached bool
	cachedAt  time.Time
}

func NewThrottled(backend Store, writeEvery, readEvery time.Duration, logger *zap.Logger) *Throttled {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Throttled{
		backend:    backend,
		writeEvery: writeEvery,
		readEvery:  readEvery,
		sweepEvery: max(readEvery, writeEvery, time.Second),
		logger:     logger,
		now:        time.Now,
		entries:    map[string]*throttleEntry{},
	}
}

// entry returns the live entry for id, creating it. Callers hold t.mu.
func (t *Throttled) entry(id string) *throttleEntry {
	e, ok := t.entries[id]
	if !ok {
		t.sweep()
		e = &throttleEntry{}
		t.entries[id] = e
	}
	return e
}

func (t *Throttled) fresh(e *throttleEntry, now time.Time) bool {
	return e.hasCached && now.Sub(e.cachedAt) < t.readEvery
}

// sweep drops entries with no open window and a stale read cache. Callers hold t.mu.
func (t *Throttled) sweep() {
	now := t.now()
	if now.Sub(t.lastSweep) < t.sweepEvery {
		return
	}
	t.lastSweep = now
	for id, e := range t.entries {
		if e.timer == nil && !e.hasPending && !t.fresh(e, now) {
			delete(t.entries, id)
		}
	}
}

func (t *Throttled) Load(ctx context.Context, id string) (string, bool, error) {
	t.mu.Lock()
	if e, ok := t.entries[id]; ok {
		if e.hasPending {
			tok := e.pending
			t.mu.Unlock()
			return tok, true, nil
		}
		if t.fresh(e, t.now()) {
			tok := e.cached
			t.mu.Unlock()
			return tok, true, nil
		}
	}
	deletes := t.deletes
	t.mu.Unlock()

	metrics.SessionStoreOps.WithLabelValues("load").Inc()
	tok, found, err := t.backend.Load(ctx, id)
	if err != nil {
		return "", false, err
	}
	if found {
		t.mu.Lock()
		// a Delete that raced the read must not leave its token cached
		if t.deletes == deletes {
			e := t.entry(id)
			if !e.hasPending {
				e.cached, e.hasCached, e.cachedAt = tok, true, t.now()
			}
		}
		t.mu.Unlock()
	}
	return tok, found, nil
}

func (t *Throttled) Save(ctx context.Context, id, token string) error {
	t.mu.Lock()
	e := t.entry(id)
	e.cached, e.hasCached, e.cachedAt = token, true, t.now()
	if e.timer != nil {
		e.pending, e.hasPending = token, true
		t.mu.Unlock()
		return nil
	}
	e.timer = time.AfterFunc(t.writeEvery, func() { t.windowClosed(id, e) })
	t.mu.Unlock()

	if err := t.write(ctx, id, e, token); err != nil {
		t.mu.Lock()
		if !e.hasPending {
			if e.timer != nil {
				e.timer.Stop()
				e.timer = nil
			}
			if e.cached == token {
				e.cached, e.hasCached = "", false
			}
		}
		t.mu.Unlock()
		return err
	}
	return nil
}

// write saves token unless the entry was deleted before the write lock was taken.
func (t *Throttled) write(ctx context.Context, id string, e *throttleEntry, token string) error {
	e.write.Lock()
	defer e.write.Unlock()

	t.mu.Lock()
	deleted := e.deleted
	t.mu.Unlock()
	if deleted {
		return nil
	}

	metrics.SessionStoreOps.WithLabelValues("save").Inc()
	return t.backend.Save(ctx, id, token)
}

// windowClosed writes the pending value, if any, and opens a new window for it.
// An entry with nothing pending and a stale read cache is dropped.
func (t *Throttled) windowClosed(id string, e *throttleEntry) {
	t.mu.Lock()
	if e.deleted {
		t.mu.Unlock()
		return
	}
	if !e.hasPending {
		e.timer = nil
		if !t.fresh(e, t.now()) && t.entries[id] == e {
			delete(t.entries, id)
		}
		t.mu.Unlock()
		return
	}
	tok := e.pending
	e.pending, e.hasPending = "", false
	e.timer = time.AfterFunc(t.writeEvery, func() { t.windowClosed(id, e) })
	t.mu.Unlock()

	if err := t.write(context.Background(), id, e, tok); err != nil {
		t.logger.Warn("deferred session write failed", zap.String("session_id", id), zap.Error(err))
	}
}

func (t *Throttled) Delete(ctx context.Context, id string) error {
	t.mu.Lock()
	e, ok := t.entries[id]
	if ok {
		if e.timer != nil {
			e.timer.Stop()
			e.timer = nil
		}
		e.pending, e.hasPending = "", false
		e.deleted = true
		delete(t.entries, id)
	}
	t.deletes++
	t.mu.Unlock()

	if ok {
		e.write.Lock()
		defer e.write.Unlock()
	}
	metrics.SessionStoreOps.WithLabelValues("delete").Inc()
	return t.backend.Delete(ctx, id)
}

// Flush writes every pending value now and closes all write windows.
func (t *Throttled) Flush(ctx context.Context) error {
	type pendingWrite struct {
		id, token string
		e         *throttleEntry
	}

	t.mu.Lock()
	writes := make([]pendingWrite, 0)
	for id, e := range t.entries {
		if e.timer != nil {
			e.timer.Stop()
			e.timer = nil
		}
		if e.hasPending {
			writes = append(writes, pendingWrite{id, e.pending, e})
			e.pending, e.hasPending = "", false
		}
	}
	t.mu.Unlock()

	var errs []error
	for _, w := range writes {
		if err := t.write(ctx, w.id, w.e, w.token); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close flushes pending writes.
func (t *Throttled) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return t.Flush(ctx)
}
