package query

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

type Status int

const (
	StatusIdle Status = iota
	StatusFetching
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusFetching:
		return "fetching"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Snapshot is the state of one key at a point in time. Data is the last
// successful value and survives later errors and refetches.
type Snapshot struct {
	Status    Status
	Data      any
	HasData   bool
	Err       error
	Stale     bool
	UpdatedAt time.Time
}

// Fetcher loads the value of one key. It must honor ctx.
type Fetcher func(ctx context.Context) (any, error)

// InvalidationListener hears about namespaces invalidated by a local mutation.
type InvalidationListener interface {
	NamespacesInvalidated(ctx context.Context, namespaces []string)
}

type entry struct {
	mu         sync.Mutex
	status     Status
	data       any
	hasData    bool
	err        error
	stale      bool
	updatedAt  time.Time
	gen        uint64
	nextSeq    uint64
	appliedSeq uint64
	inflight   *flight
}

func (e *entry) snapshot() Snapshot {
	return Snapshot{
		Status:    e.status,
		Data:      e.data,
		HasData:   e.hasData,
		Err:       e.err,
		Stale:     e.stale,
		UpdatedAt: e.updatedAt,
	}
}

// flight is one fetch in progress. A flight started for readers is cancelled
// once all of them have gone away; a background flight runs until done.
type flight struct {
	seq        uint64
	gen        uint64
	prev       Status
	done       chan struct{}
	cancel     context.CancelFunc
	background bool
	waiters    int
	abandoned  bool
	err        error
}

// Cache is a keyed read-through cache with namespace invalidation. It is safe
// for concurrent use: the key map has its own lock and every key serializes its
// state transitions on its entry lock.
type Cache struct {
	mu        sync.Mutex
	entries   map[Key]*entry
	listeners []InvalidationListener

	base   context.Context
	cancel context.CancelFunc
	now    func() time.Time
}

func New() *Cache {
	base, cancel := context.WithCancel(context.Background())
	return &Cache{
		entries: make(map[Key]*entry),
		base:    base,
		cancel:  cancel,
		now:     time.Now,
	}
}

// OnInvalidate registers l for invalidations caused by Mutate.
func (c *Cache) OnInvalidate(l InvalidationListener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
}

// Close cancels every fetch in flight, background ones included.
func (c *Cache) Close() {
	c.cancel()
}

func (c *Cache) entry(key Key) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

// Peek returns the current state of key without fetching.
func (c *Cache) Peek(key Key) Snapshot {
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return Snapshot{Status: StatusIdle}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Read serves key from the cache or through fetch.
//
// A fresh success is returned as is. A stale success is returned immediately
// and a background refetch is started, unless AwaitFresh is set. Anything else
// waits for a fetch, shared with other readers of the same key.
func (c *Cache) Read(ctx context.Context, key Key, fetch Fetcher, opts ...Option) (Snapshot, error) {
	cfg := newReadConfig(opts)
	if !cfg.enabled {
		return Snapshot{Status: StatusIdle}, nil
	}

	e := c.entry(key)
	e.mu.Lock()

	if e.hasData && e.status == StatusSuccess && !e.stale {
		snap := e.snapshot()
		e.mu.Unlock()
		return snap, nil
	}

	if e.hasData && e.stale && !cfg.awaitFresh {
		if !e.joinable() {
			c.start(e, key, fetch, true)
		}
		snap := e.snapshot()
		e.mu.Unlock()
		return snap, nil
	}

	fl := e.inflight
	if !e.joinable() {
		fl = c.start(e, key, fetch, false)
	}
	return c.wait(ctx, e, fl)
}

// joinable reports whether the fetch in flight may serve a new reader. A fetch
// started before the latest invalidation may not: its response predates the
// write.
func (e *entry) joinable() bool {
	fl := e.inflight
	return fl != nil && !fl.abandoned && fl.gen == e.gen
}

// Refetch always starts a new fetch for key and waits for it. A response that
// arrives after a newer one for the same key is dropped.
func (c *Cache) Refetch(ctx context.Context, key Key, fetch Fetcher) (Snapshot, error) {
	e := c.entry(key)
	e.mu.Lock()
	fl := c.start(e, key, fetch, false)
	return c.wait(ctx, e, fl)
}

// wait is entered with e.mu held.
func (c *Cache) wait(ctx context.Context, e *entry, fl *flight) (Snapshot, error) {
	if !fl.background {
		fl.waiters++
	}
	e.mu.Unlock()

	select {
	case <-fl.done:
	case <-ctx.Done():
		e.mu.Lock()
		if !fl.background {
			fl.waiters--
			if fl.waiters == 0 {
				fl.abandoned = true
				fl.cancel()
			}
		}
		snap := e.snapshot()
		e.mu.Unlock()
		return snap, ctx.Err()
	}

	e.mu.Lock()
	snap := e.snapshot()
	e.mu.Unlock()
	if fl.err != nil {
		snap.Err = fl.err
		if snap.Status != StatusFetching {
			snap.Status = StatusError
		}
		return snap, fl.err
	}
	return snap, nil
}

// start is called with e.mu held.
func (c *Cache) start(e *entry, key Key, fetch Fetcher, background bool) *flight {
	e.nextSeq++
	ctx, cancel := context.WithCancel(c.base)
	fl := &flight{
		seq:        e.nextSeq,
		gen:        e.gen,
		prev:       e.status,
		done:       make(chan struct{}),
		cancel:     cancel,
		background: background,
	}
	if fl.prev == StatusFetching && e.inflight != nil {
		fl.prev = e.inflight.prev
	}
	e.inflight = fl
	e.status = StatusFetching

	go c.run(ctx, e, key, fl, fetch)
	return fl
}

func (c *Cache) run(ctx context.Context, e *entry, key Key, fl *flight, fetch Fetcher) {
	data, err := fetch(ctx)
	fl.cancel()

	e.mu.Lock()
	defer e.mu.Unlock()
	defer close(fl.done)

	fl.err = err
	if e.inflight == fl {
		e.inflight = nil
	}

	switch {
	case fl.seq < e.appliedSeq:
		log.Printf("query %s: dropped response #%d, #%d already applied", key, fl.seq, e.appliedSeq)
	case err != nil && fl.abandoned && errors.Is(err, context.Canceled):
		if e.inflight == nil {
			e.status = fl.prev
		}
	case err != nil:
		e.appliedSeq = fl.seq
		e.status = StatusError
		e.err = err
		log.Printf("query %s: fetch failed: %v", key, err)
	default:
		e.appliedSeq = fl.seq
		e.status = StatusSuccess
		e.data = data
		e.hasData = true
		e.err = nil
		e.stale = fl.gen != e.gen
		e.updatedAt = c.now()
	}

	if e.inflight != nil {
		e.status = StatusFetching
	}
}

// Invalidate marks every key under the given namespaces stale so the next read
// refetches. A fetch already in flight for such a key stores its result as
// stale. It returns the number of keys touched.
func (c *Cache) Invalidate(namespaces ...string) int {
	set := make(map[string]struct{}, len(namespaces))
	for _, ns := range namespaces {
		set[ns] = struct{}{}
	}

	c.mu.Lock()
	matched := make([]*entry, 0)
	for key, e := range c.entries {
		if _, ok := set[key.Namespace]; ok {
			matched = append(matched, e)
		}
	}
	c.mu.Unlock()

	for _, e := range matched {
		e.mu.Lock()
		e.gen++
		if e.hasData {
			e.stale = true
		}
		e.mu.Unlock()
	}
	return len(matched)
}

func (c *Cache) notify(ctx context.Context, namespaces []string) {
	c.mu.Lock()
	listeners := append([]InvalidationListener(nil), c.listeners...)
	c.mu.Unlock()

	for _, l := range listeners {
		l.NamespacesInvalidated(ctx, namespaces)
	}
}
