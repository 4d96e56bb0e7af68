package query

import (
	"context"
	"time"
)

// Result is a Snapshot with typed data.
type Result[T any] struct {
	Status    Status
	Data      T
	HasData   bool
	Err       error
	Stale     bool
	UpdatedAt time.Time
}

func typed[T any](s Snapshot) Result[T] {
	r := Result[T]{
		Status:    s.Status,
		HasData:   s.HasData,
		Err:       s.Err,
		Stale:     s.Stale,
		UpdatedAt: s.UpdatedAt,
	}
	if v, ok := s.Data.(T); ok {
		r.Data = v
	}
	return r
}

func erase[T any](fetch func(context.Context) (T, error)) Fetcher {
	return func(ctx context.Context) (any, error) {
		return fetch(ctx)
	}
}

// Get is the typed form of Cache.Read.
func Get[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error), opts ...Option) (Result[T], error) {
	snap, err := c.Read(ctx, key, erase(fetch), opts...)
	return typed[T](snap), err
}

// Refetch is the typed form of Cache.Refetch.
func Refetch[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (Result[T], error) {
	snap, err := c.Refetch(ctx, key, erase(fetch))
	return typed[T](snap), err
}

// Mutate runs fn and, when it succeeds, invalidates the affected namespaces
// and tells the registered listeners. Nothing is invalidated on failure.
func Mutate[T any](ctx context.Context, c *Cache, fn func(context.Context) (T, error), namespaces ...string) (T, error) {
	out, err := fn(ctx)
	if err != nil {
		return out, err
	}
	c.Invalidate(namespaces...)
	c.notify(ctx, namespaces)
	return out, nil
}
