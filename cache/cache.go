/*
Package cache memoizes projection payloads.

PURPOSE:
  Every engine component is deterministic and referentially transparent,
  so a projection is fully identified by (collections version, window,
  today). The dashboard recomputes on every interaction; caching the
  JSON payload under that key makes repeated interactions free without
  ever risking a stale result - a data change bumps the version and the
  old keys simply die of TTL.

IMPLEMENTATIONS:
  Memory: in-process LRU with TTL. The default.
  Redis:  shared cache for multi-instance deployments.
*/
package cache

import (
	"context"
	"time"
)

// ProjectionCache stores rendered projection payloads under memo keys.
// A miss is never an error; callers recompute and Set.
type ProjectionCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// Memory adapts the LRU to the ProjectionCache interface.
type Memory struct {
	lru *LRU[string]
}

func NewMemory(maxSize int, ttl time.Duration) *Memory {
	return &Memory{lru: NewLRU[string](maxSize, ttl)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	return m.lru.Get(key)
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.lru.Set(key, value)
	return nil
}

// Noop disables caching; every Get misses.
type Noop struct{}

func (Noop) Get(context.Context, string) (string, bool) { return "", false }
func (Noop) Set(context.Context, string, string) error  { return nil }
