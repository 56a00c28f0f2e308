// Package cache provides a memoizing wrapper around a
// studyhall.Generator so repeated requests for the same content skip
// the model call.
package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"studyhall"
)

// Ensure Generator implements studyhall.Generator at compile time.
var _ studyhall.Generator = (*Generator)(nil)

// Generator caches successful results of the wrapped generator for the
// lifetime of the process. Entries are keyed by operation and a hash
// of the content, concurrent requests for the same key are collapsed
// into a single upstream call, and failures are never cached.
type Generator struct {
	inner studyhall.Generator

	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]any
}

// NewGenerator wraps inner with a cache.
func NewGenerator(inner studyhall.Generator) *Generator {
	return &Generator{
		inner:   inner,
		entries: make(map[string]any),
	}
}

// key derives the cache key for one operation on one content string.
func key(op, content string) string {
	return fmt.Sprintf("%s:%016x", op, xxhash.Sum64String(content))
}

// load returns the cached value for k, if any.
func (g *Generator) load(k string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.entries[k]
	return v, ok
}

// do answers from the cache, or runs fn once per key and caches its
// result on success.
func (g *Generator) do(k string, fn func() (any, error)) (any, error) {
	if v, ok := g.load(k); ok {
		return v, nil
	}

	v, err, _ := g.group.Do(k, func() (any, error) {
		if v, ok := g.load(k); ok {
			return v, nil
		}

		v, err := fn()
		if err != nil {
			return nil, err
		}

		g.mu.Lock()
		g.entries[k] = v
		g.mu.Unlock()
		return v, nil
	})
	return v, err
}

// Summary implements studyhall.Generator.
func (g *Generator) Summary(ctx context.Context, content string) (string, error) {
	v, err := g.do(key("summary", content), func() (any, error) {
		return g.inner.Summary(ctx, content)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Quiz implements studyhall.Generator. Callers receive the shared
// cached result; quiz sessions copy what they grade, so sharing is
// safe.
func (g *Generator) Quiz(ctx context.Context, content string) (*studyhall.QuizResult, error) {
	v, err := g.do(key("quiz", content), func() (any, error) {
		return g.inner.Quiz(ctx, content)
	})
	if err != nil {
		return nil, err
	}
	return v.(*studyhall.QuizResult), nil
}

// Flashcards implements studyhall.Generator.
func (g *Generator) Flashcards(ctx context.Context, content string) (*studyhall.FlashcardResult, error) {
	v, err := g.do(key("flashcards", content), func() (any, error) {
		return g.inner.Flashcards(ctx, content)
	})
	if err != nil {
		return nil, err
	}
	return v.(*studyhall.FlashcardResult), nil
}

// StudyPlan implements studyhall.Generator.
func (g *Generator) StudyPlan(ctx context.Context, content string) (string, error) {
	v, err := g.do(key("plan", content), func() (any, error) {
		return g.inner.StudyPlan(ctx, content)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
