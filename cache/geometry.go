// Package cache caches derived rendering artifacts per annotation element:
// tessellated vector paths and text layouts. Artifacts are opaque to the
// engine; the rendering backend supplies creator callbacks that build them
// and gets them back on later frames without re-tessellating unchanged
// geometry.
package cache

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/snapmark/annotate"
)

// DefaultCapacity is the default combined artifact limit. It is sized so
// eviction rarely triggers in a typical capture session.
const DefaultCapacity = 256

// Artifact is an opaque cached rendering artifact (a tessellated path or a
// laid-out text block). The cache never inspects it.
type Artifact any

// CreatorFunc builds a fresh artifact for an element. It is supplied by
// the rendering backend and may fail, e.g. under backend resource
// exhaustion; the failure is returned to the caller for that frame and the
// entry stays absent, so a later call can retry once the backend recovers.
type CreatorFunc func() (Artifact, error)

// Stats holds cache counters for diagnostics.
type Stats struct {
	// Hits is the number of lookups served from the cache.
	Hits uint64
	// Misses is the number of lookups that invoked a creator.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 when nothing was looked up.
	HitRate float64
	// Paths is the number of cached path artifacts.
	Paths int
	// Texts is the number of cached text-layout artifacts.
	Texts int
	// Dirty is the number of ids flagged stale and not yet rebuilt.
	Dirty int
	// Evictions counts artifacts dropped by capacity pressure, removal,
	// or invalidation.
	Evictions uint64
}

// Geometry caches path and text-layout artifacts keyed by element id.
//
// Entries move through three states: absent, computed, and stale. A stale
// entry (flagged via MarkDirty) is evicted lazily on its next lookup and
// rebuilt by the creator; nothing expires on its own. When the combined
// entry count reaches capacity, roughly half the entries are evicted in
// insertion order, split between the two maps — a pragmatic policy, not
// LRU, chosen for short-lived sessions.
type Geometry struct {
	mu        sync.Mutex
	paths     map[int64]Artifact
	texts     map[int64]Artifact
	pathOrder []int64
	textOrder []int64
	dirty     map[int64]struct{}
	capacity  int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates an empty cache. Options may override the capacity.
func New(opts ...GeometryOption) *Geometry {
	g := &Geometry{
		paths:    make(map[int64]Artifact),
		texts:    make(map[int64]Artifact),
		dirty:    make(map[int64]struct{}),
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GeometryOption configures a Geometry cache during creation.
type GeometryOption func(*Geometry)

// WithCapacity sets the combined path+text artifact limit. Non-positive
// values are ignored.
func WithCapacity(n int) GeometryOption {
	return func(g *Geometry) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// GetOrCreatePath returns the cached path artifact for id, building it
// with create on a miss. A dirty id has its stale artifacts evicted first,
// so the creator always sees a miss after MarkDirty. A creator error is
// returned to the caller and nothing is stored; the entry is not poisoned.
func (g *Geometry) GetOrCreatePath(id int64, create CreatorFunc) (Artifact, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.flushDirtyLocked(id)
	if a, ok := g.paths[id]; ok {
		g.hits.Add(1)
		return a, nil
	}

	g.misses.Add(1)
	a, err := create()
	if err != nil {
		return nil, fmt.Errorf("cache: creating path artifact for element %d: %w", id, err)
	}
	g.ensureCapacityLocked()
	g.paths[id] = a
	g.pathOrder = append(g.pathOrder, id)
	return a, nil
}

// GetOrCreateText returns the cached text-layout artifact for id, building
// it with create on a miss. Semantics match GetOrCreatePath.
func (g *Geometry) GetOrCreateText(id int64, create CreatorFunc) (Artifact, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.flushDirtyLocked(id)
	if a, ok := g.texts[id]; ok {
		g.hits.Add(1)
		return a, nil
	}

	g.misses.Add(1)
	a, err := create()
	if err != nil {
		return nil, fmt.Errorf("cache: creating text artifact for element %d: %w", id, err)
	}
	g.ensureCapacityLocked()
	g.texts[id] = a
	g.textOrder = append(g.textOrder, id)
	return a, nil
}

// MarkDirty flags id as stale. The cached artifacts survive until the next
// lookup, avoiding redundant eviction work when an element is dirtied
// several times between frames. Marking an id with no cached artifacts is
// allowed and remembered.
func (g *Geometry) MarkDirty(id int64) {
	g.mu.Lock()
	g.dirty[id] = struct{}{}
	g.mu.Unlock()
}

// MarkDirtyBatch flags every id in ids as stale. Already-dirty ids are
// unaffected.
func (g *Geometry) MarkDirtyBatch(ids []int64) {
	g.mu.Lock()
	for _, id := range ids {
		g.dirty[id] = struct{}{}
	}
	g.mu.Unlock()
}

// DirtyCount returns the number of ids currently flagged stale.
func (g *Geometry) DirtyCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.dirty)
}

// Remove immediately evicts both artifacts for id, used when the element
// is deleted.
func (g *Geometry) Remove(id int64) {
	g.mu.Lock()
	g.removeLocked(id)
	g.mu.Unlock()
}

// RemoveBatch immediately evicts the artifacts for every id in ids.
func (g *Geometry) RemoveBatch(ids []int64) {
	g.mu.Lock()
	for _, id := range ids {
		g.removeLocked(id)
	}
	g.mu.Unlock()
}

// InvalidateAll unconditionally clears both maps and the dirty set, e.g.
// on a full re-render after a window resize or selection-area change.
func (g *Geometry) InvalidateAll() {
	g.mu.Lock()
	evicted := uint64(len(g.paths) + len(g.texts))
	g.paths = make(map[int64]Artifact)
	g.texts = make(map[int64]Artifact)
	g.pathOrder = g.pathOrder[:0]
	g.textOrder = g.textOrder[:0]
	g.dirty = make(map[int64]struct{})
	g.mu.Unlock()

	if evicted > 0 {
		g.evictions.Add(evicted)
	}
}

// PathCount returns the number of cached path artifacts.
func (g *Geometry) PathCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.paths)
}

// TextCount returns the number of cached text-layout artifacts.
func (g *Geometry) TextCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.texts)
}

// Stats returns current counters.
func (g *Geometry) Stats() Stats {
	g.mu.Lock()
	paths := len(g.paths)
	texts := len(g.texts)
	dirty := len(g.dirty)
	g.mu.Unlock()

	hits := g.hits.Load()
	misses := g.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Paths:     paths,
		Texts:     texts,
		Dirty:     dirty,
		Evictions: g.evictions.Load(),
	}
}

// ResetStats zeroes the hit, miss, and eviction counters without touching
// cached data.
func (g *Geometry) ResetStats() {
	g.hits.Store(0)
	g.misses.Store(0)
	g.evictions.Store(0)
}

// flushDirtyLocked evicts both artifacts for id if it is flagged stale and
// clears the flag. Must be called with g.mu held.
func (g *Geometry) flushDirtyLocked(id int64) {
	if _, ok := g.dirty[id]; !ok {
		return
	}
	delete(g.dirty, id)
	g.removeLocked(id)
}

// removeLocked evicts both artifacts for id. Must be called with g.mu held.
func (g *Geometry) removeLocked(id int64) {
	if _, ok := g.paths[id]; ok {
		delete(g.paths, id)
		g.pathOrder = removeID(g.pathOrder, id)
		g.evictions.Add(1)
	}
	if _, ok := g.texts[id]; ok {
		delete(g.texts, id)
		g.textOrder = removeID(g.textOrder, id)
		g.evictions.Add(1)
	}
	delete(g.dirty, id)
}

// ensureCapacityLocked evicts roughly half of all entries, oldest first
// and split between the two maps, once the combined count reaches the
// capacity. Must be called with g.mu held.
func (g *Geometry) ensureCapacityLocked() {
	total := len(g.paths) + len(g.texts)
	if total < g.capacity {
		return
	}

	dropPaths := (len(g.paths) + 1) / 2
	dropTexts := (len(g.texts) + 1) / 2
	for i := 0; i < dropPaths && len(g.pathOrder) > 0; i++ {
		id := g.pathOrder[0]
		g.pathOrder = g.pathOrder[1:]
		delete(g.paths, id)
		g.evictions.Add(1)
	}
	for i := 0; i < dropTexts && len(g.textOrder) > 0; i++ {
		id := g.textOrder[0]
		g.textOrder = g.textOrder[1:]
		delete(g.texts, id)
		g.evictions.Add(1)
	}

	annotate.Logger().Debug("cache: capacity eviction",
		slog.Int("dropped_paths", dropPaths),
		slog.Int("dropped_texts", dropTexts),
		slog.Int("capacity", g.capacity))
}

// removeID deletes the first occurrence of id from order, preserving the
// relative order of the rest.
func removeID(order []int64, id int64) []int64 {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
