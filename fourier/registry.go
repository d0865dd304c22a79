package fourier

import (
	"fmt"
	"sync"
)

// ShapeKey identifies a transform's dimensionality and extents. Keys compare
// by value; two keys are equal iff dimension and all extents match.
type ShapeKey struct {
	Dim    int
	Width  int
	Height int // zero for 1-D keys
}

// Shape1D returns the key for a 1-D transform of the given length.
func Shape1D(length int) ShapeKey {
	return ShapeKey{Dim: 1, Width: length}
}

// Shape2D returns the key for a 2-D transform of the given extents.
func Shape2D(width, height int) ShapeKey {
	return ShapeKey{Dim: 2, Width: width, Height: height}
}

func (k ShapeKey) String() string {
	if k.Dim == 1 {
		return fmt.Sprintf("1d/%d", k.Width)
	}
	return fmt.Sprintf("%dd/%dx%d", k.Dim, k.Width, k.Height)
}

// Registry memoizes one transform [Engine] per distinct shape. Engines are
// constructed lazily on first request and kept for the registry's lifetime;
// there is no eviction, since a pipeline touches a small, bounded set of
// shapes.
//
// A Registry is safe for concurrent use. Lookups of already-resolved shapes
// take only a read lock; construction is serialized so that racing first-time
// requests for the same shape build exactly one engine.
type Registry struct {
	mu      sync.RWMutex
	engines map[ShapeKey]*Engine
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[ShapeKey]*Engine)}
}

// Resolve returns the engine for key, constructing it on first use.
// A failed construction is not cached; repeating the call with the same
// invalid key fails identically and leaves the registry unchanged.
func (r *Registry) Resolve(key ShapeKey) (*Engine, error) {
	r.mu.RLock()
	e, ok := r.engines[key]
	r.mu.RUnlock()
	if ok {
		return e, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check: another goroutine may have constructed the engine while we
	// waited for the write lock.
	if e, ok := r.engines[key]; ok {
		return e, nil
	}

	e, err := newEngine(key)
	if err != nil {
		return nil, err
	}
	r.engines[key] = e
	return e, nil
}

// Size returns the number of cached engines.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.engines)
}
