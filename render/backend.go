package render

import (
	"image"
	"sync"

	"github.com/sumonst21/rnote/geometry"
)

// Built-in vector backend names.
const (
	// BackendCanvas is the full SVG backend, including text support.
	BackendCanvas = "canvas"

	// BackendRasterx is the scanline fallback backend. It covers
	// shapes, paths and gradients but skips text elements.
	BackendRasterx = "rasterx"
)

// VectorBackend rasterizes a standalone SVG document into a pixel
// buffer. Implementations are stateless request/response converters:
// each Render call is independent and safe to run from any single
// goroutine at a time.
type VectorBackend interface {
	// Name returns the backend identifier (e.g. "canvas").
	Name() string

	// Render draws the document into dst, mapping the document's
	// viewbox onto the whole destination. The bounds are the
	// document-space region dst covers; implementations that derive
	// the mapping from the document's own viewbox may ignore them.
	Render(doc string, bounds geometry.Aabb, dst *image.RGBA) error
}

var (
	backendMu sync.RWMutex
	backends  = make(map[string]VectorBackend)

	// Priority order for default selection (first registered wins).
	backendPriority = []string{BackendCanvas, BackendRasterx}
)

// RegisterBackend registers a vector backend under its name,
// replacing any previous registration. The built-in backends register
// themselves at package init time.
func RegisterBackend(b VectorBackend) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backends[b.Name()] = b
}

// BackendByName returns the registered backend with the given name,
// or nil when none is registered under it.
func BackendByName(name string) VectorBackend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return backends[name]
}

// Backends returns the names of all registered backends.
func Backends() []string {
	backendMu.RLock()
	defer backendMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// DefaultBackend returns the best available backend following the
// priority order, or nil when none is registered.
func DefaultBackend() VectorBackend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	for _, name := range backendPriority {
		if b, ok := backends[name]; ok {
			return b
		}
	}
	for _, b := range backends {
		return b
	}
	return nil
}
