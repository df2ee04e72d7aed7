package httpapi

import (
	"net/http"
	"sort"
	"sync"

	"github.com/go-faster/errors"
)

// Route paths served by the UI.
const (
	ProductsPath = "/products"
	HealthPath   = "/healthz"
	OpenAPIPath  = "/openapi.yaml"
	DocsPath     = "/docs"
	StaticPrefix = "/static/"
)

// ErrDuplicateRoute is returned when a path is registered twice.
var ErrDuplicateRoute = errors.New("route already registered")

// Routes is the path table rendered by the router. Paths are exact; registration order
// does not matter.
type Routes struct {
	mu sync.Mutex
	m  map[string]http.Handler
}

// NewRoutes returns an empty table.
func NewRoutes() *Routes {
	return &Routes{m: make(map[string]http.Handler)}
}

// Register associates path with h. Existing associations are never replaced.
func (rt *Routes) Register(path string, h http.Handler) error {
	if path == "" || path[0] != '/' {
		return errors.Errorf("route path %q must start with /", path)
	}
	if h == nil {
		return errors.Errorf("route %q: nil handler", path)
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if _, ok := rt.m[path]; ok {
		return errors.Wrap(ErrDuplicateRoute, path)
	}
	rt.m[path] = h
	return nil
}

// Paths lists the registered paths in lexical order.
func (rt *Routes) Paths() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	out := make([]string, 0, len(rt.m))
	for p := range rt.m {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (rt *Routes) handler(path string) http.Handler {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.m[path]
}
