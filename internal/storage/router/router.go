// Package router picks a storage backend per path, by file extension.
package router

import (
	"path/filepath"
	"strings"

	"github.com/aanand-mishra/student-roster/internal/storage"
	"github.com/aanand-mishra/student-roster/internal/types"
)

// Router implements storage.Storage by delegating each call to the
// backend registered for the path's extension, or to the fallback.
type Router struct {
	fallback storage.Storage
	byExt    map[string]storage.Storage
}

// New returns a Router sending every path to fallback until Register adds
// extension-specific backends.
func New(fallback storage.Storage) *Router {
	return &Router{
		fallback: fallback,
		byExt:    make(map[string]storage.Storage),
	}
}

// Register routes paths ending in any of exts (".db", "sqlite", ...) to s.
// Matching is case-insensitive and the leading dot is optional.
func (r *Router) Register(s storage.Storage, exts ...string) {
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.byExt[ext] = s
	}
}

// For returns the backend that handles path.
func (r *Router) For(path string) storage.Storage {
	if s, ok := r.byExt[strings.ToLower(filepath.Ext(path))]; ok {
		return s
	}
	return r.fallback
}

func (r *Router) Load(path string) ([]types.Student, error) {
	return r.For(path).Load(path)
}

func (r *Router) Save(path string, students []types.Student) error {
	return r.For(path).Save(path, students)
}
