package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	ErrExists   = errors.New("package already exists")
	ErrNotFound = errors.New("package not found")
	ErrHidden   = errors.New("package is hidden, use force to delete it")
)

// Package is one registry entry.
type Package struct {
	Name    string
	Version string
	Tag     string
	Hidden  bool
	Created time.Time
}

// Registry is an in-memory package registry safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	packages map[string]Package
	now      func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		packages: make(map[string]Package),
		now:      time.Now,
	}
}

func (r *Registry) Create(cmd *CreatePackage) (Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(cmd.Name)
	if _, ok := r.packages[key]; ok {
		return Package{}, fmt.Errorf("%w: %s", ErrExists, cmd.Name)
	}

	pkg := Package{
		Name:    cmd.Name,
		Version: cmd.Version,
		Tag:     cmd.Tag,
		Hidden:  cmd.IsHidden,
		Created: r.now(),
	}
	r.packages[key] = pkg
	return pkg, nil
}

func (r *Registry) Delete(cmd *DeletePackage) (Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(cmd.Name)
	pkg, ok := r.packages[key]
	if !ok {
		return Package{}, fmt.Errorf("%w: %s", ErrNotFound, cmd.Name)
	}
	if pkg.Hidden && !cmd.Force {
		return Package{}, fmt.Errorf("%w: %s", ErrHidden, cmd.Name)
	}
	delete(r.packages, key)
	return pkg, nil
}

func (r *Registry) Tag(cmd *TagPackage) (Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(cmd.Name)
	pkg, ok := r.packages[key]
	if !ok {
		return Package{}, fmt.Errorf("%w: %s", ErrNotFound, cmd.Name)
	}
	pkg.Tag = cmd.Tag
	r.packages[key] = pkg
	return pkg, nil
}

// List returns packages sorted by name. Hidden packages are included only
// with All; a positive Limit caps the result.
func (r *Registry) List(cmd *ListPackages) []Package {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := strings.ToLower(cmd.Query)
	var out []Package
	for key, pkg := range r.packages {
		if pkg.Hidden && !cmd.All {
			continue
		}
		if query != "" && !strings.Contains(key, query) {
			continue
		}
		out = append(out, pkg)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if cmd.Limit > 0 && len(out) > cmd.Limit {
		out = out[:cmd.Limit]
	}
	return out
}
