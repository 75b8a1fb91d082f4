package actions

import (
	"context"
	"sort"
	"sync"

	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
)

// InMemoryRepository keeps definitions in a map.
// Used when no Redis is configured and in tests.
type InMemoryRepository struct {
	mu          sync.RWMutex
	definitions map[string]*Definition
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		definitions: make(map[string]*Definition),
	}
}

// Get retrieves a definition by action ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*Definition, error) {
	if id == "" {
		return nil, qrerr.InvalidArgumentf("action ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.definitions[id]
	if !exists {
		return nil, notFound(id)
	}

	return def.Clone(), nil
}

// Put creates or replaces a definition
func (r *InMemoryRepository) Put(_ context.Context, def *Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.definitions[def.ID] = def.Clone()
	return nil
}

// List returns every stored definition ordered by ID
func (r *InMemoryRepository) List(_ context.Context) ([]*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*Definition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def.Clone())
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})

	return defs, nil
}

// Delete removes a definition
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[id]; !exists {
		return notFound(id)
	}

	delete(r.definitions, id)
	return nil
}

func notFound(id string) *qrerr.Error {
	return qrerr.NotFoundf("action definition '%s' not found", id).WithMeta("action", id)
}
