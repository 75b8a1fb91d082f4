package actions

//go:generate mockgen -destination=mock/mock_announcer.go -package=mockactions -source=registry.go

import (
	"context"
	"fmt"
	"log"

	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
	"github.com/KirkDiggler/quickroll-bot/internal/quickroll"
)

// Use is a single invocation of an action
type Use struct {
	Definition *Definition
	Actors     []quickroll.ActorSelector
}

// Announcer publishes the use of an action to wherever the table is watching
type Announcer interface {
	Announce(ctx context.Context, use *Use) error
}

// RegistryConfig holds the registry dependencies
type RegistryConfig struct {
	Repository Repository
	Announcer  Announcer
}

// Registry resolves action identifiers to invokable actions backed by stored definitions
type Registry struct {
	repo      Repository
	announcer Announcer
}

// NewRegistry creates a registry
func NewRegistry(cfg *RegistryConfig) (*Registry, error) {
	if cfg == nil || cfg.Repository == nil {
		return nil, qrerr.InvalidArgumentf("action repository is required")
	}

	return &Registry{
		repo:      cfg.Repository,
		announcer: cfg.Announcer,
	}, nil
}

// WithAnnouncer returns a registry sharing the repository that announces through a
func (r *Registry) WithAnnouncer(a Announcer) *Registry {
	return &Registry{
		repo:      r.repo,
		announcer: a,
	}
}

// Get implements quickroll.ActionLookup.
// Definitions that are not stored come back as not_found.
func (r *Registry) Get(ctx context.Context, id string) (quickroll.Action, error) {
	def, err := r.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &boundAction{
		definition: def,
		announcer:  r.announcer,
	}, nil
}

// List returns every registered definition
func (r *Registry) List(ctx context.Context) ([]*Definition, error) {
	return r.repo.List(ctx)
}

// Lookup adapts the registry for the parser
func (r *Registry) Lookup() quickroll.ActionRegistry {
	return quickroll.LookupRegistry(r)
}

type boundAction struct {
	definition *Definition
	announcer  Announcer
}

func (a *boundAction) Use(ctx context.Context, opts quickroll.ActionOptions) error {
	if a.announcer == nil {
		return qrerr.Unavailable(fmt.Sprintf("nowhere to announce %s", a.definition.Name))
	}

	log.Printf("[Actions] Using %s for %v", a.definition.ID, opts.Actors)
	return a.announcer.Announce(ctx, &Use{
		Definition: a.definition,
		Actors:     opts.Actors,
	})
}
