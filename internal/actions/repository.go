package actions

//go:generate mockgen -destination=mock/mock_repository.go -package=mockactions -source=repository.go

import (
	"context"
)

// Repository defines the interface for action definition storage
type Repository interface {
	// Get retrieves a definition by action ID
	Get(ctx context.Context, id string) (*Definition, error)

	// Put creates or replaces a definition
	Put(ctx context.Context, def *Definition) error

	// List returns every stored definition ordered by ID
	List(ctx context.Context) ([]*Definition, error)

	// Delete removes a definition
	Delete(ctx context.Context, id string) error
}
