// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"insural/internal/core/entity"
	"insural/internal/core/id"
)

// Repository defines the generic persistence gateway the services talk to.
// One thin PostgreSQL implementation per entity kind lives in
// infrastructure/storage/postgres; no business logic belongs here.
type Repository[T entity.Persistable] interface {
	// GetAll retrieves the full collection, oldest first.
	GetAll(ctx context.Context) ([]T, error)

	// GetByID retrieves entity by ID.
	GetByID(ctx context.Context, id id.ID) (T, error)

	// Create inserts a new entity.
	Create(ctx context.Context, entity T) error

	// Update overwrites the stored entity.
	Update(ctx context.Context, entity T) error

	// Delete removes the stored entity.
	Delete(ctx context.Context, id id.ID) error
}
