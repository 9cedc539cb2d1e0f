// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"fmt"

	"insural/internal/core/apperror"
	"insural/internal/core/entity"
	"insural/internal/core/id"
	"insural/internal/core/tx"
)

// CrudService provides the shared lookup/branch/persist logic for an entity
// kind. Per-entity services embed it and add their own operations.
type CrudService[T entity.Persistable] struct {
	repo      Repository[T]
	txManager tx.Manager

	// entityName for error messages
	entityName string
}

// NewCrudService creates a new generic service.
func NewCrudService[T entity.Persistable](repo Repository[T], txManager tx.Manager, entityName string) *CrudService[T] {
	return &CrudService[T]{
		repo:       repo,
		txManager:  txManager,
		entityName: entityName,
	}
}

// Repo exposes the underlying repository to embedding services.
func (s *CrudService[T]) Repo() Repository[T] {
	return s.repo
}

// EntityName returns the name used in error payloads.
func (s *CrudService[T]) EntityName() string {
	return s.entityName
}

func (s *CrudService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

// NormalizeGetErr maps raw repository errors to the correct entity name.
func (s *CrudService[T]) NormalizeGetErr(err error, idOrKey any) error {
	if err == nil {
		return nil
	}
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, idOrKey)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", idOrKey)
}

// InTx runs fn in a transaction via the configured manager.
func (s *CrudService[T]) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.txManager.RunInTransaction(ctx, fn)
}

// GetAll retrieves the full collection. An empty collection is a success.
func (s *CrudService[T]) GetAll(ctx context.Context) ([]T, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("entity", s.entityName)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// GetByID retrieves entity by ID.
func (s *CrudService[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	e, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return e, s.NormalizeGetErr(err, entityID.String())
	}
	return e, nil
}

// Create validates and persists a new entity. The identifier is assigned
// here, right before the insert, and is never reassigned afterwards.
func (s *CrudService[T]) Create(ctx context.Context, e T) (T, error) {
	if err := e.Validate(ctx); err != nil {
		return e, s.normalizeValidationErr(err)
	}

	e.EnsureID()

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, e); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		if apperror.IsAppError(err) {
			return e, err
		}
		return e, apperror.NewInternal(err).WithDetail("entity", s.entityName)
	}

	return e, nil
}

// Update validates and persists an already-fetched entity. Callers are
// expected to have looked it up first and applied partial-update fields;
// a missing identifier therefore surfaces during that lookup, not here.
func (s *CrudService[T]) Update(ctx context.Context, e T) (T, error) {
	if err := e.Validate(ctx); err != nil {
		return e, s.normalizeValidationErr(err)
	}

	e.Touch()

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, e); err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		if apperror.IsAppError(err) {
			return e, err
		}
		return e, apperror.NewInternal(err).WithDetail("entity", s.entityName)
	}

	return e, nil
}

// Delete removes an entity. The lookup runs first: when the identifier does
// not resolve, the repository delete is never invoked.
func (s *CrudService[T]) Delete(ctx context.Context, entityID id.ID) error {
	if _, err := s.repo.GetByID(ctx, entityID); err != nil {
		return s.NormalizeGetErr(err, entityID.String())
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, entityID); err != nil {
			return fmt.Errorf("delete %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewInternal(err).WithDetail("entity", s.entityName)
	}

	return nil
}
