package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/velora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// Service carries the lifecycle operations every catalog entity shares.
// Entity-specific services embed it and add their own create/update
// validation on top.
type Service[T any] struct {
	repo *Repository[T]
}

func newService[T any](repo *Repository[T]) Service[T] {
	return Service[T]{repo: repo}
}

// List returns every entity regardless of status, newest first. Admin read.
func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list entities")
	}
	return list, nil
}

// ListActive returns only entities visible to the storefront.
func (s *Service[T]) ListActive(ctx context.Context) ([]T, error) {
	list, err := s.repo.ListByStatus(ctx, enums.EntityStatusActive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list active entities")
	}
	return list, nil
}

// Get loads one entity by id.
func (s *Service[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

// SetStatus writes an explicit status value.
func (s *Service[T]) SetStatus(ctx context.Context, id uuid.UUID, status enums.EntityStatus) error {
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}
	return s.repo.SetStatus(ctx, id, status)
}

// ToggleStatus flips active<->inactive and reports the new value.
func (s *Service[T]) ToggleStatus(ctx context.Context, id uuid.UUID) (enums.EntityStatus, error) {
	return s.repo.ToggleStatus(ctx, id)
}

// Delete removes the entity permanently.
func (s *Service[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteByID(ctx, id)
}
