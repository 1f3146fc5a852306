package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/pkg/db"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// Repository is the shared persistence layer for all catalog entities. The
// five content types (categories, products, banners, blogs, offers) share one
// lifecycle, so they share one repo instead of five copies of it.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository builds a catalog repo for one entity type bound to the
// provided GORM DB.
func NewRepository[T any](conn *gorm.DB) *Repository[T] {
	return &Repository[T]{db: conn}
}

// Create inserts the entity. Unique-key collisions surface as conflict errors
// so controllers can answer 409 without inspecting driver internals.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		if db.IsUniqueViolation(err, "") {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "entity already exists")
		}
		return err
	}
	return nil
}

// List returns all entities, newest first.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	var list []T
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListByStatus returns entities with the given status, newest first.
func (r *Repository[T]) ListByStatus(ctx context.Context, status enums.EntityStatus) ([]T, error) {
	var list []T
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindByID loads one entity.
func (r *Repository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "entity not found")
		}
		return nil, err
	}
	return &entity, nil
}

// Update persists column changes for the entity identified by id.
func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	if len(columns) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		if db.IsUniqueViolation(res.Error, "") {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, res.Error, "entity already exists")
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "entity not found")
	}
	return nil
}

// SetStatus writes the status column directly.
func (r *Repository[T]) SetStatus(ctx context.Context, id uuid.UUID, status enums.EntityStatus) error {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).UpdateColumn("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "entity not found")
	}
	return nil
}

// ToggleStatus flips active<->inactive and returns the new value.
func (r *Repository[T]) ToggleStatus(ctx context.Context, id uuid.UUID) (enums.EntityStatus, error) {
	var current struct {
		Status enums.EntityStatus
	}
	err := r.db.WithContext(ctx).Model(new(T)).
		Select("status").
		Where("id = ?", id).
		Take(&current).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", pkgerrors.New(pkgerrors.CodeNotFound, "entity not found")
		}
		return "", err
	}

	next := current.Status.Toggle()
	if err := r.SetStatus(ctx, id, next); err != nil {
		return "", err
	}
	return next, nil
}

// DeleteByID removes the entity; deleting a missing id is a not-found error.
func (r *Repository[T]) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "entity not found")
	}
	return nil
}
