package catalog

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/pkg/db/models"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// CreateCategoryDTO carries the validated input for a new category. The
// image URL is produced by the uploads service before this layer runs.
type CreateCategoryDTO struct {
	Name     string
	ImageURL string
}

// CategoryService owns the category lifecycle.
type CategoryService struct {
	Service[models.Category]
}

func NewCategoryService(conn *gorm.DB) *CategoryService {
	return &CategoryService{Service: newService(NewRepository[models.Category](conn))}
}

// Create inserts a category. Names are unique; a duplicate answers conflict.
func (s *CategoryService) Create(ctx context.Context, dto CreateCategoryDTO) (*models.Category, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}

	category := &models.Category{
		Name:     name,
		ImageURL: dto.ImageURL,
		Status:   enums.EntityStatusActive,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "category name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category")
	}
	return category, nil
}
