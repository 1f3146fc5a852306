package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/pkg/db/models"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// CreateProductDTO carries the validated input for a new product listing.
type CreateProductDTO struct {
	Title       string
	Description string
	PriceCents  int
	Rating      float64
	CategoryID  uuid.UUID
	ImageURL    string
	VideoURL    string
	Posters     []string
}

// UpdateProductDTO carries a partial update; nil fields are left untouched.
type UpdateProductDTO struct {
	Title       *string
	Description *string
	PriceCents  *int
	Rating      *float64
	VideoURL    *string
}

// ProductService owns the product lifecycle. Products keep an extra
// relationship the other catalog entities lack: a category reference that is
// checked at creation time only.
type ProductService struct {
	Service[models.Product]
	categories *Repository[models.Category]
}

func NewProductService(conn *gorm.DB) *ProductService {
	return &ProductService{
		Service:    newService(NewRepository[models.Product](conn)),
		categories: NewRepository[models.Category](conn),
	}
}

// Create validates the category reference and inserts the listing. The
// category must exist and be active when the product is created; later
// category deactivation does not cascade to existing products.
func (s *ProductService) Create(ctx context.Context, dto CreateProductDTO) (*models.Product, error) {
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product title is required")
	}
	if dto.ImageURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product image is required")
	}
	if dto.PriceCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	if dto.Rating < 0 || dto.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 0 and 5")
	}

	category, err := s.categories.FindByID(ctx, dto.CategoryID)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup category")
	}
	if category.Status != enums.EntityStatusActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is not active")
	}

	product := &models.Product{
		Title:       title,
		Description: dto.Description,
		PriceCents:  dto.PriceCents,
		Rating:      dto.Rating,
		CategoryID:  dto.CategoryID,
		ImageURL:    dto.ImageURL,
		VideoURL:    dto.VideoURL,
		Posters:     pq.StringArray(dto.Posters),
		Status:      enums.EntityStatusActive,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product title already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return product, nil
}

// Update applies a partial column update and returns the fresh row.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, dto UpdateProductDTO) (*models.Product, error) {
	columns := map[string]any{}
	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product title is required")
		}
		columns["title"] = title
	}
	if dto.Description != nil {
		columns["description"] = *dto.Description
	}
	if dto.PriceCents != nil {
		if *dto.PriceCents < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
		}
		columns["price_cents"] = *dto.PriceCents
	}
	if dto.Rating != nil {
		if *dto.Rating < 0 || *dto.Rating > 5 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 0 and 5")
		}
		columns["rating"] = *dto.Rating
	}
	if dto.VideoURL != nil {
		columns["video_url"] = *dto.VideoURL
	}
	if len(columns) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if err := s.repo.Update(ctx, id, columns); err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product title already exists")
		}
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// UpdateImage swaps the primary image URL after a successful upload.
func (s *ProductService) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) (*models.Product, error) {
	if imageURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image url is required")
	}
	if err := s.repo.Update(ctx, id, map[string]any{"image_url": imageURL}); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// ListByCategory returns the storefront view of one category: active
// products only, newest first.
func (s *ProductService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var list []models.Product
	err := s.repo.db.WithContext(ctx).
		Where("category_id = ? AND status = ?", categoryID, enums.EntityStatusActive).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products by category")
	}
	return list, nil
}

// ListWithCategory preloads the category association for admin reads.
func (s *ProductService) ListWithCategory(ctx context.Context) ([]models.Product, error) {
	var list []models.Product
	err := s.repo.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return list, nil
}
