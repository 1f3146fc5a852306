package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/pkg/db/models"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// CreateBannerDTO carries the validated input for a new homepage banner.
type CreateBannerDTO struct {
	Title    string
	Link     string
	ImageURL string
}

// BannerService owns the banner lifecycle. Banners start inactive so a
// half-configured hero never reaches the storefront.
type BannerService struct {
	Service[models.Banner]
}

func NewBannerService(conn *gorm.DB) *BannerService {
	return &BannerService{Service: newService(NewRepository[models.Banner](conn))}
}

func (s *BannerService) Create(ctx context.Context, dto CreateBannerDTO) (*models.Banner, error) {
	if dto.ImageURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "banner image is required")
	}

	banner := &models.Banner{
		Title:    dto.Title,
		Link:     dto.Link,
		ImageURL: dto.ImageURL,
		Status:   enums.EntityStatusInactive,
	}
	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create banner")
	}
	return banner, nil
}
