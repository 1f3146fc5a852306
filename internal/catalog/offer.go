package catalog

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/pkg/db/models"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// CreateOfferDTO carries the validated input for a new promotional offer.
type CreateOfferDTO struct {
	Tag             string
	Title           string
	SubDescription  string
	PriceCents      int
	Rating          float64
	OfferCode       string
	ProductQuantity int
	ImageURL        string
}

// OfferService owns the promotional offer lifecycle. Offers start inactive
// and are switched on explicitly once the campaign goes live.
type OfferService struct {
	Service[models.Offer]
}

func NewOfferService(conn *gorm.DB) *OfferService {
	return &OfferService{Service: newService(NewRepository[models.Offer](conn))}
}

func (s *OfferService) Create(ctx context.Context, dto CreateOfferDTO) (*models.Offer, error) {
	code := strings.ToUpper(strings.TrimSpace(dto.OfferCode))
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "offer code is required")
	}
	if dto.PriceCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	if dto.ProductQuantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product quantity must not be negative")
	}

	offer := &models.Offer{
		Tag:             dto.Tag,
		Title:           dto.Title,
		SubDescription:  dto.SubDescription,
		PriceCents:      dto.PriceCents,
		Rating:          dto.Rating,
		OfferCode:       code,
		ProductQuantity: dto.ProductQuantity,
		ImageURL:        dto.ImageURL,
		Status:          enums.EntityStatusInactive,
	}
	if err := s.repo.Create(ctx, offer); err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "offer code already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create offer")
	}
	return offer, nil
}
