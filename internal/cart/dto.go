package cart

import (
	"github.com/google/uuid"

	"github.com/velora-labs/storefront-backend/internal/catalog"
	"github.com/velora-labs/storefront-backend/pkg/db/models"
)

// ItemDTO is one cart line joined with its product.
type ItemDTO struct {
	ProductID      uuid.UUID           `json:"product_id"`
	Product        *catalog.ProductDTO `json:"product,omitempty"`
	Quantity       int                 `json:"quantity"`
	LineTotalCents int                 `json:"line_total_cents"`
}

// CartDTO is the full cart view returned by every cart endpoint, so the
// storefront can re-render after any mutation without a second request.
type CartDTO struct {
	Items         []ItemDTO `json:"items"`
	TotalQuantity int       `json:"total_quantity"`
	SubtotalCents int       `json:"subtotal_cents"`
}

func itemFromModel(item *models.CartItem) ItemDTO {
	dto := ItemDTO{
		ProductID: item.ProductID,
		Product:   catalog.ProductFromModel(item.Product),
		Quantity:  item.Quantity,
	}
	if item.Product != nil {
		dto.LineTotalCents = item.Product.PriceCents * item.Quantity
	}
	return dto
}

func cartFromItems(items []models.CartItem) *CartDTO {
	dto := &CartDTO{Items: make([]ItemDTO, 0, len(items))}
	for i := range items {
		line := itemFromModel(&items[i])
		dto.Items = append(dto.Items, line)
		dto.TotalQuantity += line.Quantity
		dto.SubtotalCents += line.LineTotalCents
	}
	return dto
}
