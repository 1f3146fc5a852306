package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/pkg/db/models"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// Service defines the cart operations exposed to the controller. Every
// method is keyed by the resolved owner key, never by a raw cart id.
type Service interface {
	Get(ctx context.Context, ownerKey string) (*CartDTO, error)
	Add(ctx context.Context, ownerKey string, productID uuid.UUID) (*CartDTO, error)
	Increment(ctx context.Context, ownerKey string, productID uuid.UUID) (*CartDTO, error)
	Decrement(ctx context.Context, ownerKey string, productID uuid.UUID) (*CartDTO, error)
	Remove(ctx context.Context, ownerKey string, productID uuid.UUID) (*CartDTO, error)
	Clear(ctx context.Context, ownerKey string) (*CartDTO, error)
}

type productReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo     *Repository
	products productReader
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	Repo     *Repository
	Products productReader
}

// NewService constructs a cart service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product reader is required")
	}
	return &service{repo: params.Repo, products: params.Products}, nil
}

// Get returns the cart view. An owner with no cart row yet gets an empty
// cart, not an error.
func (s *service) Get(ctx context.Context, ownerKey string) (*CartDTO, error) {
	cart, err := s.repo.FindCart(ctx, ownerKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CartDTO{Items: []ItemDTO{}}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	return s.view(ctx, cart.ID)
}

// Add puts one unit of the product in the cart, creating the cart row on
// first use. Only active products can be added.
func (s *service) Add(ctx context.Context, ownerKey string, productID uuid.UUID) (*CartDTO, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}
	if product.Status != enums.EntityStatusActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is not available")
	}

	cart, err := s.repo.EnsureCart(ctx, ownerKey)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "ensure cart")
	}
	if err := s.repo.AddItem(ctx, cart.ID, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add cart item")
	}
	return s.view(ctx, cart.ID)
}

func (s *service) Increment(ctx context.Context, ownerKey string, productID uuid.UUID) (*CartDTO, error) {
	return s.mutateLine(ctx, ownerKey, productID, s.repo.IncrementItem)
}

func (s *service) Decrement(ctx context.Context, ownerKey string, productID uuid.UUID) (*CartDTO, error) {
	return s.mutateLine(ctx, ownerKey, productID, s.repo.DecrementItem)
}

func (s *service) Remove(ctx context.Context, ownerKey string, productID uuid.UUID) (*CartDTO, error) {
	return s.mutateLine(ctx, ownerKey, productID, s.repo.RemoveItem)
}

// Clear empties the cart. Clearing an owner with no cart is a no-op that
// answers with an empty view.
func (s *service) Clear(ctx context.Context, ownerKey string) (*CartDTO, error) {
	cart, err := s.repo.FindCart(ctx, ownerKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CartDTO{Items: []ItemDTO{}}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	if err := s.repo.ClearItems(ctx, cart.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	return s.view(ctx, cart.ID)
}

func (s *service) mutateLine(ctx context.Context, ownerKey string, productID uuid.UUID, op func(context.Context, uuid.UUID, uuid.UUID) error) (*CartDTO, error) {
	cart, err := s.repo.FindCart(ctx, ownerKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	if err := op(ctx, cart.ID, productID); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update cart item")
	}
	return s.view(ctx, cart.ID)
}

func (s *service) view(ctx context.Context, cartID uuid.UUID) (*CartDTO, error) {
	items, err := s.repo.ListItems(ctx, cartID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cart items")
	}
	return cartFromItems(items), nil
}
