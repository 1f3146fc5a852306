package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/velora-labs/storefront-backend/api/middleware"
	"github.com/velora-labs/storefront-backend/api/responses"
	"github.com/velora-labs/storefront-backend/api/validators"
	"github.com/velora-labs/storefront-backend/internal/cart"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
	"github.com/velora-labs/storefront-backend/pkg/logger"
)

type cartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// ownerKey pulls the cart owner resolved by the CartOwner middleware.
// An empty key means the route was wired without it.
func ownerKey(r *http.Request) (string, error) {
	key := middleware.CartOwnerKeyFromContext(r.Context())
	if key == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "cart owner not resolved")
	}
	return key, nil
}

// cartMutation wraps the shared body-decode-then-mutate shape of the
// four line operations.
func cartMutation(op func(r *http.Request, ownerKey string, productID uuid.UUID) (*cart.CartDTO, error), logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := ownerKey(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := op(r, key, payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartGet returns the caller's cart, empty if none exists yet.
func CartGet(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := ownerKey(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Get(r.Context(), key)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartAdd puts one unit of a product into the cart, merging with any
// existing line.
func CartAdd(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartMutation(func(r *http.Request, ownerKey string, productID uuid.UUID) (*cart.CartDTO, error) {
		return svc.Add(r.Context(), ownerKey, productID)
	}, logg)
}

// CartIncrement raises a line's quantity by one.
func CartIncrement(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartMutation(func(r *http.Request, ownerKey string, productID uuid.UUID) (*cart.CartDTO, error) {
		return svc.Increment(r.Context(), ownerKey, productID)
	}, logg)
}

// CartDecrement lowers a line's quantity by one, removing the line at zero.
func CartDecrement(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartMutation(func(r *http.Request, ownerKey string, productID uuid.UUID) (*cart.CartDTO, error) {
		return svc.Decrement(r.Context(), ownerKey, productID)
	}, logg)
}

// CartRemove drops a line regardless of quantity.
func CartRemove(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartMutation(func(r *http.Request, ownerKey string, productID uuid.UUID) (*cart.CartDTO, error) {
		return svc.Remove(r.Context(), ownerKey, productID)
	}, logg)
}

// CartClear empties the cart.
func CartClear(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := ownerKey(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Clear(r.Context(), key)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
