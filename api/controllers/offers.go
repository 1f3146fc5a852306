package controllers

import (
	"net/http"

	"github.com/velora-labs/storefront-backend/api/responses"
	"github.com/velora-labs/storefront-backend/api/validators"
	"github.com/velora-labs/storefront-backend/internal/catalog"
	"github.com/velora-labs/storefront-backend/internal/uploads"
	"github.com/velora-labs/storefront-backend/pkg/logger"
)

// OfferCreate handles the multipart admin form. Offers start inactive
// like banners; the image is optional.
func OfferCreate(svc *catalog.OfferService, uploader uploads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offerCode, err := requireFormString(r, "offer_code")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		priceCents, err := formInt(r, "price_cents")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		quantity, err := formInt(r, "product_quantity")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rating, err := formFloat(r, "rating")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		imageURL := ""
		if file, header, err := optionalFormFile(r, "image"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		} else if header != nil {
			defer file.Close()
			imageURL, err = uploadFormFile(r.Context(), uploader, uploads.KindImage, file, header)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		created, err := svc.Create(r.Context(), catalog.CreateOfferDTO{
			Tag:             formString(r, "tag"),
			Title:           formString(r, "title"),
			SubDescription:  formString(r, "sub_description"),
			PriceCents:      priceCents,
			Rating:          rating,
			OfferCode:       offerCode,
			ProductQuantity: quantity,
			ImageURL:        imageURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, catalog.OfferFromModel(created))
	}
}

// OfferList returns every offer regardless of status. Admin read.
func OfferList(svc *catalog.OfferService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.OffersFromModels(list))
	}
}

// OfferListActive returns the storefront-visible offers.
func OfferListActive(svc *catalog.OfferService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.OffersFromModels(list))
	}
}

// OfferSetStatus writes an explicit active/inactive status.
func OfferSetStatus(svc *catalog.OfferService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload statusUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		status, err := payload.parse()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetStatus(r.Context(), id, status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": id, "status": status})
	}
}

// OfferToggleStatus flips active to inactive and back.
func OfferToggleStatus(svc *catalog.OfferService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := svc.ToggleStatus(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": id, "status": status})
	}
}

// OfferDelete removes an offer permanently.
func OfferDelete(svc *catalog.OfferService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
