package controllers

import (
	"net/http"

	"github.com/velora-labs/storefront-backend/api/responses"
	"github.com/velora-labs/storefront-backend/api/validators"
	"github.com/velora-labs/storefront-backend/internal/catalog"
	"github.com/velora-labs/storefront-backend/internal/uploads"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
	"github.com/velora-labs/storefront-backend/pkg/logger"
)

// ProductCreate handles the multipart admin form: a required image, an
// optional video, and the listing fields.
func ProductCreate(svc *catalog.ProductService, uploader uploads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := formFile(r, "image")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer file.Close()

		title, err := requireFormString(r, "title")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		categoryID, err := requireFormUUID(r, "category_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		priceCents, err := formInt(r, "price_cents")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rating, err := formFloat(r, "rating")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		imageURL, err := uploadFormFile(r.Context(), uploader, uploads.KindImage, file, header)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		videoURL := ""
		if videoFile, videoHeader, err := optionalFormFile(r, "video"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		} else if videoHeader != nil {
			defer videoFile.Close()
			videoURL, err = uploadFormFile(r.Context(), uploader, uploads.KindVideo, videoFile, videoHeader)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		var posters []string
		if r.MultipartForm != nil {
			for _, posterHeader := range r.MultipartForm.File["posters"] {
				posterFile, err := posterHeader.Open()
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body"))
					return
				}
				posterURL, err := uploadFormFile(r.Context(), uploader, uploads.KindImage, posterFile, posterHeader)
				posterFile.Close()
				if err != nil {
					responses.WriteError(r.Context(), logg, w, err)
					return
				}
				posters = append(posters, posterURL)
			}
		}

		created, err := svc.Create(r.Context(), catalog.CreateProductDTO{
			Title:       title,
			Description: formString(r, "description"),
			PriceCents:  priceCents,
			Rating:      rating,
			CategoryID:  categoryID,
			ImageURL:    imageURL,
			VideoURL:    videoURL,
			Posters:     posters,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, catalog.ProductFromModel(created))
	}
}

// ProductList returns every listing with its category preloaded. Admin read.
func ProductList(svc *catalog.ProductService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListWithCategory(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.ProductsFromModels(list))
	}
}

// ProductListActive returns the storefront-visible listings.
func ProductListActive(svc *catalog.ProductService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.ProductsFromModels(list))
	}
}

// ProductListByCategory returns the active listings under one category.
func ProductListByCategory(svc *catalog.ProductService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := validators.ParseUUIDParam(r, "categoryID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListByCategory(r.Context(), categoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.ProductsFromModels(list))
	}
}

// ProductGet returns one listing by id.
func ProductGet(svc *catalog.ProductService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.ProductFromModel(product))
	}
}

type productUpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	PriceCents  *int     `json:"price_cents,omitempty" validate:"omitempty,min=0"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	VideoURL    *string  `json:"video_url,omitempty"`
}

// ProductUpdate applies a partial JSON update to the listing fields.
func ProductUpdate(svc *catalog.ProductService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, catalog.UpdateProductDTO{
			Title:       payload.Title,
			Description: payload.Description,
			PriceCents:  payload.PriceCents,
			Rating:      payload.Rating,
			VideoURL:    payload.VideoURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.ProductFromModel(updated))
	}
}

// ProductUpdateImage replaces the primary image via a multipart upload.
func ProductUpdateImage(svc *catalog.ProductService, uploader uploads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		file, header, err := formFile(r, "image")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer file.Close()

		imageURL, err := uploadFormFile(r.Context(), uploader, uploads.KindImage, file, header)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateImage(r.Context(), id, imageURL)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.ProductFromModel(updated))
	}
}

// ProductSetStatus writes an explicit active/inactive status.
func ProductSetStatus(svc *catalog.ProductService, logg *logger.Logger) http.HandlerFunc {
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

// ProductToggleStatus flips active to inactive and back.
func ProductToggleStatus(svc *catalog.ProductService, logg *logger.Logger) http.HandlerFunc {
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

// ProductDelete removes a listing permanently.
func ProductDelete(svc *catalog.ProductService, logg *logger.Logger) http.HandlerFunc {
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

