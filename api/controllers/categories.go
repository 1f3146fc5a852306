package controllers

import (
	"net/http"

	"github.com/velora-labs/storefront-backend/api/responses"
	"github.com/velora-labs/storefront-backend/api/validators"
	"github.com/velora-labs/storefront-backend/internal/catalog"
	"github.com/velora-labs/storefront-backend/internal/uploads"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
	"github.com/velora-labs/storefront-backend/pkg/logger"
)

// statusUpdateRequest is the shared body for explicit status writes
// across the catalog admin endpoints.
type statusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

func (req statusUpdateRequest) parse() (enums.EntityStatus, error) {
	status, err := enums.ParseEntityStatus(req.Status)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid status").
			WithDetails(map[string]any{"field": "status"})
	}
	return status, nil
}

// CategoryCreate handles the multipart admin form: an image file plus a
// category name.
func CategoryCreate(svc *catalog.CategoryService, uploader uploads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := formFile(r, "image")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer file.Close()

		name, err := requireFormString(r, "name")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		imageURL, err := uploadFormFile(r.Context(), uploader, uploads.KindImage, file, header)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), catalog.CreateCategoryDTO{
			Name:     name,
			ImageURL: imageURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, catalog.CategoryFromModel(created))
	}
}

// CategoryList returns every category regardless of status. Admin read.
func CategoryList(svc *catalog.CategoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.CategoriesFromModels(list))
	}
}

// CategoryListActive returns the storefront-visible categories.
func CategoryListActive(svc *catalog.CategoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.CategoriesFromModels(list))
	}
}

// CategorySetStatus writes an explicit active/inactive status.
func CategorySetStatus(svc *catalog.CategoryService, logg *logger.Logger) http.HandlerFunc {
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

// CategoryToggleStatus flips active to inactive and back.
func CategoryToggleStatus(svc *catalog.CategoryService, logg *logger.Logger) http.HandlerFunc {
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

// CategoryDelete removes a category permanently.
func CategoryDelete(svc *catalog.CategoryService, logg *logger.Logger) http.HandlerFunc {
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
