package controllers

import (
	"net/http"

	"github.com/velora-labs/storefront-backend/api/responses"
	"github.com/velora-labs/storefront-backend/api/validators"
	"github.com/velora-labs/storefront-backend/internal/catalog"
	"github.com/velora-labs/storefront-backend/internal/uploads"
	"github.com/velora-labs/storefront-backend/pkg/logger"
)

// BlogCreate handles the multipart admin form: a cover image plus the
// post fields.
func BlogCreate(svc *catalog.BlogService, uploader uploads.Service, logg *logger.Logger) http.HandlerFunc {
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
		author, err := requireFormString(r, "author")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		description, err := requireFormString(r, "description")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		imageURL, err := uploadFormFile(r.Context(), uploader, uploads.KindImage, file, header)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), catalog.CreateBlogDTO{
			Title:        title,
			Author:       author,
			Category:     formString(r, "category"),
			Description:  description,
			ReadMoreLink: formString(r, "read_more_link"),
			ImageURL:     imageURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, catalog.BlogFromModel(created))
	}
}

// BlogUpdateImage replaces the cover image via a multipart upload.
func BlogUpdateImage(svc *catalog.BlogService, uploader uploads.Service, logg *logger.Logger) http.HandlerFunc {
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
		responses.WriteSuccess(w, catalog.BlogFromModel(updated))
	}
}

// BlogList returns every post regardless of status. Admin read.
func BlogList(svc *catalog.BlogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.BlogsFromModels(list))
	}
}

// BlogListActive returns the storefront-visible posts.
func BlogListActive(svc *catalog.BlogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.BlogsFromModels(list))
	}
}

// BlogSetStatus writes an explicit active/inactive status.
func BlogSetStatus(svc *catalog.BlogService, logg *logger.Logger) http.HandlerFunc {
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

// BlogToggleStatus flips active to inactive and back.
func BlogToggleStatus(svc *catalog.BlogService, logg *logger.Logger) http.HandlerFunc {
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

// BlogDelete removes a post permanently.
func BlogDelete(svc *catalog.BlogService, logg *logger.Logger) http.HandlerFunc {
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
