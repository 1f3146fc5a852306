package controllers

import (
	"net/http"

	"github.com/velora-labs/storefront-backend/api/responses"
	"github.com/velora-labs/storefront-backend/api/validators"
	"github.com/velora-labs/storefront-backend/internal/catalog"
	"github.com/velora-labs/storefront-backend/internal/uploads"
	"github.com/velora-labs/storefront-backend/pkg/logger"
)

// BannerCreate handles the multipart admin form. Banners are created
// inactive and published with an explicit status write.
func BannerCreate(svc *catalog.BannerService, uploader uploads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		created, err := svc.Create(r.Context(), catalog.CreateBannerDTO{
			Title:    formString(r, "title"),
			Link:     formString(r, "link"),
			ImageURL: imageURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, catalog.BannerFromModel(created))
	}
}

// BannerList returns every banner regardless of status. Admin read.
func BannerList(svc *catalog.BannerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.BannersFromModels(list))
	}
}

// BannerListActive returns the storefront-visible banners.
func BannerListActive(svc *catalog.BannerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.BannersFromModels(list))
	}
}

// BannerSetStatus writes an explicit active/inactive status.
func BannerSetStatus(svc *catalog.BannerService, logg *logger.Logger) http.HandlerFunc {
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

// BannerToggleStatus flips active to inactive and back.
func BannerToggleStatus(svc *catalog.BannerService, logg *logger.Logger) http.HandlerFunc {
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

// BannerDelete removes a banner permanently.
func BannerDelete(svc *catalog.BannerService, logg *logger.Logger) http.HandlerFunc {
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
