package controllers

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/velora-labs/storefront-backend/internal/uploads"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// maxMultipartMemory bounds how much of a multipart body is buffered in
// memory before spilling to disk. Larger files stream from temp files.
const maxMultipartMemory = 8 << 20

// formFile pulls a single named file part out of a multipart request.
// A missing part comes back as a validation error naming the field.
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body")
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "file is required").
			WithDetails(map[string]any{"field": field})
	}
	return file, header, nil
}

// uploadFormFile stores a multipart file part through the uploads
// service and returns the public URL of the stored object.
func uploadFormFile(ctx context.Context, svc uploads.Service, kind uploads.Kind, file multipart.File, header *multipart.FileHeader) (string, error) {
	out, err := svc.Upload(ctx, uploads.UploadInput{
		Kind:      kind,
		FileName:  header.Filename,
		MimeType:  header.Header.Get("Content-Type"),
		SizeBytes: header.Size,
		Body:      file,
	})
	if err != nil {
		return "", err
	}
	return out.URL, nil
}

// optionalFormFile is formFile for parts that may legitimately be
// absent. It reports absence with a nil header and no error.
func optionalFormFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body")
	}
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body")
	}
	return file, header, nil
}
