package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// Form field readers for multipart create endpoints. JSON endpoints go
// through validators.DecodeJSONBody instead; these exist because file
// uploads and their metadata arrive in the same multipart body.

func formString(r *http.Request, field string) string {
	return strings.TrimSpace(r.FormValue(field))
}

func requireFormString(r *http.Request, field string) (string, error) {
	value := formString(r, field)
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, field+" is required").
			WithDetails(map[string]any{"field": field})
	}
	return value, nil
}

func formInt(r *http.Request, field string) (int, error) {
	raw := formString(r, field)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, field+" must be an integer").
			WithDetails(map[string]any{"field": field})
	}
	return value, nil
}

func formFloat(r *http.Request, field string) (float64, error) {
	raw := formString(r, field)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, field+" must be a number").
			WithDetails(map[string]any{"field": field})
	}
	return value, nil
}

func requireFormUUID(r *http.Request, field string) (uuid.UUID, error) {
	raw := formString(r, field)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, field+" must be a valid id").
			WithDetails(map[string]any{"field": field})
	}
	return id, nil
}
