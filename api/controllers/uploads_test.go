package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/velora-labs/storefront-backend/internal/uploads"
)

func TestUploadStoresFile(t *testing.T) {
	handler := Upload(stubUploader{url: "https://cdn.example.com/assets/images/shot.png"}, nil)

	body, contentType := multipartBody(t, "file", "shot.png", map[string]string{"kind": "images"})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data uploads.UploadOutput `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.URL != "https://cdn.example.com/assets/images/shot.png" {
		t.Fatalf("unexpected url: %q", envelope.Data.URL)
	}
}

func TestUploadRejectsUnknownKind(t *testing.T) {
	handler := Upload(stubUploader{url: "unused"}, nil)

	body, contentType := multipartBody(t, "file", "shot.png", map[string]string{"kind": "documents"})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	handler := Upload(stubUploader{url: "unused"}, nil)

	body, contentType := multipartBody(t, "", "", map[string]string{"kind": "images"})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
