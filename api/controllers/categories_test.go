package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/internal/catalog"
	"github.com/velora-labs/storefront-backend/internal/uploads"
)

type stubUploader struct {
	url string
	err error
}

func (s stubUploader) Upload(ctx context.Context, input uploads.UploadInput) (*uploads.UploadOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	if _, err := io.Copy(io.Discard, input.Body); err != nil {
		return nil, err
	}
	return &uploads.UploadOutput{Key: "assets/images/test", URL: s.url, ContentType: input.MimeType}, nil
}

func setupCategoryService(t *testing.T) *catalog.CategoryService {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	schema := `
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  image_url TEXT,
  status TEXT NOT NULL DEFAULT 'active',
  created_at DATETIME,
  updated_at DATETIME
);`
	if err := conn.Exec(schema).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return catalog.NewCategoryService(conn)
}

func multipartBody(t *testing.T, fileField, fileName string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("binary-bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestCategoryCreateStoresUploadedImage(t *testing.T) {
	svc := setupCategoryService(t)
	handler := CategoryCreate(svc, stubUploader{url: "https://cdn.example.com/assets/images/flowers.png"}, nil)

	body, contentType := multipartBody(t, "image", "flowers.png", map[string]string{"name": "Flowers"})
	req := httptest.NewRequest(http.MethodPost, "/api/categories/add", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data catalog.CategoryDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Name != "Flowers" {
		t.Fatalf("unexpected name: %q", envelope.Data.Name)
	}
	if envelope.Data.ImageURL != "https://cdn.example.com/assets/images/flowers.png" {
		t.Fatalf("unexpected image url: %q", envelope.Data.ImageURL)
	}
}

func TestCategoryCreateRequiresImage(t *testing.T) {
	svc := setupCategoryService(t)
	handler := CategoryCreate(svc, stubUploader{url: "unused"}, nil)

	body, contentType := multipartBody(t, "", "", map[string]string{"name": "Flowers"})
	req := httptest.NewRequest(http.MethodPost, "/api/categories/add", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCategoryToggleStatusRoundTrip(t *testing.T) {
	svc := setupCategoryService(t)

	created, err := svc.Create(context.Background(), catalog.CreateCategoryDTO{Name: "Gifts", ImageURL: "https://cdn.example.com/gifts.png"})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}

	handler := CategoryToggleStatus(svc, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", created.ID.String())
	req := httptest.NewRequest(http.MethodPut, "/api/categories/"+created.ID.String()+"/toggle", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != "inactive" {
		t.Fatalf("expected inactive after toggle, got %q", envelope.Data.Status)
	}
}
