package uploads

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/velora-labs/storefront-backend/pkg/config"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

type fakeStore struct {
	lastKey         string
	lastContentType string
	payload         []byte
	err             error
}

func (f *fakeStore) UploadObject(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastKey = key
	f.lastContentType = contentType
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.payload = data
	return "https://storage.googleapis.com/test-bucket/" + key, nil
}

func buildUploadsService(t *testing.T, store *fakeStore) Service {
	t.Helper()
	svc, err := NewService(store, config.UploadsConfig{MaxUploadMB: 1})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestUploadImage(t *testing.T) {
	store := &fakeStore{}
	svc := buildUploadsService(t, store)

	out, err := svc.Upload(context.Background(), UploadInput{
		Kind:      KindImage,
		FileName:  "Hero Banner.PNG",
		MimeType:  "image/png",
		SizeBytes: 128,
		Body:      strings.NewReader("png-bytes"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if !strings.HasPrefix(out.Key, "assets/images/") {
		t.Errorf("expected images folder in key, got %q", out.Key)
	}
	if !strings.HasSuffix(out.Key, "/Hero-Banner.PNG") {
		t.Errorf("expected sanitized filename in key, got %q", out.Key)
	}
	if out.URL != "https://storage.googleapis.com/test-bucket/"+out.Key {
		t.Errorf("unexpected url %q", out.URL)
	}
	if store.lastContentType != "image/png" {
		t.Errorf("expected image/png content type, got %q", store.lastContentType)
	}
	if string(store.payload) != "png-bytes" {
		t.Errorf("payload not streamed to store")
	}
}

func TestUploadRejectsMismatchedMime(t *testing.T) {
	svc := buildUploadsService(t, &fakeStore{})

	cases := []struct {
		name string
		kind Kind
		mime string
	}{
		{"pdf as image", KindImage, "application/pdf"},
		{"video as image", KindImage, "video/mp4"},
		{"image as video", KindVideo, "image/png"},
		{"empty mime", KindImage, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), UploadInput{
				Kind:      tc.kind,
				FileName:  "file.bin",
				MimeType:  tc.mime,
				SizeBytes: 10,
				Body:      strings.NewReader("x"),
			})
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := buildUploadsService(t, &fakeStore{})

	_, err := svc.Upload(context.Background(), UploadInput{
		Kind:      KindImage,
		FileName:  "big.png",
		MimeType:  "image/png",
		SizeBytes: 2 * 1024 * 1024,
		Body:      strings.NewReader("x"),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadVideoKind(t *testing.T) {
	store := &fakeStore{}
	svc := buildUploadsService(t, store)

	out, err := svc.Upload(context.Background(), UploadInput{
		Kind:      KindVideo,
		FileName:  "demo.mp4",
		MimeType:  "video/mp4; codecs=avc1",
		SizeBytes: 256,
		Body:      strings.NewReader("mp4-bytes"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(out.Key, "assets/videos/") {
		t.Errorf("expected videos folder in key, got %q", out.Key)
	}
	if out.ContentType != "video/mp4" {
		t.Errorf("expected parameters stripped from content type, got %q", out.ContentType)
	}
}

func TestParseKind(t *testing.T) {
	for raw, want := range map[string]Kind{
		"":       KindImage,
		"image":  KindImage,
		"Images": KindImage,
		"video":  KindVideo,
		"videos": KindVideo,
	} {
		got, err := ParseKind(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Errorf("parse %q: expected %s, got %s", raw, want, got)
		}
	}
	if _, err := ParseKind("documents"); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}
