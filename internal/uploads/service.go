package uploads

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/velora-labs/storefront-backend/pkg/config"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// Kind selects the asset folder and the mime types accepted for it.
type Kind string

const (
	KindImage Kind = "images"
	KindVideo Kind = "videos"
)

var mimeTypesByKind = map[Kind][]string{
	KindImage: {"image/png", "image/jpeg", "image/webp", "image/gif"},
	KindVideo: {"video/mp4", "video/webm"},
}

// ParseKind converts raw input into a Kind. Empty input means images, the
// common case for catalog assets.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "image", "images":
		return KindImage, nil
	case "video", "videos":
		return KindVideo, nil
	default:
		return "", fmt.Errorf("invalid upload kind %q", value)
	}
}

type objectStore interface {
	UploadObject(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// UploadInput models one incoming multipart file.
type UploadInput struct {
	Kind      Kind
	FileName  string
	MimeType  string
	SizeBytes int64
	Body      io.Reader
}

// UploadOutput is returned to the client after the object is stored.
type UploadOutput struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
}

// Service validates and stores asset uploads.
type Service interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
}

type service struct {
	store    objectStore
	maxBytes int64
}

// NewService constructs an uploads service over the provided object store.
func NewService(store objectStore, cfg config.UploadsConfig) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("object store is required")
	}
	maxMB := cfg.MaxUploadMB
	if maxMB <= 0 {
		return nil, fmt.Errorf("max upload size must be positive")
	}
	return &service{
		store:    store,
		maxBytes: int64(maxMB) * 1024 * 1024,
	}, nil
}

func (s *service) Upload(ctx context.Context, input UploadInput) (*UploadOutput, error) {
	if _, ok := mimeTypesByKind[input.Kind]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid upload kind")
	}

	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file name is required")
	}
	if input.Body == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file body is required")
	}
	if input.SizeBytes <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file size must be positive")
	}
	if input.SizeBytes > s.maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("file exceeds the %d byte upload limit", s.maxBytes))
	}

	mimeType, err := sniffMimeType(input.MimeType)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	if !isAllowedMime(input.Kind, mimeType) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "mime type not allowed for upload kind")
	}

	key := buildObjectKey(input.Kind, uuid.New(), fileName)

	// a hard reader cap backstops clients that lie about size
	url, err := s.store.UploadObject(ctx, key, mimeType, io.LimitReader(input.Body, s.maxBytes))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store upload")
	}

	return &UploadOutput{
		Key:         key,
		URL:         url,
		ContentType: mimeType,
	}, nil
}

func isAllowedMime(kind Kind, mimeType string) bool {
	for _, candidate := range mimeTypesByKind[kind] {
		if strings.EqualFold(candidate, mimeType) {
			return true
		}
	}
	return false
}

func sniffMimeType(value string) (string, error) {
	clean := strings.TrimSpace(value)
	if clean == "" {
		return "", fmt.Errorf("mime type required")
	}
	mediaType, _, err := mime.ParseMediaType(clean)
	if err != nil {
		return "", fmt.Errorf("mime type invalid: %v", err)
	}
	return strings.ToLower(mediaType), nil
}

func buildObjectKey(kind Kind, id uuid.UUID, fileName string) string {
	cleanName := sanitizeFileName(fileName)
	if cleanName == "" {
		cleanName = id.String()
	}
	return fmt.Sprintf("assets/%s/%s/%s", kind, id.String(), cleanName)
}

func sanitizeFileName(name string) string {
	if name == "" {
		return ""
	}
	clean := path.Base(strings.TrimSpace(name))
	if clean == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(clean))
	for _, r := range clean {
		switch {
		case r == '/' || r == '\\' || unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-_.")
}
