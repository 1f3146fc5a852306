package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/pkg/db/models"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// CreateBlogDTO carries the validated input for a new editorial post.
type CreateBlogDTO struct {
	Title        string
	Author       string
	Category     string
	Description  string
	ReadMoreLink string
	ImageURL     string
}

// BlogService owns the blog post lifecycle.
type BlogService struct {
	Service[models.Blog]
}

func NewBlogService(conn *gorm.DB) *BlogService {
	return &BlogService{Service: newService(NewRepository[models.Blog](conn))}
}

func (s *BlogService) Create(ctx context.Context, dto CreateBlogDTO) (*models.Blog, error) {
	title := strings.TrimSpace(dto.Title)
	switch {
	case title == "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "blog title is required")
	case strings.TrimSpace(dto.Author) == "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "blog author is required")
	case strings.TrimSpace(dto.Description) == "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "blog description is required")
	case dto.ImageURL == "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "blog image is required")
	}

	blog := &models.Blog{
		Title:        title,
		Author:       strings.TrimSpace(dto.Author),
		Category:     strings.TrimSpace(dto.Category),
		Description:  dto.Description,
		ReadMoreLink: dto.ReadMoreLink,
		ImageURL:     dto.ImageURL,
		Status:       enums.EntityStatusActive,
	}
	if err := s.repo.Create(ctx, blog); err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "blog title already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create blog")
	}
	return blog, nil
}

// UpdateImage swaps the cover image URL after a successful upload.
func (s *BlogService) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) (*models.Blog, error) {
	if imageURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image url is required")
	}
	if err := s.repo.Update(ctx, id, map[string]any{"image_url": imageURL}); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}
