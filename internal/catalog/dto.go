package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/velora-labs/storefront-backend/pkg/db/models"
	"github.com/velora-labs/storefront-backend/pkg/enums"
)

type CategoryDTO struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	ImageURL  string             `json:"image_url,omitempty"`
	Status    enums.EntityStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type ProductDTO struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	PriceCents  int                `json:"price_cents"`
	Rating      float64            `json:"rating"`
	CategoryID  uuid.UUID          `json:"category_id"`
	Category    *CategoryDTO       `json:"category,omitempty"`
	ImageURL    string             `json:"image_url"`
	VideoURL    string             `json:"video_url,omitempty"`
	Posters     []string           `json:"posters,omitempty"`
	Status      enums.EntityStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type BannerDTO struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title,omitempty"`
	Link      string             `json:"link,omitempty"`
	ImageURL  string             `json:"image_url"`
	Status    enums.EntityStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type BlogDTO struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Author       string             `json:"author"`
	Category     string             `json:"category"`
	Description  string             `json:"description"`
	ReadMoreLink string             `json:"read_more_link,omitempty"`
	ImageURL     string             `json:"image_url"`
	Status       enums.EntityStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type OfferDTO struct {
	ID              uuid.UUID          `json:"id"`
	Tag             string             `json:"tag,omitempty"`
	Title           string             `json:"title,omitempty"`
	SubDescription  string             `json:"sub_description,omitempty"`
	PriceCents      int                `json:"price_cents"`
	Rating          float64            `json:"rating"`
	OfferCode       string             `json:"offer_code"`
	ProductQuantity int                `json:"product_quantity"`
	ImageURL        string             `json:"image_url,omitempty"`
	Status          enums.EntityStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func CategoryFromModel(m *models.Category) *CategoryDTO {
	if m == nil {
		return nil
	}
	return &CategoryDTO{
		ID:        m.ID,
		Name:      m.Name,
		ImageURL:  m.ImageURL,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func CategoriesFromModels(list []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(list))
	for i := range list {
		out = append(out, *CategoryFromModel(&list[i]))
	}
	return out
}

func ProductFromModel(m *models.Product) *ProductDTO {
	if m == nil {
		return nil
	}
	return &ProductDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		PriceCents:  m.PriceCents,
		Rating:      m.Rating,
		CategoryID:  m.CategoryID,
		Category:    CategoryFromModel(m.Category),
		ImageURL:    m.ImageURL,
		VideoURL:    m.VideoURL,
		Posters:     append([]string(nil), m.Posters...),
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ProductsFromModels(list []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(list))
	for i := range list {
		out = append(out, *ProductFromModel(&list[i]))
	}
	return out
}

func BannerFromModel(m *models.Banner) *BannerDTO {
	if m == nil {
		return nil
	}
	return &BannerDTO{
		ID:        m.ID,
		Title:     m.Title,
		Link:      m.Link,
		ImageURL:  m.ImageURL,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func BannersFromModels(list []models.Banner) []BannerDTO {
	out := make([]BannerDTO, 0, len(list))
	for i := range list {
		out = append(out, *BannerFromModel(&list[i]))
	}
	return out
}

func BlogFromModel(m *models.Blog) *BlogDTO {
	if m == nil {
		return nil
	}
	return &BlogDTO{
		ID:           m.ID,
		Title:        m.Title,
		Author:       m.Author,
		Category:     m.Category,
		Description:  m.Description,
		ReadMoreLink: m.ReadMoreLink,
		ImageURL:     m.ImageURL,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func BlogsFromModels(list []models.Blog) []BlogDTO {
	out := make([]BlogDTO, 0, len(list))
	for i := range list {
		out = append(out, *BlogFromModel(&list[i]))
	}
	return out
}

func OfferFromModel(m *models.Offer) *OfferDTO {
	if m == nil {
		return nil
	}
	return &OfferDTO{
		ID:              m.ID,
		Tag:             m.Tag,
		Title:           m.Title,
		SubDescription:  m.SubDescription,
		PriceCents:      m.PriceCents,
		Rating:          m.Rating,
		OfferCode:       m.OfferCode,
		ProductQuantity: m.ProductQuantity,
		ImageURL:        m.ImageURL,
		Status:          m.Status,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func OffersFromModels(list []models.Offer) []OfferDTO {
	out := make([]OfferDTO, 0, len(list))
	for i := range list {
		out = append(out, *OfferFromModel(&list[i]))
	}
	return out
}
