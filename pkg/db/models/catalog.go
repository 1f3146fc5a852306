package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/pkg/enums"
)

// Category groups products; name is the unique key.
type Category struct {
	ID        uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Name      string             `gorm:"column:name;not null;uniqueIndex"`
	ImageURL  string             `gorm:"column:image_url"`
	Status    enums.EntityStatus `gorm:"column:status;type:text;not null;default:'active'"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Product is a storefront listing; title is the unique key and the category
// reference is checked only at creation time.
type Product struct {
	ID          uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Title       string             `gorm:"column:title;not null;uniqueIndex"`
	Description string             `gorm:"column:description"`
	PriceCents  int                `gorm:"column:price_cents;not null"`
	Rating      float64            `gorm:"column:rating;not null;default:0"`
	CategoryID  uuid.UUID          `gorm:"column:category_id;type:uuid;not null"`
	Category    *Category          `gorm:"foreignKey:CategoryID"`
	ImageURL    string             `gorm:"column:image_url;not null"`
	VideoURL    string             `gorm:"column:video_url"`
	Posters     pq.StringArray     `gorm:"column:posters;type:text[]"`
	Status      enums.EntityStatus `gorm:"column:status;type:text;not null;default:'active'"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Banner is a homepage hero asset.
type Banner struct {
	ID        uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Title     string             `gorm:"column:title"`
	Link      string             `gorm:"column:link"`
	ImageURL  string             `gorm:"column:image_url;not null"`
	Status    enums.EntityStatus `gorm:"column:status;type:text;not null;default:'inactive'"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (b *Banner) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Blog is an editorial post; title is the unique key.
type Blog struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Title        string             `gorm:"column:title;not null;uniqueIndex"`
	Author       string             `gorm:"column:author;not null"`
	Category     string             `gorm:"column:category;not null"`
	Description  string             `gorm:"column:description;not null"`
	ReadMoreLink string             `gorm:"column:read_more_link"`
	ImageURL     string             `gorm:"column:image_url;not null"`
	Status       enums.EntityStatus `gorm:"column:status;type:text;not null;default:'active'"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (b *Blog) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Offer is a promotional card; offer_code is the unique key.
type Offer struct {
	ID              uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Tag             string             `gorm:"column:tag"`
	Title           string             `gorm:"column:title"`
	SubDescription  string             `gorm:"column:sub_description"`
	PriceCents      int                `gorm:"column:price_cents;not null;default:0"`
	Rating          float64            `gorm:"column:rating;not null;default:0"`
	OfferCode       string             `gorm:"column:offer_code;not null;uniqueIndex"`
	ProductQuantity int                `gorm:"column:product_quantity;not null;default:0"`
	ImageURL        string             `gorm:"column:image_url"`
	Status          enums.EntityStatus `gorm:"column:status;type:text;not null;default:'inactive'"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (o *Offer) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
