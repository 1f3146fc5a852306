package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/velora-labs/storefront-backend/pkg/db/models"
)

// ErrItemNotFound is returned when a mutation targets a product line that is
// not in the cart.
var ErrItemNotFound = errors.New("cart item not found")

// Repository owns cart persistence. Quantity mutations are single SQL
// statements so concurrent requests against the same line never lose updates.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// EnsureCart returns the cart for the owner key, creating it if absent. The
// unique index on owner_key makes concurrent first-adds converge on one row.
func (r *Repository) EnsureCart(ctx context.Context, ownerKey string) (*models.Cart, error) {
	cart := &models.Cart{OwnerKey: ownerKey}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_key"}},
			DoNothing: true,
		}).
		Create(cart).Error
	if err != nil {
		return nil, err
	}

	var existing models.Cart
	if err := r.db.WithContext(ctx).First(&existing, "owner_key = ?", ownerKey).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// FindCart loads the cart for the owner key without creating one.
func (r *Repository) FindCart(ctx context.Context, ownerKey string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).First(&cart, "owner_key = ?", ownerKey).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// ListItems returns the cart's lines with products preloaded, oldest first so
// the cart renders in the order items were added.
func (r *Repository) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem inserts the line with quantity 1 or bumps the existing quantity.
// The upsert runs as one statement, so two concurrent adds of the same
// product yield quantity 2, never a lost update.
func (r *Repository) AddItem(ctx context.Context, cartID, productID uuid.UUID) error {
	item := &models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  1,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("quantity + 1")}),
		}).
		Create(item).Error
}

// IncrementItem bumps the line quantity by one.
func (r *Repository) IncrementItem(ctx context.Context, cartID, productID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		UpdateColumn("quantity", gorm.Expr("quantity + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// DecrementItem lowers the line quantity by one and deletes the line when it
// would drop below one.
func (r *Repository) DecrementItem(ctx context.Context, cartID, productID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		UpdateColumn("quantity", gorm.Expr("quantity - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND quantity <= 0", cartID, productID).
		Delete(&models.CartItem{}).Error
}

// RemoveItem deletes the line regardless of quantity.
func (r *Repository) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ClearItems removes every line from the cart. Clearing an already empty
// cart is a no-op.
func (r *Repository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}
