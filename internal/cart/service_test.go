package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/internal/catalog"
	"github.com/velora-labs/storefront-backend/pkg/db/models"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	stmts := []string{`
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL UNIQUE,
  description TEXT,
  price_cents INTEGER NOT NULL,
  rating REAL NOT NULL DEFAULT 0,
  category_id TEXT NOT NULL,
  image_url TEXT NOT NULL,
  video_url TEXT,
  posters TEXT,
  status TEXT NOT NULL DEFAULT 'active',
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS carts (
  id TEXT PRIMARY KEY,
  owner_key TEXT NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS cart_items (
  id TEXT PRIMARY KEY,
  cart_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (cart_id, product_id)
);`}
	for _, stmt := range stmts {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func buildCartService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:     NewRepository(conn),
		Products: catalog.NewRepository[models.Product](conn),
	})
	require.NoError(t, err)
	return svc
}

func mustCreateProduct(t *testing.T, conn *gorm.DB, title string, priceCents int, status enums.EntityStatus) *models.Product {
	t.Helper()
	product := &models.Product{
		Title:      title,
		PriceCents: priceCents,
		CategoryID: uuid.New(),
		ImageURL:   "https://storage.googleapis.com/assets/p.png",
		Status:     status,
	}
	require.NoError(t, conn.Create(product).Error)
	return product
}

func TestCartGetUnknownOwnerIsEmpty(t *testing.T) {
	conn := setupCartTestDB(t)
	svc := buildCartService(t, conn)

	dto, err := svc.Get(context.Background(), "session-without-cart")
	require.NoError(t, err)
	assert.Empty(t, dto.Items)
	assert.Zero(t, dto.TotalQuantity)
	assert.Zero(t, dto.SubtotalCents)
}

func TestCartAddTwiceMergesLine(t *testing.T) {
	conn := setupCartTestDB(t)
	svc := buildCartService(t, conn)
	product := mustCreateProduct(t, conn, "Basil Starter", 499, enums.EntityStatusActive)

	_, err := svc.Add(context.Background(), "sess-1", product.ID)
	require.NoError(t, err)
	dto, err := svc.Add(context.Background(), "sess-1", product.ID)
	require.NoError(t, err)

	require.Len(t, dto.Items, 1)
	assert.Equal(t, 2, dto.Items[0].Quantity)
	assert.Equal(t, 2, dto.TotalQuantity)
	assert.Equal(t, 998, dto.SubtotalCents)
	require.NotNil(t, dto.Items[0].Product)
	assert.Equal(t, "Basil Starter", dto.Items[0].Product.Title)
}

func TestCartAddInactiveProduct(t *testing.T) {
	conn := setupCartTestDB(t)
	svc := buildCartService(t, conn)
	product := mustCreateProduct(t, conn, "Retired Fern", 999, enums.EntityStatusInactive)

	_, err := svc.Add(context.Background(), "sess-1", product.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCartAddUnknownProduct(t *testing.T) {
	conn := setupCartTestDB(t)
	svc := buildCartService(t, conn)

	_, err := svc.Add(context.Background(), "sess-1", uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestCartDecrementAtOneRemovesLine(t *testing.T) {
	conn := setupCartTestDB(t)
	svc := buildCartService(t, conn)
	product := mustCreateProduct(t, conn, "Basil Starter", 499, enums.EntityStatusActive)

	_, err := svc.Add(context.Background(), "sess-1", product.ID)
	require.NoError(t, err)

	dto, err := svc.Decrement(context.Background(), "sess-1", product.ID)
	require.NoError(t, err)
	assert.Empty(t, dto.Items)

	var count int64
	require.NoError(t, conn.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count, "quantity zero lines must be deleted, not kept")
}

func TestCartIncrementThenDecrement(t *testing.T) {
	conn := setupCartTestDB(t)
	svc := buildCartService(t, conn)
	product := mustCreateProduct(t, conn, "Basil Starter", 499, enums.EntityStatusActive)

	_, err := svc.Add(context.Background(), "sess-1", product.ID)
	require.NoError(t, err)
	dto, err := svc.Increment(context.Background(), "sess-1", product.ID)
	require.NoError(t, err)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, 2, dto.Items[0].Quantity)

	dto, err = svc.Decrement(context.Background(), "sess-1", product.ID)
	require.NoError(t, err)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, 1, dto.Items[0].Quantity)
}

func TestCartMutateMissingLine(t *testing.T) {
	conn := setupCartTestDB(t)
	svc := buildCartService(t, conn)
	product := mustCreateProduct(t, conn, "Basil Starter", 499, enums.EntityStatusActive)
	other := mustCreateProduct(t, conn, "Maple Sapling", 2999, enums.EntityStatusActive)

	_, err := svc.Add(context.Background(), "sess-1", product.ID)
	require.NoError(t, err)

	for _, op := range []func(context.Context, string, uuid.UUID) (*CartDTO, error){
		svc.Increment, svc.Decrement, svc.Remove,
	} {
		_, err := op(context.Background(), "sess-1", other.ID)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	}

	// mutations with no cart at all answer the same way
	_, err = svc.Increment(context.Background(), "sess-never-seen", product.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestCartRemoveAndClear(t *testing.T) {
	conn := setupCartTestDB(t)
	svc := buildCartService(t, conn)
	basil := mustCreateProduct(t, conn, "Basil Starter", 499, enums.EntityStatusActive)
	maple := mustCreateProduct(t, conn, "Maple Sapling", 2999, enums.EntityStatusActive)

	_, err := svc.Add(context.Background(), "sess-1", basil.ID)
	require.NoError(t, err)
	_, err = svc.Increment(context.Background(), "sess-1", basil.ID)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "sess-1", maple.ID)
	require.NoError(t, err)

	dto, err := svc.Remove(context.Background(), "sess-1", basil.ID)
	require.NoError(t, err)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, maple.ID, dto.Items[0].ProductID)

	dto, err = svc.Clear(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, dto.Items)

	// clearing an owner that never had a cart is a quiet no-op
	dto, err = svc.Clear(context.Background(), "sess-2")
	require.NoError(t, err)
	assert.Empty(t, dto.Items)
}

func TestCartsAreScopedByOwnerKey(t *testing.T) {
	conn := setupCartTestDB(t)
	svc := buildCartService(t, conn)
	product := mustCreateProduct(t, conn, "Basil Starter", 499, enums.EntityStatusActive)

	_, err := svc.Add(context.Background(), "sess-a", product.ID)
	require.NoError(t, err)

	dto, err := svc.Get(context.Background(), "sess-b")
	require.NoError(t, err)
	assert.Empty(t, dto.Items)
}
