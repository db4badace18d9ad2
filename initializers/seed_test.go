package initializers_test

import (
	"context"
	"testing"

	"github.com/Kariqs/hanythrift-api/dbtest"
	"github.com/Kariqs/hanythrift-api/initializers"
	"github.com/Kariqs/hanythrift-api/models"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedCatalogIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	cfg := &initializers.Config{
		SeedSellerEmail:    "seller@hanythrift.local",
		SeedSellerName:     "HanyThrift",
		SeedSellerPassword: "seed-password",
	}
	ctx := context.Background()

	first, err := initializers.SeedCatalog(ctx, db, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, first.SellerCreated)
	assert.Equal(t, 18, first.ProductsCreated)
	assert.True(t, first.Seller.IsSeller)
	assert.True(t, services.VerifyPassword("seed-password", first.Seller.HashedPassword))

	second, err := initializers.SeedCatalog(ctx, db, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, second.SellerCreated)
	assert.Zero(t, second.ProductsCreated)
	assert.Equal(t, first.Seller.ID, second.Seller.ID)

	var sellers, products int64
	require.NoError(t, db.Model(&models.User{}).Count(&sellers).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.EqualValues(t, 1, sellers)
	assert.EqualValues(t, 18, products)

	var blouse models.Product
	require.NoError(t, db.Where("name = ?", "Silk Blouse").First(&blouse).Error)
	assert.True(t, blouse.Price.Equal(decimal.RequireFromString("899.99")))
	assert.Equal(t, first.Seller.ID, blouse.SellerID)
}

func TestSeedCatalogPromotesExistingUser(t *testing.T) {
	db := dbtest.Open(t)
	existing := dbtest.CreateUser(t, db, "owner@example.com", false)
	cfg := &initializers.Config{SeedSellerEmail: existing.Email, SeedSellerName: "Owner"}

	res, err := initializers.SeedCatalog(context.Background(), db, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, res.SellerCreated)
	assert.Equal(t, existing.ID, res.Seller.ID)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, existing.ID).Error)
	assert.True(t, reloaded.IsSeller)
	assert.True(t, services.VerifyPassword(dbtest.Password, reloaded.HashedPassword))
}
