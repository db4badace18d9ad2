package services_test

import (
	"context"
	"testing"

	"github.com/Kariqs/hanythrift-api/dbtest"
	"github.com/Kariqs/hanythrift-api/models"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_Register(t *testing.T) {
	db := dbtest.Open(t)
	store := services.NewUserStore(db)
	ctx := context.Background()

	user, err := store.Register(ctx, models.UserCreate{Email: "ann@example.com", Name: "Ann", Password: "pw-123456"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSeller)
	assert.NotEqual(t, "pw-123456", user.HashedPassword)
	assert.True(t, services.VerifyPassword("pw-123456", user.HashedPassword))

	_, err = store.Register(ctx, models.UserCreate{Email: "ann@example.com", Name: "Other", Password: "x"})
	assert.ErrorIs(t, err, services.ErrConflict)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserStore_Lookups(t *testing.T) {
	db := dbtest.Open(t)
	store := services.NewUserStore(db)
	ctx := context.Background()
	seeded := dbtest.CreateUser(t, db, "bob@example.com", true)

	byEmail, err := store.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, byEmail.ID)
	assert.True(t, byEmail.IsSeller)

	byID, err := store.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", byID.Email)

	_, err = store.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = store.GetByID(ctx, seeded.ID+100)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUserStore_EmailsIgnoreCase(t *testing.T) {
	db := dbtest.Open(t)
	store := services.NewUserStore(db)
	ctx := context.Background()

	user, err := store.Register(ctx, models.UserCreate{Email: "Ann@Example.COM", Name: "Ann", Password: "pw-123456"})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)

	_, err = store.Register(ctx, models.UserCreate{Email: "ann@example.com", Name: "Other", Password: "x"})
	assert.ErrorIs(t, err, services.ErrConflict)

	found, err := store.GetByEmail(ctx, " ANN@example.com ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}
