package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/hanythrift-api/models"
	"gorm.io/gorm"
)

type CartEngine struct {
	db *gorm.DB
}

func NewCartEngine(db *gorm.DB) *CartEngine {
	return &CartEngine{db: db}
}

func (e *CartEngine) Get(ctx context.Context, userID uint) ([]models.CartItem, error) {
	items := []models.CartItem{}
	err := e.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return items, nil
}

// Add puts quantity of a product into the user's cart. A product already in
// the cart has its quantity incremented in SQL; there is never more than one
// row per (user, product).
func (e *CartEngine) Add(ctx context.Context, userID uint, in models.CartItemCreate) (*models.CartItem, error) {
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	db := e.db.WithContext(ctx)

	var product models.Product
	err := db.Select("id").First(&product, in.ProductID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, in.ProductID)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	merged, err := e.increment(db, userID, in.ProductID, in.Quantity)
	if err != nil {
		return nil, err
	}
	if !merged {
		item := models.CartItem{UserID: userID, ProductID: in.ProductID, Quantity: in.Quantity}
		err := db.Omit("Product").Create(&item).Error
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// Lost a race with a concurrent first add.
			if _, err := e.increment(db, userID, in.ProductID, in.Quantity); err != nil {
				return nil, err
			}
		case err != nil:
			return nil, fmt.Errorf("create cart item: %w", err)
		}
	}

	var item models.CartItem
	err = db.Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, in.ProductID).
		First(&item).Error
	if err != nil {
		return nil, fmt.Errorf("load cart item: %w", err)
	}
	return &item, nil
}

func (e *CartEngine) increment(db *gorm.DB, userID, productID uint, quantity int) (bool, error) {
	res := db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", gorm.Expr("quantity + ?", quantity))
	if res.Error != nil {
		return false, fmt.Errorf("increment cart item: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Update sets the quantity of one of the user's cart items.
func (e *CartEngine) Update(ctx context.Context, userID, itemID uint, in models.CartItemUpdate) (*models.CartItem, error) {
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	db := e.db.WithContext(ctx)

	item, err := e.owned(db, userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := db.Model(item).Update("quantity", in.Quantity).Error; err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	item.Quantity = in.Quantity
	return item, nil
}

func (e *CartEngine) Remove(ctx context.Context, userID, itemID uint) error {
	res := e.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: cart item %d", ErrNotFound, itemID)
	}
	return nil
}

// owned loads a cart item only if it belongs to userID. Items owned by other
// users look exactly like missing ones.
func (e *CartEngine) owned(db *gorm.DB, userID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := db.Preload("Product").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cart item %d", ErrNotFound, itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &item, nil
}
