package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/Kariqs/hanythrift-api/models"
	"gorm.io/gorm"
)

type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ImageStore persists product images and returns their public URL.
type ImageStore interface {
	PutProductImage(ctx context.Context, key string, img ImageUpload) (string, error)
}

type CatalogStore struct {
	db     *gorm.DB
	images ImageStore
	now    func() time.Time
}

// NewCatalogStore builds the catalog. images may be nil, in which case image
// uploads fail with ErrUnavailable.
func NewCatalogStore(db *gorm.DB, images ImageStore) *CatalogStore {
	return &CatalogStore{db: db, images: images, now: time.Now}
}

// List returns products in insertion order.
func (s *CatalogStore) List(ctx context.Context, skip, limit int) ([]models.Product, error) {
	if skip < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: skip and limit must not be negative", ErrInvalidInput)
	}
	products := []models.Product{}
	err := s.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *CatalogStore) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

// Create adds a product owned by seller.
func (s *CatalogStore) Create(ctx context.Context, seller *models.User, in models.ProductCreate) (*models.Product, error) {
	if !seller.IsSeller {
		return nil, ErrForbidden
	}
	if !in.Price.IsPositive() || in.Stock < 0 {
		return nil, fmt.Errorf("%w: price must be positive and stock not negative", ErrInvalidInput)
	}
	if !validAmount(in.Price) {
		return nil, fmt.Errorf("%w: price must have at most 2 decimal places and not exceed %s", ErrInvalidInput, maxAmount.StringFixed(2))
	}

	product := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Stock:       in.Stock,
		SellerID:    seller.ID,
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

// AttachImage uploads img and points the product's image_url at it. Products
// owned by another seller are reported as not found.
func (s *CatalogStore) AttachImage(ctx context.Context, seller *models.User, productID uint, img ImageUpload) (*models.Product, error) {
	if !seller.IsSeller {
		return nil, ErrForbidden
	}
	if s.images == nil {
		return nil, fmt.Errorf("%w: image storage is not configured", ErrUnavailable)
	}

	db := s.db.WithContext(ctx)
	var product models.Product
	err := db.Where("id = ? AND seller_id = ?", productID, seller.ID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	key := fmt.Sprintf("products/%d/%s-%s", product.ID, s.now().Format("20060102150405"), path.Base(img.Filename))
	url, err := s.images.PutProductImage(ctx, key, img)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	if err := db.Model(&product).Update("image_url", url).Error; err != nil {
		return nil, fmt.Errorf("save image url: %w", err)
	}
	product.ImageURL = url
	return &product, nil
}
