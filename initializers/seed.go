package initializers

import (
	"context"
	"fmt"

	"github.com/Kariqs/hanythrift-api/models"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type sampleProduct struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	Category    string
	Stock       int
}

var sampleProducts = []sampleProduct{
	{
		Name:        "Vintage Band T-Shirt",
		Description: "Authentic vintage band t-shirt from the 90s. Slight fading adds to the vintage appeal.",
		Price:       "650.00",
		ImageURL:    "https://images.unsplash.com/photo-1576566588028-4147f3842f27?q=80&w=1528&auto=format&fit=crop",
		Category:    "Clothing",
		Stock:       5,
	},
	{
		Name:        "Flannel Shirt",
		Description: "Cozy flannel shirt in red and black plaid. Perfect for layering in cooler weather.",
		Price:       "750.00",
		ImageURL:    "https://images.unsplash.com/photo-1589310243389-96a5483213a8?q=80&w=1374&auto=format&fit=crop",
		Category:    "Clothing",
		Stock:       3,
	},
	{
		Name:        "Silk Blouse",
		Description: "Elegant silk blouse in cream color. Perfect for office or evening wear.",
		Price:       "899.99",
		ImageURL:    "https://images.unsplash.com/photo-1551489186-cf8726f514f8?q=80&w=1470&auto=format&fit=crop",
		Category:    "Clothing",
		Stock:       2,
	},
	{
		Name:        "Nike Air Jordan 1",
		Description: "Classic Air Jordan 1 in red and black colorway. Some signs of wear but still in great condition.",
		Price:       "4500.00",
		ImageURL:    "https://images.unsplash.com/photo-1552346154-21d32810aba3?q=80&w=1470&auto=format&fit=crop",
		Category:    "Footwear",
		Stock:       1,
	},
	{
		Name:        "Doc Martens Boots",
		Description: "Iconic Doc Martens boots in black. Broken in but still have years of life left.",
		Price:       "3200.00",
		ImageURL:    "https://images.unsplash.com/photo-1602663491496-73f07481dbea?q=80&w=1374&auto=format&fit=crop",
		Category:    "Footwear",
		Stock:       2,
	},
	{
		Name:        "Vans Old Skool",
		Description: "Classic Vans Old Skool in black and white. Barely worn, excellent condition.",
		Price:       "1800.00",
		ImageURL:    "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?q=80&w=1396&auto=format&fit=crop",
		Category:    "Footwear",
		Stock:       4,
	},
	{
		Name:        "Vintage Casio Watch",
		Description: "Classic Casio digital watch. New battery installed, works perfectly.",
		Price:       "1200.00",
		ImageURL:    "https://images.unsplash.com/photo-1619134778706-7015533a6150?q=80&w=1374&auto=format&fit=crop",
		Category:    "Accessories",
		Stock:       1,
	},
	{
		Name:        "Ray-Ban Sunglasses",
		Description: "Authentic Ray-Ban Wayfarer sunglasses with case. Minor scratches on the case only.",
		Price:       "2500.00",
		ImageURL:    "https://images.unsplash.com/photo-1511499767150-a48a237f0083?q=80&w=1480&auto=format&fit=crop",
		Category:    "Accessories",
		Stock:       2,
	},
	{
		Name:        "Leather Belt",
		Description: "Genuine leather belt in brown. Barely used, excellent condition.",
		Price:       "850.00",
		ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?q=80&w=1374&auto=format&fit=crop",
		Category:    "Accessories",
		Stock:       3,
	},
	{
		Name:        "North Face Jacket",
		Description: "Waterproof North Face jacket in navy blue. Perfect for hiking or rainy days.",
		Price:       "3800.00",
		ImageURL:    "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?q=80&w=1472&auto=format&fit=crop",
		Category:    "Outerwear",
		Stock:       2,
	},
	{
		Name:        "Vintage Denim Jacket",
		Description: "Classic vintage denim jacket with slight distressing. Authentic 90s style.",
		Price:       "1299.99",
		ImageURL:    "https://images.unsplash.com/photo-1611312449408-fcece27cdbb7?q=80&w=1469&auto=format&fit=crop",
		Category:    "Outerwear",
		Stock:       3,
	},
	{
		Name:        "Wool Peacoat",
		Description: "Elegant wool peacoat in charcoal gray. Perfect for formal occasions in colder weather.",
		Price:       "2800.00",
		ImageURL:    "https://images.unsplash.com/photo-1544923246-77307dd654cb?q=80&w=1374&auto=format&fit=crop",
		Category:    "Outerwear",
		Stock:       1,
	},
	{
		Name:        "Levi's 501 Jeans",
		Description: "Classic Levi's 501 jeans in dark wash. Barely worn, excellent condition.",
		Price:       "1250.00",
		ImageURL:    "https://images.unsplash.com/photo-1598554747436-c9293d6a588f?q=80&w=1374&auto=format&fit=crop",
		Category:    "Bottoms",
		Stock:       4,
	},
	{
		Name:        "Cargo Pants",
		Description: "Versatile cargo pants in olive green. Multiple pockets for practicality.",
		Price:       "950.00",
		ImageURL:    "https://images.unsplash.com/photo-1584865288642-42078afe6942?q=80&w=1470&auto=format&fit=crop",
		Category:    "Bottoms",
		Stock:       5,
	},
	{
		Name:        "Pleated Skirt",
		Description: "Elegant pleated skirt in navy blue. Perfect for office or school wear.",
		Price:       "780.00",
		ImageURL:    "https://images.unsplash.com/photo-1583496661160-fb5886a0aaaa?q=80&w=1374&auto=format&fit=crop",
		Category:    "Bottoms",
		Stock:       3,
	},
	{
		Name:        "Vintage Baseball Cap",
		Description: "Classic baseball cap with vintage sports team logo. Adjustable strap for perfect fit.",
		Price:       "550.00",
		ImageURL:    "https://images.unsplash.com/photo-1534215754734-18e55d13e346?q=80&w=1376&auto=format&fit=crop",
		Category:    "Headwear",
		Stock:       6,
	},
	{
		Name:        "Wool Beanie",
		Description: "Soft wool beanie in charcoal gray. Warm and comfortable for winter.",
		Price:       "450.00",
		ImageURL:    "https://images.unsplash.com/photo-1576871337622-98d48d1cf531?q=80&w=1374&auto=format&fit=crop",
		Category:    "Headwear",
		Stock:       8,
	},
	{
		Name:        "Bucket Hat",
		Description: "Trendy bucket hat in beige. Perfect for summer days or festival season.",
		Price:       "650.00",
		ImageURL:    "https://images.unsplash.com/photo-1556306535-0f09a537f0a3?q=80&w=1470&auto=format&fit=crop",
		Category:    "Headwear",
		Stock:       4,
	},
}

type SeedResult struct {
	Seller          models.User
	SellerCreated   bool
	ProductsCreated int
}

// SeedCatalog makes sure the seed seller and the sample catalog exist. Rows
// are matched on seller email and product name, so running it again is a
// no-op.
func SeedCatalog(ctx context.Context, db *gorm.DB, cfg *Config, logger *zap.Logger) (*SeedResult, error) {
	password := cfg.SeedSellerPassword
	if password == "" {
		password = uuid.NewString()
		logger.Warn("SEED_SELLER_PASSWORD not set, seed seller gets a random password")
	}
	hash, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	result := &SeedResult{}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(models.User{Email: services.NormalizeEmail(cfg.SeedSellerEmail)}).
			Attrs(models.User{Name: cfg.SeedSellerName, HashedPassword: hash, IsActive: true, IsSeller: true}).
			FirstOrCreate(&result.Seller)
		if res.Error != nil {
			return fmt.Errorf("seed seller: %w", res.Error)
		}
		result.SellerCreated = res.RowsAffected > 0

		if !result.Seller.IsSeller {
			if err := tx.Model(&result.Seller).Update("is_seller", true).Error; err != nil {
				return fmt.Errorf("promote seed seller: %w", err)
			}
			result.Seller.IsSeller = true
		}

		for _, sp := range sampleProducts {
			product := models.Product{}
			res := tx.Where("name = ? AND seller_id = ?", sp.Name, result.Seller.ID).
				Attrs(models.Product{
					Name:        sp.Name,
					Description: sp.Description,
					Price:       decimal.RequireFromString(sp.Price),
					ImageURL:    sp.ImageURL,
					Category:    sp.Category,
					Stock:       sp.Stock,
					SellerID:    result.Seller.ID,
				}).
				FirstOrCreate(&product)
			if res.Error != nil {
				return fmt.Errorf("seed product %q: %w", sp.Name, res.Error)
			}
			result.ProductsCreated += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("catalog seeded",
		zap.String("seller", result.Seller.Email),
		zap.Bool("seller_created", result.SellerCreated),
		zap.Int("products_created", result.ProductsCreated),
	)
	return result, nil
}
