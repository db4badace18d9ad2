package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kariqs/hanythrift-api/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const publishTimeout = 5 * time.Second

// OrderEventPublisher announces committed orders.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error
}

type OrderEngine struct {
	db        *gorm.DB
	publisher OrderEventPublisher
	logger    *zap.Logger
}

// NewOrderEngine builds the order engine. publisher may be nil.
func NewOrderEngine(db *gorm.DB, publisher OrderEventPublisher, logger *zap.Logger) *OrderEngine {
	return &OrderEngine{db: db, publisher: publisher, logger: logger}
}

// Create places an order for userID. Prices are read from the catalog inside
// the transaction and the total is computed here; the client total is only
// compared against it.
func (e *OrderEngine) Create(ctx context.Context, userID uint, in models.OrderCreate) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", ErrInvalidInput)
	}
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
		}
	}

	var order models.Order
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(in.Items))

		for _, it := range in.Items {
			var product models.Product
			err := tx.Select("id", "price").First(&product, it.ProductID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product %d", ErrNotFound, it.ProductID)
			}
			if err != nil {
				return fmt.Errorf("get product: %w", err)
			}

			items = append(items, models.OrderItem{
				ProductID:   it.ProductID,
				Quantity:    it.Quantity,
				PriceAtTime: product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		if !validAmount(total) {
			return fmt.Errorf("%w: order total exceeds %s", ErrInvalidInput, maxAmount.StringFixed(2))
		}

		order = models.Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
			Items:       items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !in.TotalAmount.IsZero() && !in.TotalAmount.Equal(order.TotalAmount) {
		e.logger.Warn("client order total differs from computed total",
			zap.Uint("order_id", order.ID),
			zap.String("client_total", in.TotalAmount.StringFixed(2)),
			zap.String("computed_total", order.TotalAmount.StringFixed(2)),
		)
	}

	e.publish(ctx, &order)
	return &order, nil
}

func (e *OrderEngine) publish(ctx context.Context, order *models.Order) {
	if e.publisher == nil {
		return
	}

	event := models.OrderPlacedEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Items:       make([]models.OrderPlacedEventItem, 0, len(order.Items)),
		PlacedAt:    order.CreatedAt,
	}
	for _, it := range order.Items {
		event.Items = append(event.Items, models.OrderPlacedEventItem{
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			PriceAtTime: it.PriceAtTime,
		})
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := e.publisher.PublishOrderPlaced(pubCtx, event); err != nil {
		e.logger.Error("publish order.placed failed", zap.Uint("order_id", order.ID), zap.Error(err))
	}
}

// List returns the user's orders with their items, oldest first.
func (e *OrderEngine) List(ctx context.Context, userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := e.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("user_id = ?", userID).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
