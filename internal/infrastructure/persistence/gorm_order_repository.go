package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOrderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderRepository creates a new GORM-based OrderRepository implementation
func NewGormOrderRepository(db *gorm.DB, logger logger.Logger) (shop.OrderRepository, error) {
	return &gormOrderRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Checkout persists the order, decrements stock and removes the cart
// items in one transaction. Stock is re-verified with the rows locked
// so two concurrent checkouts cannot oversell.
func (r *gormOrderRepository) Checkout(ctx context.Context, order *shop.Order, decrements []shop.StockDecrement, cartItemIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dec := range decrements {
			result := tx.Model(&shop.Product{}).
				Where("id = ? AND stock >= ?", dec.ProductID, dec.Quantity).
				Update("stock", gorm.Expr("stock - ?", dec.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("product %d: %w", dec.ProductID, shop.ErrInsufficientStock)
			}
		}

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if len(cartItemIDs) > 0 {
			if err := tx.Delete(&shop.CartItem{}, cartItemIDs).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, shop.ErrInsufficientStock) {
			return err
		}
		return fmt.Errorf("failed to checkout: %w", err)
	}

	r.logger.Info("Created order with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, orderID uint) (*shop.Order, error) {
	var order shop.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, shop.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}

func (r *gormOrderRepository) ListByBuyer(ctx context.Context, buyerID, status string, page, pageSize int) ([]*shop.Order, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&shop.Order{}).
		Where("buyer_id = ?", buyerID)
	if status != "" {
		dbQuery = dbQuery.Where("status = ?", status)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []*shop.Order
	err := dbQuery.
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, total, nil
}

func (r *gormOrderRepository) ListAll(ctx context.Context, status string, page, pageSize int) ([]*shop.Order, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&shop.Order{})
	if status != "" {
		dbQuery = dbQuery.Where("status = ?", status)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []*shop.Order
	err := dbQuery.
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, total, nil
}

func (r *gormOrderRepository) ListBySeller(ctx context.Context, sellerID string, page, pageSize int) ([]*shop.Order, int64, error) {
	subQuery := r.db.Model(&shop.OrderItem{}).
		Select("DISTINCT order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.seller_id = ?", sellerID)

	dbQuery := r.db.WithContext(ctx).Model(&shop.Order{}).
		Where("id IN (?)", subQuery)

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	var orders []*shop.Order
	err := dbQuery.
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch sales: %w", err)
	}
	return orders, total, nil
}

func (r *gormOrderRepository) UpdateByID(ctx context.Context, order *shop.Order) error {
	if err := r.db.WithContext(ctx).Save(order).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	r.logger.Info("Updated order with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) RestoreStock(ctx context.Context, increments []shop.StockDecrement) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, inc := range increments {
			err := tx.Model(&shop.Product{}).
				Where("id = ?", inc.ProductID).
				Update("stock", gorm.Expr("stock + ?", inc.Quantity)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	return nil
}
