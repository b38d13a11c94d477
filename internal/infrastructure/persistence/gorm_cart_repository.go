package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCartRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCartRepository creates a new GORM-based CartRepository implementation
func NewGormCartRepository(db *gorm.DB, logger logger.Logger) (shop.CartRepository, error) {
	return &gormCartRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCartRepository) GetOrCreate(ctx context.Context, userID string) (*shop.Cart, error) {
	var cart shop.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Images").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}

	cart = shop.Cart{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	r.logger.Info("Created cart for user ", userID)
	return &cart, nil
}

func (r *gormCartRepository) GetItem(ctx context.Context, itemID uint) (*shop.CartItem, error) {
	var item shop.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&item, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %d: %w", itemID, shop.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch cart item: %w", err)
	}
	return &item, nil
}

func (r *gormCartRepository) GetItemByProduct(ctx context.Context, cartID, productID uint) (*shop.CartItem, error) {
	var item shop.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item for product %d: %w", productID, shop.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch cart item: %w", err)
	}
	return &item, nil
}

func (r *gormCartRepository) CreateItem(ctx context.Context, item *shop.CartItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

func (r *gormCartRepository) UpdateItem(ctx context.Context, item *shop.CartItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

func (r *gormCartRepository) DeleteItem(ctx context.Context, itemID uint) error {
	if err := r.db.WithContext(ctx).Delete(&shop.CartItem{}, itemID).Error; err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

func (r *gormCartRepository) ClearCart(ctx context.Context, cartID uint) error {
	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&shop.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
