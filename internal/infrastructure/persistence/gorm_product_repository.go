package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProductRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProductRepository creates a new GORM-based ProductRepository implementation
func NewGormProductRepository(db *gorm.DB, logger logger.Logger) (shop.ProductRepository, error) {
	return &gormProductRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProductRepository) Create(ctx context.Context, product *shop.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Info("Created product with id ", product.ID)
	return nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, productID uint) (*shop.Product, error) {
	var product shop.Product
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Preload("Category").
		Preload("Images").
		First(&product, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, shop.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &product, nil
}

func (r *gormProductRepository) UpdateByID(ctx context.Context, product *shop.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	r.logger.Info("Updated product with id ", product.ID)
	return nil
}

func (r *gormProductRepository) DeleteByID(ctx context.Context, productID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&shop.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&shop.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&shop.Product{}, productID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	r.logger.Info("Deleted product with id ", productID)
	return nil
}

// productOrderClause maps a sort key to its ORDER BY clause. Unknown
// keys fall back to newest first.
func productOrderClause(sort string) string {
	switch sort {
	case "created_at":
		return "created_at ASC"
	case "price":
		return "price ASC"
	case "-price":
		return "price DESC"
	case "name":
		return "name ASC"
	case "-name":
		return "name DESC"
	default:
		return "created_at DESC"
	}
}

func (r *gormProductRepository) List(ctx context.Context, filter shop.ProductFilter) ([]*shop.Product, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&shop.Product{})

	if filter.Status != "" {
		if filter.VisibleTo != "" {
			dbQuery = dbQuery.Where("status = ? OR seller_id = ?", filter.Status, filter.VisibleTo)
		} else {
			dbQuery = dbQuery.Where("status = ?", filter.Status)
		}
	}
	if filter.SellerID != "" {
		dbQuery = dbQuery.Where("seller_id = ?", filter.SellerID)
	}
	if filter.CategoryID != nil {
		dbQuery = dbQuery.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Query != "" {
		dbQuery = dbQuery.Where("name LIKE ? OR description LIKE ?",
			"%"+filter.Query+"%", "%"+filter.Query+"%")
	}
	if filter.MinPrice != nil {
		dbQuery = dbQuery.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		dbQuery = dbQuery.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []*shop.Product
	err := dbQuery.
		Preload("Seller").
		Preload("Category").
		Preload("Images").
		Order(productOrderClause(filter.Sort)).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, total, nil
}

func (r *gormProductRepository) CreateImage(ctx context.Context, image *shop.ProductImage) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create product image: %w", err)
	}
	return nil
}

func (r *gormProductRepository) GetImage(ctx context.Context, imageID uint) (*shop.ProductImage, error) {
	var image shop.ProductImage
	err := r.db.WithContext(ctx).First(&image, imageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product image %d: %w", imageID, shop.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch product image: %w", err)
	}
	return &image, nil
}

func (r *gormProductRepository) DeleteImage(ctx context.Context, imageID uint) error {
	if err := r.db.WithContext(ctx).Delete(&shop.ProductImage{}, imageID).Error; err != nil {
		return fmt.Errorf("failed to delete product image: %w", err)
	}
	return nil
}

func (r *gormProductRepository) ClearPrimaryImage(ctx context.Context, productID uint) error {
	err := r.db.WithContext(ctx).Model(&shop.ProductImage{}).
		Where("product_id = ? AND is_primary = ?", productID, true).
		Update("is_primary", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear primary image: %w", err)
	}
	return nil
}

func (r *gormProductRepository) PromoteOldestImage(ctx context.Context, productID uint) error {
	var image shop.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to fetch product images: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&image).Update("is_primary", true).Error
	if err != nil {
		return fmt.Errorf("failed to promote product image: %w", err)
	}
	return nil
}
