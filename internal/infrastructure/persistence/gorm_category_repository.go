package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository implementation
func NewGormCategoryRepository(db *gorm.DB, logger logger.Logger) (shop.CategoryRepository, error) {
	return &gormCategoryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *shop.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Info("Created category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*shop.Category, error) {
	var category shop.Category
	if err := r.db.WithContext(ctx).First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", categoryID, shop.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return &category, nil
}

func (r *gormCategoryRepository) GetBySlug(ctx context.Context, slug string) (*shop.Category, error) {
	var category shop.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %q: %w", slug, shop.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return &category, nil
}

func (r *gormCategoryRepository) List(ctx context.Context) ([]*shop.Category, error) {
	var categories []*shop.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *gormCategoryRepository) UpdateByID(ctx context.Context, category *shop.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	r.logger.Info("Updated category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) DeleteByID(ctx context.Context, categoryID uint) error {
	if err := r.db.WithContext(ctx).Delete(&shop.Category{}, categoryID).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	r.logger.Info("Deleted category with id ", categoryID)
	return nil
}

func (r *gormCategoryRepository) NameTaken(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&shop.Category{}).
		Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}
