package app

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"github.com/shopspring/decimal"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a URL-safe slug from a name.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// categoryService implements the CategoryService interface
type categoryService struct {
	categoryRepo shop.CategoryRepository
	userRepo     accounts.UserRepository
	logger       logger.Logger
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(
	categoryRepo shop.CategoryRepository,
	userRepo accounts.UserRepository,
	logger logger.Logger,
) (shop.CategoryService, error) {
	return &categoryService{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		logger:       logger,
	}, nil
}

// requireStaff returns ErrForbidden unless the user is staff.
func requireStaff(ctx context.Context, userRepo accounts.UserRepository, userID string) error {
	user, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsStaff {
		return shop.ErrForbidden
	}
	return nil
}

func (s *categoryService) Create(ctx context.Context, userID, name, description string) (*shop.Category, error) {
	if err := requireStaff(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	taken, err := s.categoryRepo.NameTaken(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shop.ErrAlreadyExists
	}

	category := &shop.Category{
		Name:        name,
		Slug:        slugify(name),
		Description: description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]*shop.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, categoryID uint) (*shop.Category, error) {
	return s.categoryRepo.GetByID(ctx, categoryID)
}

func (s *categoryService) Update(ctx context.Context, userID string, categoryID uint, name, description string) (*shop.Category, error) {
	if err := requireStaff(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if name != "" && name != category.Name {
		taken, err := s.categoryRepo.NameTaken(ctx, name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shop.ErrAlreadyExists
		}
		category.Name = name
		category.Slug = slugify(name)
	}
	if description != "" {
		category.Description = description
	}

	if err := s.categoryRepo.UpdateByID(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, userID string, categoryID uint) error {
	if err := requireStaff(ctx, s.userRepo, userID); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return err
	}
	return s.categoryRepo.DeleteByID(ctx, categoryID)
}

// productService implements the ProductService interface
type productService struct {
	productRepo  shop.ProductRepository
	categoryRepo shop.CategoryRepository
	userRepo     accounts.UserRepository
	notifier     social.Notifier
	logger       logger.Logger
}

// NewProductService creates a new instance of ProductService
func NewProductService(
	productRepo shop.ProductRepository,
	categoryRepo shop.CategoryRepository,
	userRepo accounts.UserRepository,
	notifier social.Notifier,
	logger logger.Logger,
) (shop.ProductService, error) {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
	}, nil
}

func (s *productService) Create(ctx context.Context, sellerID string, input shop.CreateProductInput) (*shop.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("price must be positive")
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}
	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product := &shop.Product{
		SellerID:    sellerID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Status:      shop.ProductStatusPending,
	}
	primarySeen := false
	for _, img := range input.Images {
		isPrimary := img.IsPrimary && !primarySeen
		if isPrimary {
			primarySeen = true
		}
		product.Images = append(product.Images, shop.ProductImage{
			ImageURL:  img.URL,
			IsPrimary: isPrimary,
		})
	}
	// The first image becomes primary when none is marked.
	if !primarySeen && len(product.Images) > 0 {
		product.Images[0].IsPrimary = true
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Get(ctx context.Context, viewerID string, productID uint) (*shop.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status == shop.ProductStatusApproved {
		return product, nil
	}

	// Non-approved products are only visible to the seller and staff.
	if product.SellerID == viewerID {
		return product, nil
	}
	if err := requireStaff(ctx, s.userRepo, viewerID); err != nil {
		return nil, fmt.Errorf("product %d: %w", productID, shop.ErrNotFound)
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, userID string, productID uint, input shop.UpdateProductInput) (*shop.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != userID {
		return nil, shop.ErrForbidden
	}

	contentChanged := false
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Name != nil && *input.Name != product.Name {
		product.Name = *input.Name
		contentChanged = true
	}
	if input.Description != nil && *input.Description != product.Description {
		product.Description = *input.Description
		contentChanged = true
	}
	if input.Price != nil && !input.Price.Equal(product.Price) {
		if input.Price.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("price must be positive")
		}
		product.Price = *input.Price
		contentChanged = true
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, fmt.Errorf("stock cannot be negative")
		}
		product.Stock = *input.Stock
	}

	// Substantive edits send an approved product back for review.
	if contentChanged && product.Status == shop.ProductStatusApproved {
		product.Status = shop.ProductStatusPending
		product.ApprovedAt = nil
		product.ApprovedByID = nil
		product.RejectionReason = ""
	}

	if err := s.productRepo.UpdateByID(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, userID string, productID uint) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.SellerID != userID {
		if err := requireStaff(ctx, s.userRepo, userID); err != nil {
			return shop.ErrForbidden
		}
	}
	return s.productRepo.DeleteByID(ctx, productID)
}

func (s *productService) List(ctx context.Context, viewerID string, filter shop.ProductFilter) ([]*shop.Product, int64, error) {
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize)

	// Staff browse any status; everyone else gets approved listings
	// plus their own.
	if err := requireStaff(ctx, s.userRepo, viewerID); err != nil {
		filter.Status = shop.ProductStatusApproved
		filter.VisibleTo = viewerID
	}
	return s.productRepo.List(ctx, filter)
}

func (s *productService) ListMine(ctx context.Context, sellerID string, page, pageSize int) ([]*shop.Product, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	return s.productRepo.List(ctx, shop.ProductFilter{
		SellerID: sellerID,
		Page:     page,
		PageSize: pageSize,
	})
}

func (s *productService) ListPending(ctx context.Context, userID string, page, pageSize int) ([]*shop.Product, int64, error) {
	if err := requireStaff(ctx, s.userRepo, userID); err != nil {
		return nil, 0, err
	}

	page, pageSize = normalizePage(page, pageSize)
	return s.productRepo.List(ctx, shop.ProductFilter{
		Status:   shop.ProductStatusPending,
		Page:     page,
		PageSize: pageSize,
	})
}

func (s *productService) Review(ctx context.Context, userID string, productID uint, approve bool, reason string) (*shop.Product, error) {
	if err := requireStaff(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != shop.ProductStatusPending {
		return nil, fmt.Errorf("product %d is not pending", productID)
	}

	var notificationType, message string
	if approve {
		now := time.Now()
		product.Status = shop.ProductStatusApproved
		product.ApprovedAt = &now
		product.ApprovedByID = &userID
		product.RejectionReason = ""
		notificationType = social.NotificationProductApproved
		message = "approved your product listing"
	} else {
		if strings.TrimSpace(reason) == "" {
			return nil, fmt.Errorf("rejection reason is required")
		}
		product.Status = shop.ProductStatusRejected
		product.RejectionReason = reason
		notificationType = social.NotificationProductRejected
		message = "rejected your product listing"
	}

	if err := s.productRepo.UpdateByID(ctx, product); err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, &social.Notification{
		RecipientID: product.SellerID,
		ActorID:     userID,
		Type:        notificationType,
		Message:     message,
	}); err != nil {
		s.logger.Warn("Failed to notify product review: ", err)
	}
	return product, nil
}

func (s *productService) AddImage(ctx context.Context, userID string, productID uint, input shop.ImageInput) (*shop.ProductImage, error) {
	if input.URL == "" {
		return nil, fmt.Errorf("image url is required")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != userID {
		return nil, shop.ErrForbidden
	}

	isPrimary := input.IsPrimary || len(product.Images) == 0
	if isPrimary {
		if err := s.productRepo.ClearPrimaryImage(ctx, productID); err != nil {
			return nil, err
		}
	}

	image := &shop.ProductImage{
		ProductID: productID,
		ImageURL:  input.URL,
		IsPrimary: isPrimary,
	}
	if err := s.productRepo.CreateImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *productService) RemoveImage(ctx context.Context, userID string, productID, imageID uint) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.SellerID != userID {
		return shop.ErrForbidden
	}

	image, err := s.productRepo.GetImage(ctx, imageID)
	if err != nil {
		return err
	}
	if image.ProductID != productID {
		return fmt.Errorf("product image %d: %w", imageID, shop.ErrNotFound)
	}
	if err := s.productRepo.DeleteImage(ctx, imageID); err != nil {
		return err
	}

	// Removing the primary image hands the role to the oldest remaining
	// one, so a product with images always has a primary.
	if image.IsPrimary {
		return s.productRepo.PromoteOldestImage(ctx, productID)
	}
	return nil
}
