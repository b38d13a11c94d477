//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// registerStaffUser registers a user and grants the staff flag.
func registerStaffUser(t *testing.T, services *TestServices, profileName string) *accounts.User {
	t.Helper()
	ctx := context.Background()

	user := registerTestUser(t, services, profileName)
	user.IsStaff = true
	require.NoError(t, services.DBContext.UserRepo.UpdateByID(ctx, user))
	return user
}

// seedApprovedProduct creates a category and an approved product.
func seedApprovedProduct(t *testing.T, services *TestServices, staff, seller *accounts.User, name string, price int64, stock int) *shop.Product {
	t.Helper()
	ctx := context.Background()

	category, err := services.CategoryService.Create(ctx, staff.ID, "Crafts "+name, "")
	require.NoError(t, err)

	product, err := services.ProductService.Create(ctx, seller.ID, shop.CreateProductInput{
		CategoryID: category.ID,
		Name:       name,
		Price:      decimal.NewFromInt(price),
		Stock:      stock,
	})
	require.NoError(t, err)

	product, err = services.ProductService.Review(ctx, staff.ID, product.ID, true, "")
	require.NoError(t, err)
	return product
}

func TestCategoryService_Create_Fail_NotStaff(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	user := registerTestUser(t, services, "amelie")

	_, err := services.CategoryService.Create(context.Background(), user.ID, "Crafts", "")
	require.ErrorIs(t, err, shop.ErrForbidden)
}

func TestCategoryService_Create_Success_GeneratesSlug(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	staff := registerStaffUser(t, services, "staff")

	category, err := services.CategoryService.Create(context.Background(), staff.ID, "Arts & Crafts", "handmade goods")
	require.NoError(t, err)
	require.Equal(t, "arts-crafts", category.Slug)
}

func TestProductService_Create_StartsPending(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")

	category, err := services.CategoryService.Create(ctx, staff.ID, "Crafts", "")
	require.NoError(t, err)

	product, err := services.ProductService.Create(ctx, seller.ID, shop.CreateProductInput{
		CategoryID: category.ID,
		Name:       "Woven basket",
		Price:      decimal.NewFromInt(25),
		Stock:      3,
	})
	require.NoError(t, err)
	require.Equal(t, shop.ProductStatusPending, product.Status)

	// Pending products are hidden from the public listing.
	buyer := registerTestUser(t, services, "buyer")
	products, total, err := services.ProductService.List(ctx, buyer.ID, shop.ProductFilter{})
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, products)

	// And hidden from other shoppers.
	_, err = services.ProductService.Get(ctx, buyer.ID, product.ID)
	require.ErrorIs(t, err, shop.ErrNotFound)

	// But visible to the seller and to staff.
	_, err = services.ProductService.Get(ctx, seller.ID, product.ID)
	require.NoError(t, err)
	_, err = services.ProductService.Get(ctx, staff.ID, product.ID)
	require.NoError(t, err)
}

func TestProductService_Review_Approve(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 3)
	require.Equal(t, shop.ProductStatusApproved, product.Status)
	require.NotNil(t, product.ApprovedAt)

	products, total, err := services.ProductService.List(ctx, seller.ID, shop.ProductFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, products, 1)

	// The seller was told.
	count, err := services.NotificationService.UnreadCount(ctx, seller.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestProductService_Review_Reject_RequiresReason(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")

	category, err := services.CategoryService.Create(ctx, staff.ID, "Crafts", "")
	require.NoError(t, err)

	product, err := services.ProductService.Create(ctx, seller.ID, shop.CreateProductInput{
		CategoryID: category.ID,
		Name:       "Woven basket",
		Price:      decimal.NewFromInt(25),
		Stock:      3,
	})
	require.NoError(t, err)

	_, err = services.ProductService.Review(ctx, staff.ID, product.ID, false, "")
	require.Error(t, err)

	rejected, err := services.ProductService.Review(ctx, staff.ID, product.ID, false, "blurry photos")
	require.NoError(t, err)
	require.Equal(t, shop.ProductStatusRejected, rejected.Status)
	require.Equal(t, "blurry photos", rejected.RejectionReason)
}

func TestProductService_Update_ContentChange_RePends(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 3)

	newPrice := decimal.NewFromInt(30)
	updated, err := services.ProductService.Update(ctx, seller.ID, product.ID, shop.UpdateProductInput{
		Price: &newPrice,
	})
	require.NoError(t, err)
	require.Equal(t, shop.ProductStatusPending, updated.Status)
	require.Nil(t, updated.ApprovedAt)
}

func TestProductService_Update_StockOnly_KeepsApproval(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 3)

	newStock := 10
	updated, err := services.ProductService.Update(ctx, seller.ID, product.ID, shop.UpdateProductInput{
		Stock: &newStock,
	})
	require.NoError(t, err)
	require.Equal(t, shop.ProductStatusApproved, updated.Status)
	require.Equal(t, 10, updated.Stock)
}

func TestProductService_AddImage_PrimaryHandling(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 3)

	// The first image becomes primary regardless of the flag.
	first, err := services.ProductService.AddImage(ctx, seller.ID, product.ID, shop.ImageInput{URL: "https://img.test/basket-1.jpg"})
	require.NoError(t, err)
	require.True(t, first.IsPrimary)

	second, err := services.ProductService.AddImage(ctx, seller.ID, product.ID, shop.ImageInput{URL: "https://img.test/basket-2.jpg"})
	require.NoError(t, err)
	require.False(t, second.IsPrimary)

	// Promoting a new primary demotes the old one.
	third, err := services.ProductService.AddImage(ctx, seller.ID, product.ID, shop.ImageInput{URL: "https://img.test/basket-3.jpg", IsPrimary: true})
	require.NoError(t, err)
	require.True(t, third.IsPrimary)

	fetched, err := services.ProductService.Get(ctx, seller.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Images, 3)
	for _, image := range fetched.Images {
		require.Equal(t, image.ID == third.ID, image.IsPrimary)
	}

	// Only the seller manages images.
	_, err = services.ProductService.AddImage(ctx, staff.ID, product.ID, shop.ImageInput{URL: "https://img.test/intruder.jpg"})
	require.ErrorIs(t, err, shop.ErrForbidden)
}

func TestProductService_RemoveImage(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 3)
	other := seedApprovedProduct(t, services, staff, seller, "Clay pot", 40, 2)

	image, err := services.ProductService.AddImage(ctx, seller.ID, product.ID, shop.ImageInput{URL: "https://img.test/basket-1.jpg"})
	require.NoError(t, err)
	second, err := services.ProductService.AddImage(ctx, seller.ID, product.ID, shop.ImageInput{URL: "https://img.test/basket-2.jpg"})
	require.NoError(t, err)
	require.False(t, second.IsPrimary)

	// The image must belong to the product named in the request.
	err = services.ProductService.RemoveImage(ctx, seller.ID, other.ID, image.ID)
	require.ErrorIs(t, err, shop.ErrNotFound)

	// Removing the primary image promotes the remaining one.
	require.NoError(t, services.ProductService.RemoveImage(ctx, seller.ID, product.ID, image.ID))

	fetched, err := services.ProductService.Get(ctx, seller.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Images, 1)
	require.Equal(t, second.ID, fetched.Images[0].ID)
	require.True(t, fetched.Images[0].IsPrimary)

	require.NoError(t, services.ProductService.RemoveImage(ctx, seller.ID, product.ID, second.ID))

	fetched, err = services.ProductService.Get(ctx, seller.ID, product.ID)
	require.NoError(t, err)
	require.Empty(t, fetched.Images)
}

func TestCartService_AddItem_MergesQuantity(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")
	buyer := registerTestUser(t, services, "buyer")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 5)

	item, err := services.CartService.AddItem(ctx, buyer.ID, product.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 2, item.Quantity)

	item, err = services.CartService.AddItem(ctx, buyer.ID, product.ID, 1)
	require.NoError(t, err)
	require.Equal(t, 3, item.Quantity)

	cart, err := services.CartService.Get(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.True(t, cart.Total().Equal(decimal.NewFromInt(75)))
}

func TestCartService_AddItem_Fail_OwnProduct(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 5)

	_, err := services.CartService.AddItem(context.Background(), seller.ID, product.ID, 1)
	require.ErrorIs(t, err, shop.ErrOwnProduct)
}

func TestCartService_AddItem_Fail_BeyondStock(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")
	buyer := registerTestUser(t, services, "buyer")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 2)

	_, err := services.CartService.AddItem(context.Background(), buyer.ID, product.ID, 3)
	require.ErrorIs(t, err, shop.ErrInsufficientStock)
}

func TestOrderService_Checkout_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")
	buyer := registerTestUser(t, services, "buyer")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 5)

	_, err := services.CartService.AddItem(ctx, buyer.ID, product.ID, 2)
	require.NoError(t, err)

	order, err := services.OrderService.Checkout(ctx, buyer.ID, nil, shop.ShippingInput{
		Name:    "Buyer",
		Phone:   "555-0100",
		Address: "1 Rue Principale",
		City:    "Port-Louis",
	})
	require.NoError(t, err)
	require.Equal(t, shop.OrderStatusPending, order.Status)
	require.True(t, order.TotalAmount.Equal(decimal.NewFromInt(50)))
	require.Len(t, order.Items, 1)
	require.Equal(t, "Woven basket", order.Items[0].ProductName)

	// Stock went down and the cart is empty.
	stored, err := services.DBContext.ProductRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stored.Stock)

	cart, err := services.CartService.Get(ctx, buyer.ID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestOrderService_Checkout_Subset_LeavesRestInCart(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")
	buyer := registerTestUser(t, services, "buyer")

	basket := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 5)
	pot := seedApprovedProduct(t, services, staff, seller, "Clay pot", 40, 5)

	basketItem, err := services.CartService.AddItem(ctx, buyer.ID, basket.ID, 1)
	require.NoError(t, err)
	_, err = services.CartService.AddItem(ctx, buyer.ID, pot.ID, 1)
	require.NoError(t, err)

	order, err := services.OrderService.Checkout(ctx, buyer.ID, []uint{basketItem.ID}, shop.ShippingInput{
		Name:    "Buyer",
		Phone:   "555-0100",
		Address: "1 Rue Principale",
		City:    "Port-Louis",
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	require.True(t, order.TotalAmount.Equal(decimal.NewFromInt(25)))

	// The unselected item stays in the cart.
	cart, err := services.CartService.Get(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, pot.ID, cart.Items[0].ProductID)

	// Unknown cart item ids are rejected.
	_, err = services.OrderService.Checkout(ctx, buyer.ID, []uint{9999}, shop.ShippingInput{
		Name:    "Buyer",
		Phone:   "555-0100",
		Address: "1 Rue Principale",
		City:    "Port-Louis",
	})
	require.ErrorIs(t, err, shop.ErrNotFound)

	// The status filter narrows the order list.
	orders, total, err := services.OrderService.List(ctx, buyer.ID, shop.OrderStatusPending, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, orders, 1)

	_, total, err = services.OrderService.List(ctx, buyer.ID, shop.OrderStatusDelivered, 1, 20)
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestOrderService_Checkout_Fail_EmptyCart(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	buyer := registerTestUser(t, services, "buyer")

	_, err := services.OrderService.Checkout(context.Background(), buyer.ID, nil, shop.ShippingInput{
		Name:    "Buyer",
		Phone:   "555-0100",
		Address: "1 Rue Principale",
		City:    "Port-Louis",
	})
	require.ErrorIs(t, err, shop.ErrEmptyCart)
}

func TestOrderService_BuyNow_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")
	buyer := registerTestUser(t, services, "buyer")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 5)

	order, err := services.OrderService.BuyNow(ctx, buyer.ID, product.ID, 1, shop.ShippingInput{
		Name:    "Buyer",
		Phone:   "555-0100",
		Address: "1 Rue Principale",
		City:    "Port-Louis",
	})
	require.NoError(t, err)
	require.True(t, order.TotalAmount.Equal(decimal.NewFromInt(25)))

	stored, err := services.DBContext.ProductRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 4, stored.Stock)
}

func TestOrderService_Cancel_RestoresStock(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")
	buyer := registerTestUser(t, services, "buyer")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 5)

	order, err := services.OrderService.BuyNow(ctx, buyer.ID, product.ID, 2, shop.ShippingInput{
		Name:    "Buyer",
		Phone:   "555-0100",
		Address: "1 Rue Principale",
		City:    "Port-Louis",
	})
	require.NoError(t, err)

	cancelled, err := services.OrderService.Cancel(ctx, buyer.ID, order.ID)
	require.NoError(t, err)
	require.Equal(t, shop.OrderStatusCancelled, cancelled.Status)

	stored, err := services.DBContext.ProductRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 5, stored.Stock)
}

func TestOrderService_SetStatus_Transitions(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")
	buyer := registerTestUser(t, services, "buyer")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 5)

	order, err := services.OrderService.BuyNow(ctx, buyer.ID, product.ID, 1, shop.ShippingInput{
		Name:    "Buyer",
		Phone:   "555-0100",
		Address: "1 Rue Principale",
		City:    "Port-Louis",
	})
	require.NoError(t, err)

	// Skipping a state is rejected.
	_, err = services.OrderService.SetStatus(ctx, staff.ID, order.ID, shop.OrderStatusShipped)
	require.ErrorIs(t, err, shop.ErrInvalidStatus)

	_, err = services.OrderService.SetStatus(ctx, staff.ID, order.ID, shop.OrderStatusProcessing)
	require.NoError(t, err)
	_, err = services.OrderService.SetStatus(ctx, staff.ID, order.ID, shop.OrderStatusShipped)
	require.NoError(t, err)
	updated, err := services.OrderService.SetStatus(ctx, staff.ID, order.ID, shop.OrderStatusDelivered)
	require.NoError(t, err)
	require.Equal(t, shop.OrderStatusDelivered, updated.Status)

	// A delivered order can no longer be cancelled.
	_, err = services.OrderService.Cancel(ctx, buyer.ID, order.ID)
	require.ErrorIs(t, err, shop.ErrNotCancellable)
}

func TestOrderService_SetStatus_Fail_NotStaff(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")
	buyer := registerTestUser(t, services, "buyer")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 5)

	order, err := services.OrderService.BuyNow(ctx, buyer.ID, product.ID, 1, shop.ShippingInput{
		Name:    "Buyer",
		Phone:   "555-0100",
		Address: "1 Rue Principale",
		City:    "Port-Louis",
	})
	require.NoError(t, err)

	_, err = services.OrderService.SetStatus(ctx, buyer.ID, order.ID, shop.OrderStatusProcessing)
	require.ErrorIs(t, err, shop.ErrForbidden)
}

func TestOrderService_ListSales_ReturnsSellerOrders(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff := registerStaffUser(t, services, "staff")
	seller := registerTestUser(t, services, "seller")
	buyer := registerTestUser(t, services, "buyer")

	product := seedApprovedProduct(t, services, staff, seller, "Woven basket", 25, 5)

	_, err := services.OrderService.BuyNow(ctx, buyer.ID, product.ID, 1, shop.ShippingInput{
		Name:    "Buyer",
		Phone:   "555-0100",
		Address: "1 Rue Principale",
		City:    "Port-Louis",
	})
	require.NoError(t, err)

	sales, total, err := services.OrderService.ListSales(ctx, seller.ID, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, sales, 1)
	require.Equal(t, buyer.ID, sales[0].BuyerID)
}
