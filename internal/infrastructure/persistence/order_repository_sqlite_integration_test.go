//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedApprovedProduct(t *testing.T, tc *TestContext, sellerID string, stock int) *shop.Product {
	t.Helper()

	category := &shop.Category{Name: "Category-" + sellerID[:8], Slug: "category-" + sellerID[:8]}
	require.NoError(t, tc.CategoryRepo.Create(context.Background(), category))

	product := &shop.Product{
		SellerID:   sellerID,
		CategoryID: category.ID,
		Name:       "Widget",
		Price:      decimal.NewFromFloat(19.99),
		Stock:      stock,
		Status:     shop.ProductStatusApproved,
	}
	require.NoError(t, tc.ProductRepo.Create(context.Background(), product))
	return product
}

func TestOrderRepository_CheckoutDecrementsStock(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	seller := SeedTestUser(t, tc, "seller-ok")
	buyer := SeedTestUser(t, tc, "buyer-ok")
	product := seedApprovedProduct(t, tc, seller.ID, 5)

	cart, err := tc.CartRepo.GetOrCreate(ctx, buyer.ID)
	require.NoError(t, err)
	item := &shop.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2}
	require.NoError(t, tc.CartRepo.CreateItem(ctx, item))

	order := &shop.Order{
		BuyerID:      buyer.ID,
		Status:       shop.OrderStatusPending,
		TotalAmount:  decimal.NewFromFloat(39.98),
		ShippingName: "Buyer", ShippingPhone: "123", ShippingAddress: "Street 1", ShippingCity: "Town",
		Items: []shop.OrderItem{
			{ProductID: product.ID, ProductName: product.Name, UnitPrice: product.Price, Quantity: 2},
		},
	}
	err = tc.OrderRepo.Checkout(ctx, order,
		[]shop.StockDecrement{{ProductID: product.ID, Quantity: 2}},
		[]uint{item.ID})
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	// Stock is decremented and the cart is empty.
	fetched, err := tc.ProductRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fetched.Stock)

	cart, err = tc.CartRepo.GetOrCreate(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestOrderRepository_CheckoutRollsBackOnInsufficientStock(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	seller := SeedTestUser(t, tc, "seller-no")
	buyer := SeedTestUser(t, tc, "buyer-no")
	product := seedApprovedProduct(t, tc, seller.ID, 1)

	order := &shop.Order{
		BuyerID:      buyer.ID,
		Status:       shop.OrderStatusPending,
		TotalAmount:  decimal.NewFromFloat(39.98),
		ShippingName: "Buyer", ShippingPhone: "123", ShippingAddress: "Street 1", ShippingCity: "Town",
		Items: []shop.OrderItem{
			{ProductID: product.ID, ProductName: product.Name, UnitPrice: product.Price, Quantity: 2},
		},
	}
	err := tc.OrderRepo.Checkout(ctx, order,
		[]shop.StockDecrement{{ProductID: product.ID, Quantity: 2}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, shop.ErrInsufficientStock)

	// Nothing was persisted or decremented.
	fetched, err := tc.ProductRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.Stock)

	_, total, err := tc.OrderRepo.ListByBuyer(ctx, buyer.ID, "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestOrderRepository_RestoreStock(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	seller := SeedTestUser(t, tc, "seller-rs")
	product := seedApprovedProduct(t, tc, seller.ID, 3)

	err := tc.OrderRepo.RestoreStock(ctx, []shop.StockDecrement{{ProductID: product.ID, Quantity: 2}})
	require.NoError(t, err)

	fetched, err := tc.ProductRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fetched.Stock)
}
