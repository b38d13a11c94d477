//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newShopHandler() (ShopHandler, *MockCategoryService, *MockProductService, *MockCartService, *MockOrderService) {
	mockCategoryService := new(MockCategoryService)
	mockProductService := new(MockProductService)
	mockCartService := new(MockCartService)
	mockOrderService := new(MockOrderService)
	handler := NewShopHandler(mockCategoryService, mockProductService, mockCartService, mockOrderService)
	return handler, mockCategoryService, mockProductService, mockCartService, mockOrderService
}

func TestShopHandler_CreateCategory_Forbidden(t *testing.T) {
	handler, mockCategoryService, _, _, _ := newShopHandler()

	mockCategoryService.On("Create", mock.Anything, "user-1", "Crafts", "").Return(nil, shop.ErrForbidden)

	c, w := newTestContext(t, "POST", "/shop/categories", `{"name":"Crafts"}`, nil)
	handler.CreateCategory(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockCategoryService.AssertExpectations(t)
}

func TestShopHandler_CreateProduct_Success(t *testing.T) {
	handler, _, mockProductService, _, _ := newShopHandler()

	product := &shop.Product{
		ID:         5,
		SellerID:   "user-1",
		CategoryID: 1,
		Name:       "Woven basket",
		Price:      decimal.RequireFromString("25.00"),
		Stock:      3,
		Status:     shop.ProductStatusPending,
	}
	mockProductService.On("Create", mock.Anything, "user-1", mock.MatchedBy(func(input shop.CreateProductInput) bool {
		return input.Name == "Woven basket" && input.Price.Equal(decimal.RequireFromString("25.00"))
	})).Return(product, nil)

	body := `{"category_id":1,"name":"Woven basket","price":"25.00","stock":3}`
	c, w := newTestContext(t, "POST", "/shop/products", body, nil)
	handler.CreateProduct(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Woven basket")
	assert.Contains(t, w.Body.String(), shop.ProductStatusPending)
	mockProductService.AssertExpectations(t)
}

func TestShopHandler_CreateProduct_InvalidPrice_Error(t *testing.T) {
	handler, _, mockProductService, _, _ := newShopHandler()

	body := `{"category_id":1,"name":"Woven basket","price":"not-a-number","stock":3}`
	c, w := newTestContext(t, "POST", "/shop/products", body, nil)
	handler.CreateProduct(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid price")
	mockProductService.AssertNotCalled(t, "Create")
}

func TestShopHandler_ReviewProduct_Reject_Success(t *testing.T) {
	handler, _, mockProductService, _, _ := newShopHandler()

	product := &shop.Product{
		ID:              5,
		Status:          shop.ProductStatusRejected,
		RejectionReason: "blurry photos",
		Price:           decimal.RequireFromString("25.00"),
	}
	mockProductService.On("Review", mock.Anything, "user-1", uint(5), false, "blurry photos").Return(product, nil)

	body := `{"action":"reject","reason":"blurry photos"}`
	c, w := newTestContext(t, "POST", "/shop/products/5/review", body, gin.Params{{Key: "id", Value: "5"}})
	handler.ReviewProduct(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "blurry photos")
	mockProductService.AssertExpectations(t)
}

func TestShopHandler_AddProductImage_Success(t *testing.T) {
	handler, _, mockProductService, _, _ := newShopHandler()

	image := &shop.ProductImage{ID: 3, ProductID: 5, ImageURL: "https://img.test/basket.jpg", IsPrimary: true}
	mockProductService.On("AddImage", mock.Anything, "user-1", uint(5), shop.ImageInput{
		URL:       "https://img.test/basket.jpg",
		IsPrimary: true,
	}).Return(image, nil)

	body := `{"url":"https://img.test/basket.jpg","is_primary":true}`
	c, w := newTestContext(t, "POST", "/shop/products/5/images", body, gin.Params{{Key: "id", Value: "5"}})
	handler.AddProductImage(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "basket.jpg")
	mockProductService.AssertExpectations(t)
}

func TestShopHandler_RemoveProductImage_Forbidden(t *testing.T) {
	handler, _, mockProductService, _, _ := newShopHandler()

	mockProductService.On("RemoveImage", mock.Anything, "user-1", uint(5), uint(3)).Return(shop.ErrForbidden)

	c, w := newTestContext(t, "DELETE", "/shop/products/5/images/3", "", gin.Params{{Key: "id", Value: "5"}, {Key: "imageId", Value: "3"}})
	handler.RemoveProductImage(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockProductService.AssertExpectations(t)
}

func TestShopHandler_AddCartItem_InsufficientStock_Error(t *testing.T) {
	handler, _, _, mockCartService, _ := newShopHandler()

	mockCartService.On("AddItem", mock.Anything, "user-1", uint(5), 10).Return(nil, shop.ErrInsufficientStock)

	c, w := newTestContext(t, "POST", "/shop/cart/items", `{"product_id":5,"quantity":10}`, nil)
	handler.AddCartItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock")
	mockCartService.AssertExpectations(t)
}

func TestShopHandler_Checkout_Success(t *testing.T) {
	handler, _, _, _, mockOrderService := newShopHandler()

	order := &shop.Order{
		ID:          9,
		BuyerID:     "user-1",
		Status:      shop.OrderStatusPending,
		TotalAmount: decimal.RequireFromString("50.00"),
	}
	mockOrderService.On("Checkout", mock.Anything, "user-1", []uint(nil), shop.ShippingInput{
		Name:    "Amelie",
		Phone:   "555-0101",
		Address: "12 Rue Principale",
		City:    "Port-Louis",
	}).Return(order, nil)

	body := `{"name":"Amelie","phone":"555-0101","address":"12 Rue Principale","city":"Port-Louis"}`
	c, w := newTestContext(t, "POST", "/shop/orders/checkout", body, nil)
	handler.Checkout(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "50.00")
	mockOrderService.AssertExpectations(t)
}

func TestShopHandler_Checkout_EmptyCart_Error(t *testing.T) {
	handler, _, _, _, mockOrderService := newShopHandler()

	mockOrderService.On("Checkout", mock.Anything, "user-1", []uint(nil), mock.Anything).Return(nil, shop.ErrEmptyCart)

	body := `{"name":"Amelie","phone":"555-0101","address":"12 Rue Principale","city":"Port-Louis"}`
	c, w := newTestContext(t, "POST", "/shop/orders/checkout", body, nil)
	handler.Checkout(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
	mockOrderService.AssertExpectations(t)
}

func TestShopHandler_SetOrderStatus_InvalidStatus_Error(t *testing.T) {
	handler, _, _, _, mockOrderService := newShopHandler()

	body := `{"status":"teleported"}`
	c, w := newTestContext(t, "PUT", "/shop/orders/9/status", body, gin.Params{{Key: "id", Value: "9"}})
	handler.SetOrderStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockOrderService.AssertNotCalled(t, "SetStatus")
}

func TestShopHandler_CancelOrder_NotCancellable_Error(t *testing.T) {
	handler, _, _, _, mockOrderService := newShopHandler()

	mockOrderService.On("Cancel", mock.Anything, "user-1", uint(9)).Return(nil, shop.ErrNotCancellable)

	c, w := newTestContext(t, "POST", "/shop/orders/9/cancel", "", gin.Params{{Key: "id", Value: "9"}})
	handler.CancelOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockOrderService.AssertExpectations(t)
}
