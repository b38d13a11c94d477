package v1

import (
	"net/http"
	"strconv"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ShopHandler defines the interface for handling category, product, cart
// and order operations
type ShopHandler interface {
	CreateCategory(ctx *gin.Context)
	ListCategories(ctx *gin.Context)
	GetCategory(ctx *gin.Context)
	UpdateCategory(ctx *gin.Context)
	DeleteCategory(ctx *gin.Context)

	CreateProduct(ctx *gin.Context)
	GetProduct(ctx *gin.Context)
	UpdateProduct(ctx *gin.Context)
	DeleteProduct(ctx *gin.Context)
	ListProducts(ctx *gin.Context)
	ListMyProducts(ctx *gin.Context)
	ListPendingProducts(ctx *gin.Context)
	ReviewProduct(ctx *gin.Context)
	AddProductImage(ctx *gin.Context)
	RemoveProductImage(ctx *gin.Context)

	GetCart(ctx *gin.Context)
	AddCartItem(ctx *gin.Context)
	UpdateCartItem(ctx *gin.Context)
	RemoveCartItem(ctx *gin.Context)
	ClearCart(ctx *gin.Context)

	Checkout(ctx *gin.Context)
	BuyNow(ctx *gin.Context)
	ListOrders(ctx *gin.Context)
	GetOrder(ctx *gin.Context)
	CancelOrder(ctx *gin.Context)
	SetOrderStatus(ctx *gin.Context)
	ListSales(ctx *gin.Context)
}

type shopHandler struct {
	categoryService shop.CategoryService
	productService  shop.ProductService
	cartService     shop.CartService
	orderService    shop.OrderService
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(categoryService shop.CategoryService, productService shop.ProductService, cartService shop.CartService, orderService shop.OrderService) ShopHandler {
	return &shopHandler{
		categoryService: categoryService,
		productService:  productService,
		cartService:     cartService,
		orderService:    orderService,
	}
}

// CreateCategory stores a category. Staff only.
func (handler *shopHandler) CreateCategory(ctx *gin.Context) {
	var request CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	category, err := handler.categoryService.Create(ctx, CurrentUserID(ctx), request.Name, request.Description)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toCategoryResponse(category))
}

// ListCategories returns every category.
func (handler *shopHandler) ListCategories(ctx *gin.Context) {
	categories, err := handler.categoryService.List(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetCategory returns one category.
func (handler *shopHandler) GetCategory(ctx *gin.Context) {
	categoryID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	category, err := handler.categoryService.Get(ctx, categoryID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toCategoryResponse(category))
}

// UpdateCategory modifies a category. Staff only.
func (handler *shopHandler) UpdateCategory(ctx *gin.Context) {
	categoryID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	category, err := handler.categoryService.Update(ctx, CurrentUserID(ctx), categoryID, request.Name, request.Description)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toCategoryResponse(category))
}

// DeleteCategory removes a category. Staff only.
func (handler *shopHandler) DeleteCategory(ctx *gin.Context) {
	categoryID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.categoryService.Delete(ctx, CurrentUserID(ctx), categoryID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateProduct stores a listing in pending status for staff review.
func (handler *shopHandler) CreateProduct(ctx *gin.Context) {
	var request CreateProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	price, err := decimal.NewFromString(request.Price)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid price"})
		return
	}

	images := make([]shop.ImageInput, 0, len(request.Images))
	for _, image := range request.Images {
		images = append(images, shop.ImageInput{URL: image.URL, IsPrimary: image.IsPrimary})
	}

	product, err := handler.productService.Create(ctx, CurrentUserID(ctx), shop.CreateProductInput{
		CategoryID:  request.CategoryID,
		Name:        request.Name,
		Description: request.Description,
		Price:       price,
		Stock:       request.Stock,
		Images:      images,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toProductResponse(product))
}

// GetProduct returns one product the caller may see.
func (handler *shopHandler) GetProduct(ctx *gin.Context) {
	productID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	product, err := handler.productService.Get(ctx, CurrentUserID(ctx), productID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProductResponse(product))
}

// UpdateProduct modifies a listing. Seller only.
func (handler *shopHandler) UpdateProduct(ctx *gin.Context) {
	productID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request UpdateProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	input := shop.UpdateProductInput{
		CategoryID:  request.CategoryID,
		Name:        request.Name,
		Description: request.Description,
		Stock:       request.Stock,
	}
	if request.Price != nil {
		price, err := decimal.NewFromString(*request.Price)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid price"})
			return
		}
		input.Price = &price
	}

	product, err := handler.productService.Update(ctx, CurrentUserID(ctx), productID, input)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProductResponse(product))
}

// DeleteProduct removes a listing.
func (handler *shopHandler) DeleteProduct(ctx *gin.Context) {
	productID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.productService.Delete(ctx, CurrentUserID(ctx), productID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListProducts returns the catalog matching the query filters:
// approved listings plus the caller's own, or every status for staff.
func (handler *shopHandler) ListProducts(ctx *gin.Context) {
	filter := shop.ProductFilter{
		Query:  ctx.Query("q"),
		Status: ctx.Query("status"),
		Sort:   ctx.Query("sort"),
	}
	filter.Page, filter.PageSize = queryPage(ctx)

	if raw := ctx.Query("category_id"); raw != "" {
		if value, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(value)
			filter.CategoryID = &categoryID
		}
	}
	if raw := ctx.Query("min_price"); raw != "" {
		if value, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &value
		}
	}
	if raw := ctx.Query("max_price"); raw != "" {
		if value, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &value
		}
	}

	products, total, err := handler.productService.List(ctx, CurrentUserID(ctx), filter)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": toProductResponses(products), "total": total})
}

// ListMyProducts returns the caller's own listings in any status.
func (handler *shopHandler) ListMyProducts(ctx *gin.Context) {
	page, pageSize := queryPage(ctx)
	products, total, err := handler.productService.ListMine(ctx, CurrentUserID(ctx), page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": toProductResponses(products), "total": total})
}

// ListPendingProducts returns listings awaiting review. Staff only.
func (handler *shopHandler) ListPendingProducts(ctx *gin.Context) {
	page, pageSize := queryPage(ctx)
	products, total, err := handler.productService.ListPending(ctx, CurrentUserID(ctx), page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": toProductResponses(products), "total": total})
}

// ReviewProduct approves or rejects a pending listing. Staff only.
func (handler *shopHandler) ReviewProduct(ctx *gin.Context) {
	productID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request ReviewProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	product, err := handler.productService.Review(ctx, CurrentUserID(ctx), productID, request.Action == "approve", request.Reason)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProductResponse(product))
}

// AddProductImage attaches a photo to a listing. Seller only.
func (handler *shopHandler) AddProductImage(ctx *gin.Context) {
	productID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request AddProductImageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	image, err := handler.productService.AddImage(ctx, CurrentUserID(ctx), productID, shop.ImageInput{
		URL:       request.URL,
		IsPrimary: request.IsPrimary,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, ProductImageResponse{ID: image.ID, URL: image.ImageURL, IsPrimary: image.IsPrimary})
}

// RemoveProductImage detaches a photo from a listing. Seller only.
func (handler *shopHandler) RemoveProductImage(ctx *gin.Context) {
	productID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	imageID, ok := pathUint(ctx, "imageId")
	if !ok {
		return
	}
	if err := handler.productService.RemoveImage(ctx, CurrentUserID(ctx), productID, imageID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetCart returns the caller's cart.
func (handler *shopHandler) GetCart(ctx *gin.Context) {
	cart, err := handler.cartService.Get(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toCartResponse(cart))
}

// AddCartItem puts a product into the cart.
func (handler *shopHandler) AddCartItem(ctx *gin.Context) {
	var request AddCartItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	item, err := handler.cartService.AddItem(ctx, CurrentUserID(ctx), request.ProductID, request.Quantity)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toCartItemResponse(item))
}

// UpdateCartItem changes a cart item quantity.
func (handler *shopHandler) UpdateCartItem(ctx *gin.Context) {
	itemID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request UpdateCartItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	item, err := handler.cartService.UpdateItem(ctx, CurrentUserID(ctx), itemID, request.Quantity)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toCartItemResponse(item))
}

// RemoveCartItem removes one item from the cart.
func (handler *shopHandler) RemoveCartItem(ctx *gin.Context) {
	itemID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.cartService.RemoveItem(ctx, CurrentUserID(ctx), itemID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ClearCart empties the cart.
func (handler *shopHandler) ClearCart(ctx *gin.Context) {
	if err := handler.cartService.Clear(ctx, CurrentUserID(ctx)); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Checkout turns the cart, or a named subset of it, into an order.
func (handler *shopHandler) Checkout(ctx *gin.Context) {
	var request CheckoutRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	order, err := handler.orderService.Checkout(ctx, CurrentUserID(ctx), request.CartItemIDs, shop.ShippingInput{
		Name:    request.Name,
		Phone:   request.Phone,
		Address: request.Address,
		City:    request.City,
		Note:    request.Note,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toOrderResponse(order))
}

// BuyNow orders a single product directly, bypassing the cart.
func (handler *shopHandler) BuyNow(ctx *gin.Context) {
	var request BuyNowRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	order, err := handler.orderService.BuyNow(ctx, CurrentUserID(ctx), request.ProductID, request.Quantity, shop.ShippingInput{
		Name:    request.Shipping.Name,
		Phone:   request.Shipping.Phone,
		Address: request.Shipping.Address,
		City:    request.Shipping.City,
		Note:    request.Shipping.Note,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toOrderResponse(order))
}

// ListOrders returns the caller's orders, optionally filtered by
// status.
func (handler *shopHandler) ListOrders(ctx *gin.Context) {
	page, pageSize := queryPage(ctx)
	orders, total, err := handler.orderService.List(ctx, CurrentUserID(ctx), ctx.Query("status"), page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": toOrderResponses(orders), "total": total})
}

// GetOrder returns one order visible to the caller.
func (handler *shopHandler) GetOrder(ctx *gin.Context) {
	orderID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	order, err := handler.orderService.Get(ctx, CurrentUserID(ctx), orderID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponse(order))
}

// CancelOrder cancels a pending or processing order and restores stock.
func (handler *shopHandler) CancelOrder(ctx *gin.Context) {
	orderID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	order, err := handler.orderService.Cancel(ctx, CurrentUserID(ctx), orderID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponse(order))
}

// SetOrderStatus advances an order through fulfilment. Staff only.
func (handler *shopHandler) SetOrderStatus(ctx *gin.Context) {
	orderID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request SetOrderStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	order, err := handler.orderService.SetStatus(ctx, CurrentUserID(ctx), orderID, request.Status)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponse(order))
}

// ListSales returns orders containing the caller's products.
func (handler *shopHandler) ListSales(ctx *gin.Context) {
	page, pageSize := queryPage(ctx)
	orders, total, err := handler.orderService.ListSales(ctx, CurrentUserID(ctx), page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": toOrderResponses(orders), "total": total})
}
