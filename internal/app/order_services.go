package app

import (
	"context"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"github.com/shopspring/decimal"
)

// cartService implements the CartService interface
type cartService struct {
	cartRepo    shop.CartRepository
	productRepo shop.ProductRepository
	logger      logger.Logger
}

// NewCartService creates a new instance of CartService
func NewCartService(
	cartRepo shop.CartRepository,
	productRepo shop.ProductRepository,
	logger logger.Logger,
) (shop.CartService, error) {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}, nil
}

func (s *cartService) Get(ctx context.Context, userID string) (*shop.Cart, error) {
	return s.cartRepo.GetOrCreate(ctx, userID)
}

func (s *cartService) AddItem(ctx context.Context, userID string, productID uint, quantity int) (*shop.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != shop.ProductStatusApproved {
		return nil, shop.ErrNotApproved
	}
	if product.SellerID == userID {
		return nil, shop.ErrOwnProduct
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetItemByProduct(ctx, cart.ID, productID)
	if err == nil {
		item.Quantity += quantity
		if item.Quantity > product.Stock {
			return nil, shop.ErrInsufficientStock
		}
		if err := s.cartRepo.UpdateItem(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	}

	if quantity > product.Stock {
		return nil, shop.ErrInsufficientStock
	}
	item = &shop.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	item.Product = *product
	return item, nil
}

func (s *cartService) UpdateItem(ctx context.Context, userID string, itemID uint, quantity int) (*shop.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.cartRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.CartID != cart.ID {
		return nil, shop.ErrForbidden
	}
	if quantity > item.Product.Stock {
		return nil, shop.ErrInsufficientStock
	}

	item.Quantity = quantity
	if err := s.cartRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID string, itemID uint) error {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	item, err := s.cartRepo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.CartID != cart.ID {
		return shop.ErrForbidden
	}
	return s.cartRepo.DeleteItem(ctx, itemID)
}

func (s *cartService) Clear(ctx context.Context, userID string) error {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return s.cartRepo.ClearCart(ctx, cart.ID)
}

// orderService implements the OrderService interface
type orderService struct {
	orderRepo   shop.OrderRepository
	cartRepo    shop.CartRepository
	productRepo shop.ProductRepository
	userRepo    accounts.UserRepository
	notifier    social.Notifier
	logger      logger.Logger
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(
	orderRepo shop.OrderRepository,
	cartRepo shop.CartRepository,
	productRepo shop.ProductRepository,
	userRepo accounts.UserRepository,
	notifier social.Notifier,
	logger logger.Logger,
) (shop.OrderService, error) {
	return &orderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}, nil
}

func validShipping(shipping shop.ShippingInput) error {
	if shipping.Name == "" || shipping.Phone == "" || shipping.Address == "" || shipping.City == "" {
		return fmt.Errorf("shipping name, phone, address and city are required")
	}
	return nil
}

func (s *orderService) Checkout(ctx context.Context, userID string, cartItemIDs []uint, shipping shop.ShippingInput) (*shop.Order, error) {
	if err := validShipping(shipping); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := cart.Items
	if len(cartItemIDs) > 0 {
		byID := make(map[uint]shop.CartItem, len(cart.Items))
		for _, item := range cart.Items {
			byID[item.ID] = item
		}
		items = make([]shop.CartItem, 0, len(cartItemIDs))
		for _, id := range cartItemIDs {
			item, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("cart item %d: %w", id, shop.ErrNotFound)
			}
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, shop.ErrEmptyCart
	}

	order := &shop.Order{
		BuyerID:         userID,
		Status:          shop.OrderStatusPending,
		ShippingName:    shipping.Name,
		ShippingPhone:   shipping.Phone,
		ShippingAddress: shipping.Address,
		ShippingCity:    shipping.City,
		ShippingNote:    shipping.Note,
	}

	total := decimal.Zero
	var decrements []shop.StockDecrement
	var checkedOutIDs []uint
	for _, item := range items {
		// Items whose product vanished or lost approval since being
		// added are checked here; stock is re-verified inside the
		// checkout transaction.
		if item.Product.Status != shop.ProductStatusApproved {
			return nil, fmt.Errorf("product %q: %w", item.Product.Name, shop.ErrNotApproved)
		}
		order.Items = append(order.Items, shop.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			UnitPrice:   item.Product.Price,
			Quantity:    item.Quantity,
		})
		total = total.Add(item.Subtotal())
		decrements = append(decrements, shop.StockDecrement{ProductID: item.ProductID, Quantity: item.Quantity})
		checkedOutIDs = append(checkedOutIDs, item.ID)
	}
	order.TotalAmount = total

	if err := s.orderRepo.Checkout(ctx, order, decrements, checkedOutIDs); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) BuyNow(ctx context.Context, userID string, productID uint, quantity int, shipping shop.ShippingInput) (*shop.Order, error) {
	if err := validShipping(shipping); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != shop.ProductStatusApproved {
		return nil, shop.ErrNotApproved
	}
	if product.SellerID == userID {
		return nil, shop.ErrOwnProduct
	}

	order := &shop.Order{
		BuyerID:         userID,
		Status:          shop.OrderStatusPending,
		TotalAmount:     product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		ShippingName:    shipping.Name,
		ShippingPhone:   shipping.Phone,
		ShippingAddress: shipping.Address,
		ShippingCity:    shipping.City,
		ShippingNote:    shipping.Note,
		Items: []shop.OrderItem{{
			ProductID:   productID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    quantity,
		}},
	}

	decrements := []shop.StockDecrement{{ProductID: productID, Quantity: quantity}}
	if err := s.orderRepo.Checkout(ctx, order, decrements, nil); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context, userID, status string, page, pageSize int) ([]*shop.Order, int64, error) {
	if status != "" && !validOrderStatus(status) {
		return nil, 0, shop.ErrInvalidStatus
	}
	page, pageSize = normalizePage(page, pageSize)

	// Staff see every order, buyers their own.
	if err := requireStaff(ctx, s.userRepo, userID); err == nil {
		return s.orderRepo.ListAll(ctx, status, page, pageSize)
	}
	return s.orderRepo.ListByBuyer(ctx, userID, status, page, pageSize)
}

func validOrderStatus(status string) bool {
	switch status {
	case shop.OrderStatusPending, shop.OrderStatusProcessing, shop.OrderStatusShipped,
		shop.OrderStatusDelivered, shop.OrderStatusCancelled:
		return true
	}
	return false
}

func (s *orderService) Get(ctx context.Context, userID string, orderID uint) (*shop.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != userID {
		if err := requireStaff(ctx, s.userRepo, userID); err != nil {
			return nil, fmt.Errorf("order %d: %w", orderID, shop.ErrNotFound)
		}
	}
	return order, nil
}

func (s *orderService) Cancel(ctx context.Context, userID string, orderID uint) (*shop.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != userID {
		return nil, shop.ErrForbidden
	}
	if !order.CanCancel() {
		return nil, shop.ErrNotCancellable
	}

	order.Status = shop.OrderStatusCancelled
	if err := s.orderRepo.UpdateByID(ctx, order); err != nil {
		return nil, err
	}

	var increments []shop.StockDecrement
	for _, item := range order.Items {
		increments = append(increments, shop.StockDecrement{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	if err := s.orderRepo.RestoreStock(ctx, increments); err != nil {
		return nil, err
	}
	return order, nil
}

// orderTransitions lists the allowed forward moves per status.
var orderTransitions = map[string][]string{
	shop.OrderStatusPending:    {shop.OrderStatusProcessing, shop.OrderStatusCancelled},
	shop.OrderStatusProcessing: {shop.OrderStatusShipped, shop.OrderStatusCancelled},
	shop.OrderStatusShipped:    {shop.OrderStatusDelivered},
}

func (s *orderService) SetStatus(ctx context.Context, userID string, orderID uint, status string) (*shop.Order, error) {
	if err := requireStaff(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range orderTransitions[order.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot move order from %s to %s: %w", order.Status, status, shop.ErrInvalidStatus)
	}

	order.Status = status
	if err := s.orderRepo.UpdateByID(ctx, order); err != nil {
		return nil, err
	}

	if status == shop.OrderStatusCancelled {
		var increments []shop.StockDecrement
		for _, item := range order.Items {
			increments = append(increments, shop.StockDecrement{ProductID: item.ProductID, Quantity: item.Quantity})
		}
		if err := s.orderRepo.RestoreStock(ctx, increments); err != nil {
			return nil, err
		}
	}

	if err := s.notifier.Notify(ctx, &social.Notification{
		RecipientID: order.BuyerID,
		ActorID:     userID,
		Type:        social.NotificationOrderStatus,
		Message:     fmt.Sprintf("your order #%d is now %s", order.ID, status),
	}); err != nil {
		s.logger.Warn("Failed to notify order status change: ", err)
	}
	return order, nil
}

func (s *orderService) ListSales(ctx context.Context, sellerID string, page, pageSize int) ([]*shop.Order, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	return s.orderRepo.ListBySeller(ctx, sellerID, page, pageSize)
}
