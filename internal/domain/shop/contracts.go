package shop

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Sentinel errors shared across the shop services.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNotApproved       = errors.New("product is not approved")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNotCancellable    = errors.New("order can no longer be cancelled")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrOwnProduct        = errors.New("cannot buy your own product")
)

// CategoryService defines category management. Mutations are staff only.
type CategoryService interface {
	Create(ctx context.Context, userID, name, description string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Get(ctx context.Context, categoryID uint) (*Category, error)
	Update(ctx context.Context, userID string, categoryID uint, name, description string) (*Category, error)
	Delete(ctx context.Context, userID string, categoryID uint) error
}

// ImageInput describes a product image supplied with a listing.
type ImageInput struct {
	URL       string
	IsPrimary bool
}

// CreateProductInput carries the fields accepted at product creation.
type CreateProductInput struct {
	CategoryID  uint
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Images      []ImageInput
}

// UpdateProductInput carries the mutable product fields. Nil pointers
// leave the existing value untouched.
type UpdateProductInput struct {
	CategoryID  *uint
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Query      string
	CategoryID *uint
	SellerID   string
	Status     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal

	// VisibleTo widens the Status filter to also include this user's
	// own products regardless of status.
	VisibleTo string

	// Sort is one of created_at, price or name, prefixed with "-" for
	// descending. Empty means newest first.
	Sort     string
	Page     int
	PageSize int
}

// ProductService defines listings and the approval workflow.
type ProductService interface {
	// Create stores a product in pending status for staff review.
	Create(ctx context.Context, sellerID string, input CreateProductInput) (*Product, error)

	// Get returns a product. Non-approved products are visible only
	// to their seller and to staff.
	Get(ctx context.Context, viewerID string, productID uint) (*Product, error)

	// Update modifies a product. Seller only. Changing name, price or
	// description sends an approved product back to pending.
	Update(ctx context.Context, userID string, productID uint, input UpdateProductInput) (*Product, error)

	Delete(ctx context.Context, userID string, productID uint) error

	// List returns products matching the filter: approved listings
	// plus the viewer's own for regular users, everything for staff
	// (who may also filter by status).
	List(ctx context.Context, viewerID string, filter ProductFilter) ([]*Product, int64, error)

	// ListMine returns the seller's own products in any status.
	ListMine(ctx context.Context, sellerID string, page, pageSize int) ([]*Product, int64, error)

	// ListPending returns products awaiting review. Staff only.
	ListPending(ctx context.Context, userID string, page, pageSize int) ([]*Product, int64, error)

	// Review approves or rejects a pending product and notifies the
	// seller. Rejection requires a reason. Staff only.
	Review(ctx context.Context, userID string, productID uint, approve bool, reason string) (*Product, error)

	// AddImage attaches an image to the seller's product. Marking it
	// primary demotes the current primary image.
	AddImage(ctx context.Context, userID string, productID uint, input ImageInput) (*ProductImage, error)

	// RemoveImage detaches an image from the seller's product. Removing
	// the primary image promotes the oldest remaining one.
	RemoveImage(ctx context.Context, userID string, productID, imageID uint) error
}

// CartService defines cart manipulation.
type CartService interface {
	// Get returns the user's cart, creating an empty one if absent.
	Get(ctx context.Context, userID string) (*Cart, error)

	// AddItem puts an approved product into the cart. Adding a product
	// already present raises its quantity. Sellers cannot add their
	// own products.
	AddItem(ctx context.Context, userID string, productID uint, quantity int) (*CartItem, error)

	UpdateItem(ctx context.Context, userID string, itemID uint, quantity int) (*CartItem, error)
	RemoveItem(ctx context.Context, userID string, itemID uint) error
	Clear(ctx context.Context, userID string) error
}

// ShippingInput carries the delivery details collected at checkout.
type ShippingInput struct {
	Name    string
	Phone   string
	Address string
	City    string
	Note    string
}

// OrderService defines checkout and order tracking.
type OrderService interface {
	// Checkout turns the cart into an order: stock is verified and
	// decremented, item prices are frozen and the checked-out items
	// leave the cart, all in one transaction. An empty cartItemIDs
	// checks out the whole cart, otherwise only the named items.
	Checkout(ctx context.Context, userID string, cartItemIDs []uint, shipping ShippingInput) (*Order, error)

	// BuyNow orders a single product directly, bypassing the cart.
	BuyNow(ctx context.Context, userID string, productID uint, quantity int, shipping ShippingInput) (*Order, error)

	// List returns the buyer's orders, optionally restricted to one
	// status.
	List(ctx context.Context, userID, status string, page, pageSize int) ([]*Order, int64, error)
	Get(ctx context.Context, userID string, orderID uint) (*Order, error)

	// Cancel cancels a pending or processing order and restores stock.
	Cancel(ctx context.Context, userID string, orderID uint) (*Order, error)

	// SetStatus advances an order through the fulfilment states.
	// Staff only.
	SetStatus(ctx context.Context, userID string, orderID uint, status string) (*Order, error)

	// ListSales returns orders containing the seller's products.
	ListSales(ctx context.Context, sellerID string, page, pageSize int) ([]*Order, int64, error)
}

// CategoryRepository defines persistence for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	UpdateByID(ctx context.Context, category *Category) error
	DeleteByID(ctx context.Context, categoryID uint) error
	NameTaken(ctx context.Context, name string) (bool, error)
}

// ProductRepository defines persistence for products and images.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, productID uint) (*Product, error)
	UpdateByID(ctx context.Context, product *Product) error
	DeleteByID(ctx context.Context, productID uint) error
	List(ctx context.Context, filter ProductFilter) ([]*Product, int64, error)

	CreateImage(ctx context.Context, image *ProductImage) error
	GetImage(ctx context.Context, imageID uint) (*ProductImage, error)
	DeleteImage(ctx context.Context, imageID uint) error

	// ClearPrimaryImage unmarks the product's primary image.
	ClearPrimaryImage(ctx context.Context, productID uint) error

	// PromoteOldestImage marks the product's oldest image primary.
	// A product without images is left alone.
	PromoteOldestImage(ctx context.Context, productID uint) error
}

// CartRepository defines persistence for carts.
type CartRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*Cart, error)
	GetItem(ctx context.Context, itemID uint) (*CartItem, error)
	GetItemByProduct(ctx context.Context, cartID, productID uint) (*CartItem, error)
	CreateItem(ctx context.Context, item *CartItem) error
	UpdateItem(ctx context.Context, item *CartItem) error
	DeleteItem(ctx context.Context, itemID uint) error
	ClearCart(ctx context.Context, cartID uint) error
}

// StockDecrement names a product and the quantity to subtract at
// checkout.
type StockDecrement struct {
	ProductID uint
	Quantity  int
}

// OrderRepository defines persistence for orders. Checkout runs in a
// single database transaction.
type OrderRepository interface {
	// Checkout stores the order with its items, applies the stock
	// decrements after re-verifying availability and deletes the given
	// cart items. Any failure rolls the whole operation back.
	Checkout(ctx context.Context, order *Order, decrements []StockDecrement, cartItemIDs []uint) error

	GetByID(ctx context.Context, orderID uint) (*Order, error)
	// ListByBuyer returns the buyer's orders, filtered by status when
	// one is given.
	ListByBuyer(ctx context.Context, buyerID, status string, page, pageSize int) ([]*Order, int64, error)

	// ListAll returns every order, filtered by status when one is
	// given.
	ListAll(ctx context.Context, status string, page, pageSize int) ([]*Order, int64, error)
	ListBySeller(ctx context.Context, sellerID string, page, pageSize int) ([]*Order, int64, error)
	UpdateByID(ctx context.Context, order *Order) error

	// RestoreStock adds the quantities back, used on cancellation.
	RestoreStock(ctx context.Context, increments []StockDecrement) error
}
