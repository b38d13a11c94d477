package shop

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Cart holds a buyer's items before checkout, one cart per user.
type Cart struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    string     `gorm:"not null;uniqueIndex;type:uuid"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total returns the sum of item subtotals at current product prices.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// CartItem is a product in a cart. A product appears in a cart at
// most once; adding it again raises the quantity.
type CartItem struct {
	ID        uint    `gorm:"primaryKey"`
	CartID    uint    `gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_product"`
	Product   Product `gorm:"foreignKey:ProductID"`
	Quantity  int     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal returns quantity times the current product price.
func (i *CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a placed purchase with frozen item prices.
type Order struct {
	ID          uint            `gorm:"primaryKey"`
	BuyerID     string          `gorm:"not null;index;type:uuid"`
	Status      string          `gorm:"not null;type:varchar(15);default:pending;index"`
	TotalAmount decimal.Decimal `gorm:"not null;type:decimal(10,2)"`

	ShippingName    string `gorm:"not null;type:varchar(255)"`
	ShippingPhone   string `gorm:"not null;type:varchar(20)"`
	ShippingAddress string `gorm:"not null;type:text"`
	ShippingCity    string `gorm:"not null;type:varchar(100)"`
	ShippingNote    string `gorm:"type:text"`

	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanCancel reports whether the buyer may still cancel the order.
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}

// OrderItem is a line on an order. Name and unit price are copied from
// the product at checkout so later edits do not rewrite history.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey"`
	OrderID     uint            `gorm:"not null;index"`
	ProductID   uint            `gorm:"not null;index"`
	ProductName string          `gorm:"not null;type:varchar(255)"`
	UnitPrice   decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Quantity    int             `gorm:"not null"`
	CreatedAt   time.Time
}

// Subtotal returns quantity times the frozen unit price.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
