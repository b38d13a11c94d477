package shop

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
)

// Product approval statuses. New products start pending and only
// approved products are publicly listed and purchasable.
const (
	ProductStatusPending  = "pending"
	ProductStatusApproved = "approved"
	ProductStatusRejected = "rejected"
)

// Category groups products. Slugs are derived from the name.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Slug        string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product is a seller listing subject to staff approval.
type Product struct {
	ID              uint            `gorm:"primaryKey"`
	SellerID        string          `gorm:"not null;index;type:uuid"`
	Seller          accounts.User   `gorm:"foreignKey:SellerID"`
	CategoryID      uint            `gorm:"not null;index"`
	Category        Category        `gorm:"foreignKey:CategoryID"`
	Name            string          `gorm:"not null;type:varchar(255)"`
	Description     string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Stock           int             `gorm:"not null"`
	Status          string          `gorm:"not null;type:varchar(10);default:pending;index"`
	RejectionReason string          `gorm:"type:text"`
	ApprovedAt      *time.Time
	ApprovedByID    *string        `gorm:"type:uuid"`
	Images          []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InStock reports whether the requested quantity is available.
func (p *Product) InStock(quantity int) bool {
	return p.Stock >= quantity
}

// PrimaryImage returns the product's primary image URL, or the first
// image when none is marked primary.
func (p *Product) PrimaryImage() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return ""
}

// ProductImage is a product photo. At most one image per product is
// primary.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;index"`
	ImageURL  string `gorm:"not null;type:varchar(500)"`
	IsPrimary bool
	CreatedAt time.Time
}
