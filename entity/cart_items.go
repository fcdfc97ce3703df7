package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem holds no price snapshot: line totals are always computed from
// the product's current selling price. One row per (cart, product).
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId" gorm:"uniqueIndex:idx_cart_product"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId" gorm:"uniqueIndex:idx_cart_product"`
	Product   Product `json:"product"`

	Quantity decimal.Decimal `json:"quantity" gorm:"type:decimal(10,2);default:1"`
}

func (ci *CartItem) TotalPrice() decimal.Decimal {
	return ci.Quantity.Mul(ci.Product.SellingPrice())
}
