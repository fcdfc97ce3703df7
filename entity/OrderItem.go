package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a frozen snapshot taken at checkout. Later product edits
// (price, name) never alter historical orders; ProductID and FarmerID are
// kept only for reporting and payouts.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId" gorm:"index"`
	Order   Order `json:"-"`

	ProductID uint          `json:"productId"`
	Product   Product       `json:"-"`
	FarmerID  uint          `json:"farmerId"`
	Farmer    FarmerProfile `json:"-"`

	Quantity   decimal.Decimal `json:"quantity" gorm:"type:decimal(10,2)"`
	UnitPrice  decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)"`
	TotalPrice decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2)"`

	ProductName string `json:"productName" gorm:"size:200"`
	ProductSku  string `json:"productSku" gorm:"size:100"`
	Unit        string `json:"unit" gorm:"size:20"`
}
