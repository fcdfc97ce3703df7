package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderAssigned  = "assigned"
	OrderPickedUp  = "picked_up"
	OrderInTransit = "in_transit"
	OrderDelivered = "delivered"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
	OrderRefunded  = "refunded"
)

const (
	PaymentMpesa = "mpesa"
	PaymentCash  = "cash"
	PaymentBank  = "bank"
)

// OrderTerminal reports whether a status permits no further transitions.
func OrderTerminal(status string) bool {
	return status == OrderCompleted || status == OrderCancelled || status == OrderRefunded
}

// Order is the immutable purchase record materialized from a cart at
// checkout. The money fields are fixed at creation and never recomputed.
type Order struct {
	gorm.Model
	OrderNumber string `json:"orderNumber" gorm:"size:20;uniqueIndex"`

	BuyerID uint         `json:"buyerId" gorm:"index"`
	Buyer   BuyerProfile `json:"-"`

	DeliveryAddress  string `json:"deliveryAddress" gorm:"type:text"`
	DeliveryPhone    string `json:"deliveryPhone" gorm:"size:15"`
	DeliveryCountyID uint   `json:"deliveryCountyId"`
	DeliveryCounty   County `json:"-"`
	DeliveryNotes    string `json:"deliveryNotes" gorm:"type:text"`

	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2)"`
	DeliveryFee decimal.Decimal `json:"deliveryFee" gorm:"type:decimal(8,2);default:0"`
	ServiceFee  decimal.Decimal `json:"serviceFee" gorm:"type:decimal(8,2);default:0"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2)"`

	Status        string `json:"status" gorm:"size:20;default:pending;index"`
	PaymentMethod string `json:"paymentMethod" gorm:"size:20;default:mpesa"`

	TransporterID *uint               `json:"transporterId"`
	Transporter   *TransporterProfile `json:"-"`

	PaymentConfirmedAt *time.Time `json:"paymentConfirmedAt"`
	PickedUpAt         *time.Time `json:"pickedUpAt"`
	DeliveredAt        *time.Time `json:"deliveredAt"`
	EstimatedDelivery  *time.Time `json:"estimatedDelivery"`

	Items             []OrderItem        `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	MpesaTransactions []MpesaTransaction `json:"-"`
}
