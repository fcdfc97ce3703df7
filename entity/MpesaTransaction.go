package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MpesaPayment           = "payment"
	MpesaPayoutFarmer      = "payout_farmer"
	MpesaPayoutTransporter = "payout_transporter"
	MpesaRefund            = "refund"
)

const (
	TxnPending   = "pending"
	TxnCompleted = "completed"
	TxnFailed    = "failed"
	TxnCancelled = "cancelled"
)

// MpesaTransaction is an opaque field store for the payment provider. The
// STK push protocol itself lives outside this service; callbacks just land
// here and, when successful, flip the order to paid.
type MpesaTransaction struct {
	gorm.Model
	OrderID *uint  `json:"orderId" gorm:"index"`
	Order   *Order `json:"-"`

	TransactionType string          `json:"transactionType" gorm:"size:20"`
	PhoneNumber     string          `json:"phoneNumber" gorm:"size:15"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`

	MerchantRequestID  string `json:"merchantRequestId" gorm:"size:100;index"`
	CheckoutRequestID  string `json:"checkoutRequestId" gorm:"size:100;index"`
	MpesaReceiptNumber string `json:"mpesaReceiptNumber" gorm:"size:100"`

	Status              string `json:"status" gorm:"size:20;default:pending"`
	ResponseCode        string `json:"responseCode" gorm:"size:10"`
	ResponseDescription string `json:"responseDescription" gorm:"type:text"`

	AccountReference string `json:"accountReference" gorm:"size:100"`
	TransactionDesc  string `json:"transactionDesc" gorm:"size:200"`
}
