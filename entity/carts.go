package entity

import (
	"gorm.io/gorm"
)

// Cart is ephemeral staging: existence means "open". Guests are keyed by
// the session token, signed-in buyers by BuyerID.
type Cart struct {
	gorm.Model
	SessionID string        `json:"sessionId" gorm:"size:100;uniqueIndex"`
	BuyerID   *uint         `json:"buyerId"`
	Buyer     *BuyerProfile `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
