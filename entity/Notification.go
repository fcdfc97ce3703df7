package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	NotifyOrderPlaced     = "order_placed"
	NotifyOrderConfirmed  = "order_confirmed"
	NotifyPaymentReceived = "payment_received"
	NotifyDriverAssigned  = "driver_assigned"
	NotifyInTransit       = "in_transit"
	NotifyDelivered       = "delivered"
	NotifyReviewRequest   = "review_request"
	NotifySystemAlert     = "system_alert"
)

type Notification struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"index"`
	User   User `json:"-"`

	NotificationType string `json:"notificationType" gorm:"size:20"`
	Title            string `json:"title" gorm:"size:200"`
	Message          string `json:"message" gorm:"type:text"`

	OrderID   *uint `json:"orderId"`
	ProductID *uint `json:"productId"`

	IsRead bool       `json:"isRead"`
	ReadAt *time.Time `json:"readAt"`
}
