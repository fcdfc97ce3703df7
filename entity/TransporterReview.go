package entity

import (
	"gorm.io/gorm"
)

type TransporterReview struct {
	gorm.Model
	TransporterID uint               `json:"transporterId" gorm:"uniqueIndex:idx_transporter_review"`
	Transporter   TransporterProfile `json:"-"`
	BuyerID       uint               `json:"buyerId" gorm:"uniqueIndex:idx_transporter_review"`
	Buyer         BuyerProfile       `json:"-"`
	OrderID       uint               `json:"orderId" gorm:"uniqueIndex:idx_transporter_review"`
	Order         Order              `json:"-"`

	Rating  uint   `json:"rating"` // 1..5
	Title   string `json:"title" gorm:"size:200"`
	Comment string `json:"comment" gorm:"type:text"`

	Timeliness    *uint `json:"timeliness"`
	Communication *uint `json:"communication"`
	CareOfGoods   *uint `json:"careOfGoods"`

	IsApproved bool `json:"isApproved" gorm:"default:true"`
}
