package entity

import (
	"gorm.io/gorm"
)

type FarmerReview struct {
	gorm.Model
	FarmerID uint          `json:"farmerId" gorm:"uniqueIndex:idx_farmer_review"`
	Farmer   FarmerProfile `json:"-"`
	BuyerID  uint          `json:"buyerId" gorm:"uniqueIndex:idx_farmer_review"`
	Buyer    BuyerProfile  `json:"-"`
	OrderID  uint          `json:"orderId" gorm:"uniqueIndex:idx_farmer_review"`
	Order    Order         `json:"-"`

	Rating  uint   `json:"rating"` // 1..5
	Title   string `json:"title" gorm:"size:200"`
	Comment string `json:"comment" gorm:"type:text"`

	ProductQuality *uint `json:"productQuality"`
	Communication  *uint `json:"communication"`
	Packaging      *uint `json:"packaging"`

	IsApproved bool `json:"isApproved" gorm:"default:true"`
}
