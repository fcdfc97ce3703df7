package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	FarmTypeCrops      = "crops"
	FarmTypeLivestock  = "livestock"
	FarmTypePoultry    = "poultry"
	FarmTypeDairy      = "dairy"
	FarmTypeMixed      = "mixed"
	FarmTypeOrganic    = "organic"
	FarmTypeGreenhouse = "greenhouse"
)

type FarmerProfile struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	FarmName string          `json:"farmName" gorm:"size:200"`
	FarmSize decimal.Decimal `json:"farmSize" gorm:"type:decimal(8,2)"` // acres
	FarmType string          `json:"farmType" gorm:"size:20;default:crops"`

	CountyID         uint      `json:"countyId"`
	County           County    `json:"-"`
	SubCountyID      uint      `json:"subCountyId"`
	SubCounty        SubCounty `json:"-"`
	WardID           uint      `json:"wardId"`
	Ward             Ward      `json:"-"`
	SpecificLocation string    `json:"specificLocation" gorm:"size:200"`

	MpesaNumber string `json:"mpesaNumber" gorm:"size:15"`
	Description string `json:"description" gorm:"type:text"`

	TotalSales   decimal.Decimal `json:"totalSales" gorm:"type:decimal(12,2);default:0"`
	Rating       decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);default:0"`
	TotalReviews uint            `json:"totalReviews"`

	IsVerified bool `json:"isVerified"`
	IsActive   bool `json:"isActive" gorm:"default:true"`

	Products []Product      `json:"-" gorm:"foreignKey:FarmerID"`
	Reviews  []FarmerReview `json:"-" gorm:"foreignKey:FarmerID"`
}
