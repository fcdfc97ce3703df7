package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BuyerTypeIndividual  = "individual"
	BuyerTypeRestaurant  = "restaurant"
	BuyerTypeRetailer    = "retailer"
	BuyerTypeProcessor   = "processor"
	BuyerTypeExporter    = "exporter"
	BuyerTypeInstitution = "institution"
)

type BuyerProfile struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	BuyerType    string `json:"buyerType" gorm:"size:20;default:individual"`
	BusinessName string `json:"businessName" gorm:"size:200"`

	CountyID        uint      `json:"countyId"`
	County          County    `json:"-"`
	SubCountyID     uint      `json:"subCountyId"`
	SubCounty       SubCounty `json:"-"`
	WardID          uint      `json:"wardId"`
	Ward            Ward      `json:"-"`
	DeliveryAddress string    `json:"deliveryAddress" gorm:"type:text"`

	MpesaNumber string `json:"mpesaNumber" gorm:"size:15"`

	TotalOrders uint            `json:"totalOrders"`
	TotalSpent  decimal.Decimal `json:"totalSpent" gorm:"type:decimal(12,2);default:0"`

	IsActive bool `json:"isActive" gorm:"default:true"`

	Orders []Order `json:"-" gorm:"foreignKey:BuyerID"`
}
