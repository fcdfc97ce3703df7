package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	VehicleMotorcycle = "motorcycle"
	VehicleTukTuk     = "tuk_tuk"
	VehiclePickup     = "pickup"
	VehicleVan        = "van"
	VehicleTruck      = "truck"
	VehicleLorry      = "lorry"
)

type TransporterProfile struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	BusinessName        string          `json:"businessName" gorm:"size:200"`
	VehicleType         string          `json:"vehicleType" gorm:"size:20"`
	VehicleRegistration string          `json:"vehicleRegistration" gorm:"size:20;uniqueIndex"`
	VehicleCapacity     decimal.Decimal `json:"vehicleCapacity" gorm:"type:decimal(8,2)"` // kg

	BaseCountyID uint   `json:"baseCountyId"`
	BaseCounty   County `json:"-"`

	RatePerKm     decimal.Decimal `json:"ratePerKm" gorm:"type:decimal(6,2)"`
	MinimumCharge decimal.Decimal `json:"minimumCharge" gorm:"type:decimal(8,2);default:200"`

	MpesaNumber    string `json:"mpesaNumber" gorm:"size:15"`
	DrivingLicense string `json:"drivingLicense" gorm:"size:50"`

	TotalDeliveries uint            `json:"totalDeliveries"`
	TotalEarnings   decimal.Decimal `json:"totalEarnings" gorm:"type:decimal(12,2);default:0"`
	Rating          decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);default:0"`
	TotalReviews    uint            `json:"totalReviews"`

	IsVerified  bool `json:"isVerified"`
	IsAvailable bool `json:"isAvailable" gorm:"default:true"`
	IsActive    bool `json:"isActive" gorm:"default:true"`

	Deliveries []Order             `json:"-" gorm:"foreignKey:TransporterID"`
	Reviews    []TransporterReview `json:"-" gorm:"foreignKey:TransporterID"`
}
