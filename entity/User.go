package entity

import (
	"gorm.io/gorm"
)

const (
	UserTypeFarmer      = "farmer"
	UserTypeBuyer       = "buyer"
	UserTypeTransporter = "transporter"
	UserTypeAdmin       = "admin"
)

type User struct {
	gorm.Model
	Username    string `json:"username" gorm:"size:150;uniqueIndex"`
	Email       string `json:"email" gorm:"size:254;uniqueIndex"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName" gorm:"size:150"`
	LastName    string `json:"lastName" gorm:"size:150"`
	UserType    string `json:"userType" gorm:"size:20;default:buyer"`
	PhoneNumber string `json:"phoneNumber" gorm:"size:15"` // +254XXXXXXXXX
	IsVerified  bool   `json:"isVerified"`

	FarmerProfile      *FarmerProfile      `json:"-"`
	BuyerProfile       *BuyerProfile       `json:"-"`
	TransporterProfile *TransporterProfile `json:"-"`
	Notifications      []Notification     `json:"-"`
}
