package entity

import (
	"gorm.io/gorm"
)

type SubCounty struct {
	gorm.Model
	CountyID uint   `json:"countyId" gorm:"uniqueIndex:idx_subcounty_name"`
	County   County `json:"-"`
	Name     string `json:"name" gorm:"size:100;uniqueIndex:idx_subcounty_name"`

	Wards []Ward `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
