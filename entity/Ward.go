package entity

import (
	"gorm.io/gorm"
)

type Ward struct {
	gorm.Model
	SubCountyID uint      `json:"subCountyId" gorm:"uniqueIndex:idx_ward_name"`
	SubCounty   SubCounty `json:"-"`
	Name        string    `json:"name" gorm:"size:100;uniqueIndex:idx_ward_name"`
}
