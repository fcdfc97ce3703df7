package entity

import (
	"gorm.io/gorm"
)

type County struct {
	gorm.Model
	Name string `json:"name" gorm:"size:100;uniqueIndex"`
	Code string `json:"code" gorm:"size:3;uniqueIndex"`

	SubCounties []SubCounty `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
