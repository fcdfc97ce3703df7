package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:100;uniqueIndex"`
	Slug        string `json:"slug" gorm:"size:100;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon" gorm:"size:50"`
	IsActive    bool   `json:"isActive" gorm:"default:true"`
	SortOrder   uint   `json:"sortOrder"`

	SubCategories []SubCategory `json:"subCategories" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Products      []Product     `json:"-"`
}
