package entity

import (
	"gorm.io/gorm"
)

type SubCategory struct {
	gorm.Model
	CategoryID  uint     `json:"categoryId" gorm:"uniqueIndex:idx_subcategory_name"`
	Category    Category `json:"-"`
	Name        string   `json:"name" gorm:"size:100;uniqueIndex:idx_subcategory_name"`
	Slug        string   `json:"slug" gorm:"size:100"`
	Description string   `json:"description" gorm:"type:text"`
	IsActive    bool     `json:"isActive" gorm:"default:true"`

	Products []Product `json:"-"`
}
