package entity

import (
	"gorm.io/gorm"
)

type ProductImage struct {
	gorm.Model
	ProductID uint   `json:"productId"`
	URL       string `json:"url" gorm:"size:500"`
	AltText   string `json:"altText" gorm:"size:200"`
	IsMain    bool   `json:"isMain"`
	SortOrder uint   `json:"sortOrder"`
}
