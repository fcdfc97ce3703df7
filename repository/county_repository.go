package repository

import (
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
)

type CountyRepository struct{ DB *gorm.DB }

func NewCountyRepository(db *gorm.DB) *CountyRepository { return &CountyRepository{DB: db} }

func (r *CountyRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.County{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *CountyRepository) List() ([]entity.County, error) {
	var counties []entity.County
	err := r.DB.Order("name").Find(&counties).Error
	return counties, err
}
