package repository

import (
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) ByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UsernameOrEmailTaken(username, email string) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *UserRepository) BuyerProfileByUser(userID uint) (*entity.BuyerProfile, error) {
	var p entity.BuyerProfile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) FarmerProfileByUser(userID uint) (*entity.FarmerProfile, error) {
	var p entity.FarmerProfile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) TransporterProfileByUser(userID uint) (*entity.TransporterProfile, error) {
	var p entity.TransporterProfile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) SaveBuyerProfile(p *entity.BuyerProfile) error {
	return r.DB.Save(p).Error
}

func (r *UserRepository) SaveFarmerProfile(p *entity.FarmerProfile) error {
	return r.DB.Save(p).Error
}

func (r *UserRepository) SaveTransporterProfile(p *entity.TransporterProfile) error {
	return r.DB.Save(p).Error
}
