package repository

import (
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) Create(tx *gorm.DB, t *entity.MpesaTransaction) error {
	return tx.Create(t).Error
}

func (r *PaymentRepository) ByCheckoutRequestID(id string) (*entity.MpesaTransaction, error) {
	var t entity.MpesaTransaction
	if err := r.DB.Where("checkout_request_id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PaymentRepository) Save(tx *gorm.DB, t *entity.MpesaTransaction) error {
	return tx.Save(t).Error
}
