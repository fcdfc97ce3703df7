package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/apperr"
	"github.com/steve-ongera/AgriLink/repository"
)

// PaymentService is the M-Pesa stub: it records transactions and applies
// callback results, but speaks no provider protocol itself.
type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
	Orders    *OrderService
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, orderRepo *repository.OrderRepository, userRepo *repository.UserRepository, orders *OrderService) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo, UserRepo: userRepo, Orders: orders}
}

type InitiatePaymentOut struct {
	CheckoutRequestID string `json:"checkoutRequestId"`
	MerchantRequestID string `json:"merchantRequestId"`
}

// Initiate records a pending customer payment against the buyer's own
// pending order. The generated request ids stand in for the STK push.
func (s *PaymentService) Initiate(userID uint, orderNumber, phone string) (*InitiatePaymentOut, error) {
	buyer, err := s.UserRepo.BuyerProfileByUser(userID)
	if err != nil {
		return nil, apperr.NotFound("buyer profile")
	}
	o, err := s.OrderRepo.GetByNumberForBuyer(buyer.ID, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order")
		}
		return nil, err
	}
	if o.Status != entity.OrderPending {
		return nil, apperr.Validation("order is not awaiting payment")
	}
	if phone == "" {
		phone = buyer.MpesaNumber
	}
	if phone == "" {
		return nil, apperr.Validation("an M-Pesa phone number is required")
	}

	txn := entity.MpesaTransaction{
		OrderID:           &o.ID,
		TransactionType:   entity.MpesaPayment,
		PhoneNumber:       phone,
		Amount:            o.TotalAmount,
		MerchantRequestID: uuid.NewString(),
		CheckoutRequestID: uuid.NewString(),
		Status:            entity.TxnPending,
		AccountReference:  o.OrderNumber,
		TransactionDesc:   "AgriLink order " + o.OrderNumber,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &txn)
	})
	if err != nil {
		return nil, err
	}
	return &InitiatePaymentOut{
		CheckoutRequestID: txn.CheckoutRequestID,
		MerchantRequestID: txn.MerchantRequestID,
	}, nil
}

type MpesaCallbackIn struct {
	CheckoutRequestID  string `json:"checkoutRequestId" binding:"required"`
	ResultCode         string `json:"resultCode" binding:"required"`
	ResultDesc         string `json:"resultDesc"`
	MpesaReceiptNumber string `json:"mpesaReceiptNumber"`
}

// ApplyCallback stores whatever the provider sent; result code "0" marks
// the transaction complete and flips the order to paid.
func (s *PaymentService) ApplyCallback(in *MpesaCallbackIn) error {
	txn, err := s.Repo.ByCheckoutRequestID(in.CheckoutRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("transaction")
		}
		return err
	}
	if txn.Status != entity.TxnPending {
		return apperr.Conflict("transaction already settled")
	}

	txn.ResponseCode = in.ResultCode
	txn.ResponseDescription = in.ResultDesc
	txn.MpesaReceiptNumber = in.MpesaReceiptNumber
	if in.ResultCode == "0" {
		txn.Status = entity.TxnCompleted
	} else {
		txn.Status = entity.TxnFailed
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Save(tx, txn)
	}); err != nil {
		return err
	}

	if txn.Status == entity.TxnCompleted && txn.OrderID != nil {
		var o entity.Order
		if err := s.DB.First(&o, *txn.OrderID).Error; err != nil {
			return err
		}
		return s.Orders.MarkPaid(o.OrderNumber)
	}
	return nil
}
