package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetByNumber(orderNumber string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("order_number = ?", orderNumber).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByNumberForBuyer(buyerID uint, orderNumber string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("order_number = ? AND buyer_id = ?", orderNumber, buyerID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

type OrderSummary struct {
	OrderNumber string          `json:"orderNumber"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListForBuyer(buyerID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("order_number, status, total_amount, created_at").
		Where("buyer_id = ?", buyerID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListForTransporter(transporterID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("order_number, status, total_amount, created_at").
		Where("transporter_id = ?", transporterID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// UpdateStatusGuard moves an order from one status to another only if it is
// still in the expected state; rows-affected 0 means a lost race or an
// illegal transition. Extra columns (timestamps, transporter) ride along.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string, extra map[string]any) (int64, error) {
	cols := map[string]any{"status": to}
	for k, v := range extra {
		cols[k] = v
	}
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(cols)
	return res.RowsAffected, res.Error
}

// CancelGuard exits to cancelled/refunded from any non-terminal state.
func (r *OrderRepository) CancelGuard(tx *gorm.DB, orderID uint, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status NOT IN ?", orderID,
			[]string{entity.OrderCompleted, entity.OrderCancelled, entity.OrderRefunded}).
		Update("status", to)
	return res.RowsAffected, res.Error
}
