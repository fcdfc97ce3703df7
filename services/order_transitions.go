package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/apperr"
)

// The forward progression. cancelled/refunded exit from any non-terminal
// state and are handled by CancelGuard instead.
var orderFlow = map[string]string{
	entity.OrderPending:   entity.OrderPaid,
	entity.OrderPaid:      entity.OrderAssigned,
	entity.OrderAssigned:  entity.OrderPickedUp,
	entity.OrderPickedUp:  entity.OrderInTransit,
	entity.OrderInTransit: entity.OrderDelivered,
	entity.OrderDelivered: entity.OrderCompleted,
}

func (s *OrderService) advance(orderNumber, from, to string, extra map[string]any) error {
	if orderFlow[from] != to {
		return apperr.Validation("cannot move an order from %s to %s", from, to)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetByNumber(orderNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order")
			}
			return err
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to, extra)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order is no longer %s", from)
		}
		return nil
	})
}

// MarkPaid is driven by the payment callback.
func (s *OrderService) MarkPaid(orderNumber string) error {
	now := time.Now()
	return s.advance(orderNumber, entity.OrderPending, entity.OrderPaid,
		map[string]any{"payment_confirmed_at": &now})
}

// AssignTransporter is an admin action on a paid order.
func (s *OrderService) AssignTransporter(orderNumber string, transporterID uint) error {
	var t entity.TransporterProfile
	if err := s.DB.Where("id = ? AND is_active = ? AND is_available = ?", transporterID, true, true).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("transporter")
		}
		return err
	}
	return s.advance(orderNumber, entity.OrderPaid, entity.OrderAssigned,
		map[string]any{"transporter_id": transporterID})
}

// transporterOwns guards the rider-style progress updates.
func (s *OrderService) transporterOwns(userID uint, orderNumber string) (*entity.Order, error) {
	t, err := s.UserRepo.TransporterProfileByUser(userID)
	if err != nil {
		return nil, apperr.NotFound("transporter profile")
	}
	o, err := s.Repo.GetByNumber(orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order")
		}
		return nil, err
	}
	if o.TransporterID == nil || *o.TransporterID != t.ID {
		return nil, apperr.NotFound("order")
	}
	return o, nil
}

func (s *OrderService) MarkPickedUp(userID uint, orderNumber string) error {
	if _, err := s.transporterOwns(userID, orderNumber); err != nil {
		return err
	}
	now := time.Now()
	return s.advance(orderNumber, entity.OrderAssigned, entity.OrderPickedUp,
		map[string]any{"picked_up_at": &now})
}

func (s *OrderService) MarkInTransit(userID uint, orderNumber string) error {
	if _, err := s.transporterOwns(userID, orderNumber); err != nil {
		return err
	}
	return s.advance(orderNumber, entity.OrderPickedUp, entity.OrderInTransit, nil)
}

func (s *OrderService) MarkDelivered(userID uint, orderNumber string) error {
	o, err := s.transporterOwns(userID, orderNumber)
	if err != nil {
		return err
	}
	now := time.Now()
	if err := s.advance(orderNumber, entity.OrderInTransit, entity.OrderDelivered,
		map[string]any{"delivered_at": &now}); err != nil {
		return err
	}
	// Delivery count is informational; a failed bump must not undo the
	// delivery, so it stays outside the guard transaction.
	return s.DB.Model(&entity.TransporterProfile{}).
		Where("id = ?", *o.TransporterID).
		UpdateColumn("total_deliveries", gorm.Expr("total_deliveries + 1")).Error
}

// Complete closes out a delivered order (buyer confirmation).
func (s *OrderService) Complete(userID uint, orderNumber string) error {
	if _, err := s.DetailForBuyer(userID, orderNumber); err != nil {
		return err
	}
	return s.advance(orderNumber, entity.OrderDelivered, entity.OrderCompleted, nil)
}

// Cancel exits to cancelled from any non-terminal state. Buyers may only
// cancel their own pending orders; admins may cancel anything live.
func (s *OrderService) Cancel(userID uint, orderNumber string, isAdmin bool) error {
	o, err := s.Repo.GetByNumber(orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order")
		}
		return err
	}
	if !isAdmin {
		buyer, err := s.UserRepo.BuyerProfileByUser(userID)
		if err != nil || buyer.ID != o.BuyerID {
			return apperr.NotFound("order")
		}
		if o.Status != entity.OrderPending {
			return apperr.Validation("only pending orders can be cancelled")
		}
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.CancelGuard(tx, o.ID, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order is already closed")
		}
		return nil
	})
}

// Refund is admin-only and also exits any non-terminal state.
func (s *OrderService) Refund(orderNumber string) error {
	o, err := s.Repo.GetByNumber(orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order")
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.CancelGuard(tx, o.ID, entity.OrderRefunded)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order is already closed")
		}
		return nil
	})
}
