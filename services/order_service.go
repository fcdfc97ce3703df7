package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/apperr"
	"github.com/steve-ongera/AgriLink/pkg/notifier"
	"github.com/steve-ongera/AgriLink/repository"
	"github.com/steve-ongera/AgriLink/utils"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	UserRepo    *repository.UserRepository
	CountyRepo  *repository.CountyRepository
	NotifRepo   *repository.NotificationRepository
	Mailer      notifier.Mailer
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	productRepo *repository.ProductRepository,
	userRepo *repository.UserRepository,
	countyRepo *repository.CountyRepository,
	notifRepo *repository.NotificationRepository,
	mailer notifier.Mailer,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		CountyRepo:  countyRepo,
		NotifRepo:   notifRepo,
		Mailer:      mailer,
	}
}

type CheckoutReq struct {
	DeliveryAddress  string `json:"deliveryAddress" binding:"required"`
	DeliveryPhone    string `json:"deliveryPhone" binding:"required"`
	DeliveryCountyID uint   `json:"deliveryCountyId" binding:"required"`
	DeliveryNotes    string `json:"deliveryNotes"`
	PaymentMethod    string `json:"paymentMethod" binding:"omitempty,oneof=mpesa cash bank"`
}

type CheckoutRes struct {
	OrderNumber string          `json:"orderNumber"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	ServiceFee  decimal.Decimal `json:"serviceFee"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Checkout materializes the buyer's cart into an order: re-validates stock,
// fixes the money fields, snapshots every line, decrements tracked stock
// and clears the cart — all in one transaction. A mid-way failure leaves
// cart and products exactly as they were.
func (s *OrderService) Checkout(userID uint, sessionID string, req *CheckoutReq) (*CheckoutRes, error) {
	buyer, err := s.UserRepo.BuyerProfileByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("complete your buyer profile before checkout")
		}
		return nil, err
	}

	if strings.TrimSpace(req.DeliveryAddress) == "" || strings.TrimSpace(req.DeliveryPhone) == "" {
		return nil, apperr.Validation("delivery address and phone are required")
	}
	ok, err := s.CountyRepo.Exists(req.DeliveryCountyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Validation("invalid delivery county")
	}

	cart, err := s.CartRepo.GetOrCreate(sessionID, &buyer.ID)
	if err != nil {
		return nil, err
	}
	cart, err = s.CartRepo.GetWithItems(cart.SessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.Validation("cart is empty")
	}

	// Pre-flight stock check so the user gets every problem item named.
	// The authoritative check is the conditional decrement inside the tx.
	var problems []string
	for i := range cart.Items {
		it := &cart.Items[i]
		p := &it.Product
		if !p.IsInStock() {
			problems = append(problems, fmt.Sprintf("%s is no longer in stock", p.Name))
		} else if p.AvailableQuantity.GreaterThan(decimal.Zero) && it.Quantity.GreaterThan(p.AvailableQuantity) {
			problems = append(problems, fmt.Sprintf("only %s %s of %s available", p.AvailableQuantity.String(), p.Unit, p.Name))
		}
	}
	if len(problems) > 0 {
		return nil, apperr.Validation("%s", strings.Join(problems, "; "))
	}

	_, subtotal, farmers := CartTotals(cart.Items)
	deliveryFee := DeliveryFee(farmers)
	serviceFee := ServiceFee(subtotal)
	totalAmount := subtotal.Add(deliveryFee).Add(serviceFee)

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMpesa
	}

	var out *CheckoutRes
	run := func() error {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			order := entity.Order{
				OrderNumber:      utils.NewOrderNumber(time.Now()),
				BuyerID:          buyer.ID,
				DeliveryAddress:  req.DeliveryAddress,
				DeliveryPhone:    req.DeliveryPhone,
				DeliveryCountyID: req.DeliveryCountyID,
				DeliveryNotes:    req.DeliveryNotes,
				Subtotal:         subtotal,
				DeliveryFee:      deliveryFee,
				ServiceFee:       serviceFee,
				TotalAmount:      totalAmount,
				Status:           entity.OrderPending,
				PaymentMethod:    paymentMethod,
			}
			if err := s.Repo.Create(tx, &order); err != nil {
				return err
			}

			for i := range cart.Items {
				it := &cart.Items[i]
				p := &it.Product

				oi := entity.OrderItem{
					OrderID:     order.ID,
					ProductID:   p.ID,
					FarmerID:    p.FarmerID,
					Quantity:    it.Quantity,
					UnitPrice:   p.SellingPrice(),
					TotalPrice:  it.TotalPrice(),
					ProductName: p.Name,
					ProductSku:  p.Sku,
					Unit:        p.Unit,
				}
				if err := s.Repo.CreateItem(tx, &oi); err != nil {
					return err
				}

				// AvailableQuantity == 0 means untracked: no decrement.
				if p.AvailableQuantity.GreaterThan(decimal.Zero) {
					won, err := s.ProductRepo.DecrementStock(tx, p.ID, it.Quantity)
					if err != nil {
						return err
					}
					if !won {
						return apperr.Conflict("insufficient stock for %s", p.Name)
					}
					if err := s.ProductRepo.RefreshStockStatus(tx, p.ID); err != nil {
						return err
					}
				}
			}

			// Buyer stats move with the only money-moving event.
			if err := tx.Model(&entity.BuyerProfile{}).Where("id = ?", buyer.ID).
				UpdateColumns(map[string]any{
					"total_orders": gorm.Expr("total_orders + 1"),
					"total_spent":  gorm.Expr("total_spent + ?", totalAmount),
				}).Error; err != nil {
				return err
			}

			if err := s.CartRepo.Clear(tx, cart.ID); err != nil {
				return err
			}

			if err := s.notifyOrderPlaced(tx, &order, cart.Items, userID); err != nil {
				return err
			}

			out = &CheckoutRes{
				OrderNumber: order.OrderNumber,
				Subtotal:    order.Subtotal,
				DeliveryFee: order.DeliveryFee,
				ServiceFee:  order.ServiceFee,
				TotalAmount: order.TotalAmount,
			}
			return nil
		})
	}

	err = run()
	if err != nil && isDuplicateKey(err) {
		// Order-number collision: regenerate once, then give up.
		err = run()
		if err != nil && isDuplicateKey(err) {
			return nil, apperr.Conflict("could not allocate an order number, please retry")
		}
	}
	if err != nil {
		return nil, err
	}

	s.sendConfirmation(userID, out)
	return out, nil
}

func (s *OrderService) notifyOrderPlaced(tx *gorm.DB, order *entity.Order, items []entity.CartItem, buyerUserID uint) error {
	n := entity.Notification{
		UserID:           buyerUserID,
		NotificationType: entity.NotifyOrderPlaced,
		Title:            "Order placed",
		Message:          fmt.Sprintf("Order #%s created. Total KES %s.", order.OrderNumber, order.TotalAmount.StringFixed(2)),
		OrderID:          &order.ID,
	}
	if err := s.NotifRepo.Create(tx, &n); err != nil {
		return err
	}

	// One notification per farmer with items in the order.
	notified := make(map[uint]struct{})
	for i := range items {
		farmer := items[i].Product.Farmer
		if _, done := notified[farmer.ID]; done || farmer.UserID == 0 {
			continue
		}
		notified[farmer.ID] = struct{}{}
		fn := entity.Notification{
			UserID:           farmer.UserID,
			NotificationType: entity.NotifyOrderPlaced,
			Title:            "New order for your produce",
			Message:          fmt.Sprintf("Order #%s includes items from %s.", order.OrderNumber, farmer.FarmName),
			OrderID:          &order.ID,
		}
		if err := s.NotifRepo.Create(tx, &fn); err != nil {
			return err
		}
	}
	return nil
}

// sendConfirmation is best-effort and runs after commit; a mail failure
// never fails a checkout.
func (s *OrderService) sendConfirmation(userID uint, res *CheckoutRes) {
	if s.Mailer == nil {
		return
	}
	user, err := s.UserRepo.ByID(userID)
	if err != nil || user.Email == "" {
		return
	}
	go func() {
		name := strings.TrimSpace(user.FirstName + " " + user.LastName)
		if name == "" {
			name = user.Username
		}
		if err := s.Mailer.SendOrderConfirmation(user.Email, name, res.OrderNumber, res.TotalAmount); err != nil {
			log.Printf("order confirmation mail for %s failed: %v", res.OrderNumber, err)
		}
	}()
}

// isDuplicateKey matches unique-constraint failures across the sqlite and
// postgres drivers.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// ----- List & Detail -----

type OrderDetail struct {
	Order *entity.Order      `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) ListForBuyer(userID uint, limit int) ([]repository.OrderSummary, error) {
	buyer, err := s.UserRepo.BuyerProfileByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []repository.OrderSummary{}, nil
		}
		return nil, err
	}
	return s.Repo.ListForBuyer(buyer.ID, limit)
}

func (s *OrderService) ListForTransporter(userID uint, limit int) ([]repository.OrderSummary, error) {
	tp, err := s.UserRepo.TransporterProfileByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []repository.OrderSummary{}, nil
		}
		return nil, err
	}
	return s.Repo.ListForTransporter(tp.ID, limit)
}

func (s *OrderService) DetailForBuyer(userID uint, orderNumber string) (*OrderDetail, error) {
	buyer, err := s.UserRepo.BuyerProfileByUser(userID)
	if err != nil {
		return nil, apperr.NotFound("order")
	}
	o, err := s.Repo.GetByNumberForBuyer(buyer.ID, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order")
		}
		return nil, err
	}
	items, err := s.Repo.GetItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: o, Items: items}, nil
}
