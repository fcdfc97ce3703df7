package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/apperr"
	"github.com/steve-ongera/AgriLink/repository"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

type AddToCartIn struct {
	ProductID uint            `json:"productId" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

type CartView struct {
	Cart                *entity.Cart    `json:"cart"`
	TotalItems          decimal.Decimal `json:"totalItems"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	DeliveryFeeEstimate decimal.Decimal `json:"deliveryFeeEstimate"`
	TotalFarmers        int             `json:"totalFarmers"`
}

func (s *CartService) Get(sessionID string) (*CartView, error) {
	cart, err := s.CartRepo.GetWithItems(sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

// GetForBuyer is Get plus attribution: a signed-in buyer looking at a guest
// cart takes ownership of it, the same way Add does.
func (s *CartService) GetForBuyer(sessionID string, buyerID *uint) (*CartView, error) {
	if buyerID == nil {
		return s.Get(sessionID)
	}
	cart, err := s.CartRepo.GetOrCreate(sessionID, buyerID)
	if err != nil {
		return nil, err
	}
	return s.Get(cart.SessionID)
}

func (s *CartService) view(cart *entity.Cart) *CartView {
	totalItems, totalAmount, farmers := CartTotals(cart.Items)
	return &CartView{
		Cart:                cart,
		TotalItems:          totalItems,
		TotalAmount:         totalAmount,
		DeliveryFeeEstimate: DeliveryFeeEstimate(cart, farmers),
		TotalFarmers:        farmers,
	}
}

// validateQuantity applies the ordering rules shared by add and update:
// positive, at least the product minimum, inside tracked stock, and the
// product must be orderable at all.
func validateQuantity(p *entity.Product, qty decimal.Decimal) error {
	if qty.LessThanOrEqual(decimal.Zero) {
		return apperr.Validation("quantity must be greater than 0")
	}
	if qty.LessThan(p.MinimumOrder) {
		return apperr.Validation("minimum order quantity is %s %s", p.MinimumOrder.String(), p.Unit)
	}
	if !p.IsInStock() {
		return apperr.Validation("%s is currently out of stock", p.Name)
	}
	if p.AvailableQuantity.GreaterThan(decimal.Zero) && qty.GreaterThan(p.AvailableQuantity) {
		return apperr.Validation("only %s %s of %s available", p.AvailableQuantity.String(), p.Unit, p.Name)
	}
	return nil
}

// Add puts a product in the cart, merging into the existing row for the
// same product. The merged quantity is validated against stock the same way
// a fresh row is; exceeding availability is always an error, never a
// silent clamp.
func (s *CartService) Add(sessionID string, buyerID *uint, in *AddToCartIn) (*CartView, error) {
	p, err := s.ProductRepo.GetByID(in.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product")
		}
		return nil, err
	}
	if !p.IsActive {
		return nil, apperr.NotFound("product")
	}
	if err := validateQuantity(p, in.Quantity); err != nil {
		return nil, err
	}

	cart, err := s.CartRepo.GetOrCreate(sessionID, buyerID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.CartRepo.FindItem(cart.ID, p.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			merged := existing.Quantity.Add(in.Quantity)
			if p.AvailableQuantity.GreaterThan(decimal.Zero) && merged.GreaterThan(p.AvailableQuantity) {
				return apperr.Validation("only %s %s of %s available", p.AvailableQuantity.String(), p.Unit, p.Name)
			}
			existing.Quantity = merged
			return s.CartRepo.SaveItem(tx, existing)
		}
		return s.CartRepo.CreateItem(tx, &entity.CartItem{
			CartID:    cart.ID,
			ProductID: p.ID,
			Quantity:  in.Quantity,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.Get(cart.SessionID)
}

func (s *CartService) UpdateItemQty(sessionID string, itemID uint, qty decimal.Decimal) (*CartView, error) {
	cart, err := s.CartRepo.GetWithItems(sessionID)
	if err != nil {
		return nil, err
	}
	item, err := s.CartRepo.GetItemForCart(cart.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("cart item")
		}
		return nil, err
	}
	if err := validateQuantity(&item.Product, qty); err != nil {
		return nil, err
	}

	item.Quantity = qty
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SaveItem(tx, item)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(sessionID)
}

func (s *CartService) RemoveItem(sessionID string, itemID uint) (*CartView, error) {
	cart, err := s.CartRepo.GetWithItems(sessionID)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, cart.ID, itemID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("cart item")
		}
		return nil, err
	}
	return s.Get(sessionID)
}

func (s *CartService) Clear(sessionID string) error {
	cart, err := s.CartRepo.GetWithItems(sessionID)
	if err != nil {
		return err
	}
	if cart.ID == 0 {
		return nil
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, cart.ID)
	})
}
