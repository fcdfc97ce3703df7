package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetWithItems loads the cart for a session token with products and their
// farmers preloaded. A missing cart comes back empty rather than as an
// error so callers can render "0 items".
func (r *CartRepository) GetWithItems(sessionID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("session_id = ?", sessionID).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Farmer").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreate lazily creates the cart on first use. A signed-in buyer's
// existing cart is found by buyer id so the cart follows them across
// sessions; guests are keyed by the session token alone.
func (r *CartRepository) GetOrCreate(sessionID string, buyerID *uint) (*entity.Cart, error) {
	var c entity.Cart

	if buyerID != nil {
		err := r.DB.Where("buyer_id = ?", *buyerID).First(&c).Error
		if err == nil {
			return &c, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	err := r.DB.Where("session_id = ?", sessionID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{SessionID: sessionID, BuyerID: buyerID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}

	// Guest cart picked up by a signed-in buyer: attribute it.
	if buyerID != nil && c.BuyerID == nil {
		c.BuyerID = buyerID
		if err := r.DB.Save(&c).Error; err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (r *CartRepository) FindItem(cartID, productID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) GetItemForCart(cartID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("id = ? AND cart_id = ?", itemID, cartID).
		Preload("Product").
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) CreateItem(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Create(it).Error
}

func (r *CartRepository) SaveItem(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Save(it).Error
}

// Deletes are unscoped: a soft-deleted row would still occupy the
// (cart_id, product_id) unique index and block re-adding the product.
func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID, itemID uint) error {
	res := tx.Unscoped().Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&entity.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepository) Clear(tx *gorm.DB, cartID uint) error {
	return tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
