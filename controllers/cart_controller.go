package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/middlewares"
	"github.com/steve-ongera/AgriLink/pkg/resp"
	"github.com/steve-ongera/AgriLink/repository"
	"github.com/steve-ongera/AgriLink/services"
	"github.com/steve-ongera/AgriLink/utils"
)

type CartController struct {
	Svc      *services.CartService
	UserRepo *repository.UserRepository
}

func NewCartController(s *services.CartService, ur *repository.UserRepository) *CartController {
	return &CartController{Svc: s, UserRepo: ur}
}

// buyerID resolves the optional buyer for cart attribution; guests get nil.
func (h *CartController) buyerID(c *gin.Context) *uint {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		return nil
	}
	p, err := h.UserRepo.BuyerProfileByUser(uid)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return nil
	}
	return &p.ID
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.GetForBuyer(middlewares.CartToken(c), h.buyerID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.Add(middlewares.CartToken(c), h.buyerID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, view)
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var body struct {
		Quantity decimal.Decimal `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.UpdateItemQty(middlewares.CartToken(c), uint(id), body.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	view, err := h.Svc.RemoveItem(middlewares.CartToken(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(middlewares.CartToken(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
