package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/middlewares"
	"github.com/steve-ongera/AgriLink/pkg/resp"
	"github.com/steve-ongera/AgriLink/services"
	"github.com/steve-ongera/AgriLink/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /checkout
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Checkout(uid, middlewares.CartToken(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.Svc.ListForBuyer(uid, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:number
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	out, err := h.Svc.DetailForBuyer(uid, c.Param("number"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /orders/:number/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	isAdmin := utils.CurrentUserType(c) == entity.UserTypeAdmin
	if err := h.Svc.Cancel(uid, c.Param("number"), isAdmin); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.OrderCancelled})
}

// POST /orders/:number/complete
func (h *OrderController) Complete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Svc.Complete(uid, c.Param("number")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.OrderCompleted})
}

// ----- admin -----

// POST /admin/orders/:number/assign
func (h *OrderController) AssignTransporter(c *gin.Context) {
	var body struct {
		TransporterID uint `json:"transporterId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AssignTransporter(c.Param("number"), body.TransporterID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.OrderAssigned})
}

// POST /admin/orders/:number/refund
func (h *OrderController) Refund(c *gin.Context) {
	if err := h.Svc.Refund(c.Param("number")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.OrderRefunded})
}

// ----- transporter -----

// GET /partner/transporter/orders
func (h *OrderController) ListForTransporter(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.Svc.ListForTransporter(uid, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /partner/transporter/orders/:number/picked-up
func (h *OrderController) MarkPickedUp(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Svc.MarkPickedUp(uid, c.Param("number")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.OrderPickedUp})
}

// PATCH /partner/transporter/orders/:number/in-transit
func (h *OrderController) MarkInTransit(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Svc.MarkInTransit(uid, c.Param("number")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.OrderInTransit})
}

// PATCH /partner/transporter/orders/:number/delivered
func (h *OrderController) MarkDelivered(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Svc.MarkDelivered(uid, c.Param("number")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.OrderDelivered})
}
