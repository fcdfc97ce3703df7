package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/steve-ongera/AgriLink/pkg/resp"
	"github.com/steve-ongera/AgriLink/services"
	"github.com/steve-ongera/AgriLink/utils"
)

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /orders/:number/pay
func (h *PaymentController) Initiate(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var body struct {
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Initiate(uid, c.Param("number"), body.PhoneNumber)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /payments/mpesa/callback
// The provider calls this; it is unauthenticated by design.
func (h *PaymentController) Callback(c *gin.Context) {
	var req services.MpesaCallbackIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ApplyCallback(&req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"received": true})
}
