package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/steve-ongera/AgriLink/pkg/resp"
	"github.com/steve-ongera/AgriLink/services"
	"github.com/steve-ongera/AgriLink/utils"
)

type ReviewController struct {
	Svc *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// POST /orders/:number/reviews/farmers/:farmerId
func (h *ReviewController) ReviewFarmer(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	farmerID, err := strconv.Atoi(c.Param("farmerId"))
	if err != nil {
		resp.BadRequest(c, "invalid farmer id")
		return
	}
	var req services.ReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rv, err := h.Svc.ReviewFarmer(uid, c.Param("number"), uint(farmerID), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rv)
}

// POST /orders/:number/reviews/transporter
func (h *ReviewController) ReviewTransporter(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.ReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rv, err := h.Svc.ReviewTransporter(uid, c.Param("number"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rv)
}

// GET /farmers/:farmerId/reviews
func (h *ReviewController) ListForFarmer(c *gin.Context) {
	farmerID, err := strconv.Atoi(c.Param("farmerId"))
	if err != nil {
		resp.BadRequest(c, "invalid farmer id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.Svc.ListForFarmer(uint(farmerID), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
