package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/resp"
	"github.com/steve-ongera/AgriLink/repository"
	"github.com/steve-ongera/AgriLink/utils"
)

// LookupController serves the read-only reference data and the
// notification feed.
type LookupController struct {
	DB         *gorm.DB
	CountyRepo *repository.CountyRepository
	NotifRepo  *repository.NotificationRepository
}

func NewLookupController(db *gorm.DB, cr *repository.CountyRepository, nr *repository.NotificationRepository) *LookupController {
	return &LookupController{DB: db, CountyRepo: cr, NotifRepo: nr}
}

// GET /counties
func (h *LookupController) Counties(c *gin.Context) {
	counties, err := h.CountyRepo.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": counties})
}

// GET /categories
func (h *LookupController) Categories(c *gin.Context) {
	var categories []entity.Category
	err := h.DB.Where("is_active = ?", true).
		Preload("SubCategories", "is_active = ?", true).
		Order("sort_order, name").
		Find(&categories).Error
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": categories})
}

// GET /notifications
func (h *LookupController) Notifications(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.NotifRepo.ListForUser(uid, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /notifications/:id/read
func (h *LookupController) MarkNotificationRead(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid notification id")
		return
	}
	if err := h.NotifRepo.MarkRead(uid, uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"read": true})
}
