package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
)

type NotificationRepository struct{ DB *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(tx *gorm.DB, n *entity.Notification) error {
	return tx.Create(n).Error
}

func (r *NotificationRepository) ListForUser(userID uint, limit int) ([]entity.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Notification
	err := r.DB.Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *NotificationRepository) MarkRead(userID, id uint) error {
	now := time.Now()
	res := r.DB.Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"is_read": true, "read_at": &now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
