package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) CreateFarmerReview(tx *gorm.DB, rv *entity.FarmerReview) error {
	return tx.Create(rv).Error
}

func (r *ReviewRepository) CreateTransporterReview(tx *gorm.DB, rv *entity.TransporterReview) error {
	return tx.Create(rv).Error
}

func (r *ReviewRepository) FarmerReviewExists(farmerID, buyerID, orderID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.FarmerReview{}).
		Where("farmer_id = ? AND buyer_id = ? AND order_id = ?", farmerID, buyerID, orderID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *ReviewRepository) TransporterReviewExists(transporterID, buyerID, orderID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.TransporterReview{}).
		Where("transporter_id = ? AND buyer_id = ? AND order_id = ?", transporterID, buyerID, orderID).
		Count(&cnt).Error
	return cnt > 0, err
}

type ratingAgg struct {
	Avg   float64
	Count int64
}

// RefreshFarmerRating recomputes the display aggregates from approved
// reviews. Runs inside the review-create transaction.
func (r *ReviewRepository) RefreshFarmerRating(tx *gorm.DB, farmerID uint) error {
	var agg ratingAgg
	err := tx.Model(&entity.FarmerReview{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("farmer_id = ? AND is_approved = ?", farmerID, true).
		Scan(&agg).Error
	if err != nil {
		return err
	}
	return tx.Model(&entity.FarmerProfile{}).Where("id = ?", farmerID).
		Updates(map[string]any{
			"rating":        decimal.NewFromFloat(agg.Avg).Round(2),
			"total_reviews": agg.Count,
		}).Error
}

func (r *ReviewRepository) RefreshTransporterRating(tx *gorm.DB, transporterID uint) error {
	var agg ratingAgg
	err := tx.Model(&entity.TransporterReview{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("transporter_id = ? AND is_approved = ?", transporterID, true).
		Scan(&agg).Error
	if err != nil {
		return err
	}
	return tx.Model(&entity.TransporterProfile{}).Where("id = ?", transporterID).
		Updates(map[string]any{
			"rating":        decimal.NewFromFloat(agg.Avg).Round(2),
			"total_reviews": agg.Count,
		}).Error
}

func (r *ReviewRepository) ListForFarmer(farmerID uint, limit int) ([]entity.FarmerReview, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.FarmerReview
	err := r.DB.Where("farmer_id = ? AND is_approved = ?", farmerID, true).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}
