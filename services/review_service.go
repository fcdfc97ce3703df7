package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/apperr"
	"github.com/steve-ongera/AgriLink/repository"
)

type ReviewService struct {
	DB        *gorm.DB
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, orderRepo *repository.OrderRepository, userRepo *repository.UserRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, OrderRepo: orderRepo, UserRepo: userRepo}
}

type ReviewIn struct {
	Rating  uint   `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title"`
	Comment string `json:"comment"`

	// Optional per-aspect scores, 1..5 when present.
	AspectA *uint `json:"aspectA" binding:"omitempty,min=1,max=5"`
	AspectB *uint `json:"aspectB" binding:"omitempty,min=1,max=5"`
	AspectC *uint `json:"aspectC" binding:"omitempty,min=1,max=5"`
}

// reviewableOrder checks the buyer owns the order and it has reached a
// state worth reviewing.
func (s *ReviewService) reviewableOrder(userID uint, orderNumber string) (*entity.BuyerProfile, *entity.Order, error) {
	buyer, err := s.UserRepo.BuyerProfileByUser(userID)
	if err != nil {
		return nil, nil, apperr.NotFound("buyer profile")
	}
	o, err := s.OrderRepo.GetByNumberForBuyer(buyer.ID, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("order")
		}
		return nil, nil, err
	}
	if o.Status != entity.OrderDelivered && o.Status != entity.OrderCompleted {
		return nil, nil, apperr.Validation("order must be delivered before it can be reviewed")
	}
	return buyer, o, nil
}

// ReviewFarmer records a review and refreshes the farmer's aggregates in
// the same transaction. The farmer must have items in the order.
func (s *ReviewService) ReviewFarmer(userID uint, orderNumber string, farmerID uint, in *ReviewIn) (*entity.FarmerReview, error) {
	buyer, o, err := s.reviewableOrder(userID, orderNumber)
	if err != nil {
		return nil, err
	}

	var cnt int64
	if err := s.DB.Model(&entity.OrderItem{}).
		Where("order_id = ? AND farmer_id = ?", o.ID, farmerID).
		Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt == 0 {
		return nil, apperr.Validation("this farmer has no items in the order")
	}

	exists, err := s.Repo.FarmerReviewExists(farmerID, buyer.ID, o.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Validation("you have already reviewed this farmer for this order")
	}

	rv := &entity.FarmerReview{
		FarmerID:       farmerID,
		BuyerID:        buyer.ID,
		OrderID:        o.ID,
		Rating:         in.Rating,
		Title:          in.Title,
		Comment:        in.Comment,
		ProductQuality: in.AspectA,
		Communication:  in.AspectB,
		Packaging:      in.AspectC,
		IsApproved:     true,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateFarmerReview(tx, rv); err != nil {
			return err
		}
		return s.Repo.RefreshFarmerRating(tx, farmerID)
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *ReviewService) ReviewTransporter(userID uint, orderNumber string, in *ReviewIn) (*entity.TransporterReview, error) {
	buyer, o, err := s.reviewableOrder(userID, orderNumber)
	if err != nil {
		return nil, err
	}
	if o.TransporterID == nil {
		return nil, apperr.Validation("no transporter was assigned to this order")
	}

	exists, err := s.Repo.TransporterReviewExists(*o.TransporterID, buyer.ID, o.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Validation("you have already reviewed this transporter for this order")
	}

	rv := &entity.TransporterReview{
		TransporterID: *o.TransporterID,
		BuyerID:       buyer.ID,
		OrderID:       o.ID,
		Rating:        in.Rating,
		Title:         in.Title,
		Comment:       in.Comment,
		Timeliness:    in.AspectA,
		Communication: in.AspectB,
		CareOfGoods:   in.AspectC,
		IsApproved:    true,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateTransporterReview(tx, rv); err != nil {
			return err
		}
		return s.Repo.RefreshTransporterRating(tx, *o.TransporterID)
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *ReviewService) ListForFarmer(farmerID uint, limit int) ([]entity.FarmerReview, error) {
	return s.Repo.ListForFarmer(farmerID, limit)
}
