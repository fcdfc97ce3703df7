package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/apperr"
	"github.com/steve-ongera/AgriLink/repository"
)

type CatalogService struct {
	DB          *gorm.DB
	ProductRepo *repository.ProductRepository
	UserRepo    *repository.UserRepository
}

func NewCatalogService(db *gorm.DB, pr *repository.ProductRepository, ur *repository.UserRepository) *CatalogService {
	return &CatalogService{DB: db, ProductRepo: pr, UserRepo: ur}
}

type CreateProductIn struct {
	Name              string           `json:"name" binding:"required"`
	Description       string           `json:"description"`
	ShortDescription  string           `json:"shortDescription"`
	CategoryID        uint             `json:"categoryId" binding:"required"`
	SubCategoryID     *uint            `json:"subCategoryId"`
	Price             decimal.Decimal  `json:"price" binding:"required"`
	DiscountPrice     *decimal.Decimal `json:"discountPrice"`
	MinimumOrder      *decimal.Decimal `json:"minimumOrder"`
	AvailableQuantity *decimal.Decimal `json:"availableQuantity"`
	LowStockThreshold *decimal.Decimal `json:"lowStockThreshold"`
	Unit              string           `json:"unit"`
	QualityGrade      string           `json:"qualityGrade"`
	Variety           string           `json:"variety"`
	IsOrganic         bool             `json:"isOrganic"`
	ImageURLs         []string         `json:"imageUrls"`
}

func (s *CatalogService) CreateProduct(farmerUserID uint, in *CreateProductIn) (*entity.Product, error) {
	farmer, err := s.UserRepo.FarmerProfileByUser(farmerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("complete your farmer profile before listing produce")
		}
		return nil, err
	}

	if in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Validation("price must be greater than 0")
	}
	if in.DiscountPrice != nil && in.DiscountPrice.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Validation("discount price must be greater than 0")
	}

	p := entity.NewProduct(farmer, in.Name)
	p.Description = in.Description
	p.ShortDescription = in.ShortDescription
	p.CategoryID = in.CategoryID
	p.SubCategoryID = in.SubCategoryID
	p.Price = in.Price
	p.DiscountPrice = in.DiscountPrice
	if in.MinimumOrder != nil {
		p.MinimumOrder = *in.MinimumOrder
	}
	if in.AvailableQuantity != nil {
		p.AvailableQuantity = *in.AvailableQuantity
	}
	if in.LowStockThreshold != nil {
		p.LowStockThreshold = *in.LowStockThreshold
	}
	if in.Unit != "" {
		p.Unit = in.Unit
	}
	if in.QualityGrade != "" {
		p.QualityGrade = in.QualityGrade
	}
	p.Variety = in.Variety
	p.IsOrganic = in.IsOrganic
	p.RecomputeStockStatus()

	for i, url := range in.ImageURLs {
		p.Images = append(p.Images, entity.ProductImage{
			URL:       url,
			IsMain:    i == 0,
			SortOrder: uint(i),
		})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.ProductRepo.Create(tx, p)
	})
	if err != nil {
		// The slug is derived from the name, so a second listing with the
		// same name trips the unique index.
		if isDuplicateKey(err) {
			return nil, apperr.Validation("a product named %q is already listed", in.Name)
		}
		return nil, err
	}
	return p, nil
}

type UpdateStockIn struct {
	AvailableQuantity *decimal.Decimal `json:"availableQuantity"`
	// StockStatus only accepts the manual states; the derived ones are
	// owned by the recompute.
	StockStatus *string `json:"stockStatus" binding:"omitempty,oneof=harvesting pre_order available"`
}

// UpdateStock changes tracked quantity and/or the manual stock state. Any
// quantity change re-runs the derivation; setting "available" clears a
// manual state and hands control back to the recompute.
func (s *CatalogService) UpdateStock(farmerUserID, productID uint, in *UpdateStockIn) (*entity.Product, error) {
	farmer, err := s.UserRepo.FarmerProfileByUser(farmerUserID)
	if err != nil {
		return nil, apperr.NotFound("farmer profile")
	}
	p, err := s.ProductRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product")
		}
		return nil, err
	}
	if p.FarmerID != farmer.ID {
		return nil, apperr.NotFound("product")
	}

	if in.StockStatus != nil {
		p.StockStatus = *in.StockStatus
	}
	if in.AvailableQuantity != nil {
		if in.AvailableQuantity.IsNegative() {
			return nil, apperr.Validation("quantity cannot be negative")
		}
		p.AvailableQuantity = *in.AvailableQuantity
	}
	p.RecomputeStockStatus()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.ProductRepo.Save(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

type ProductListOut struct {
	Items []entity.Product `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (s *CatalogService) List(f repository.ListFilter, page, limit int) (*ProductListOut, error) {
	items, total, err := s.ProductRepo.List(f, page, limit)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return &ProductListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *CatalogService) Detail(slug string) (*entity.Product, error) {
	p, err := s.ProductRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product")
		}
		return nil, err
	}
	// Best effort; a lost view is not worth failing the page.
	_ = s.ProductRepo.IncrementViewCount(p.ID)
	return p, nil
}
