package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

func (r *ProductRepository) Create(tx *gorm.DB, p *entity.Product) error {
	return tx.Create(p).Error
}

func (r *ProductRepository) Save(tx *gorm.DB, p *entity.Product) error {
	return tx.Save(p).Error
}

func (r *ProductRepository) GetByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Preload("Farmer").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetBySlug(slug string) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.Where("slug = ? AND is_active = ?", slug, true).
		Preload("Farmer").
		Preload("Images").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListFilter narrows the catalog listing; zero values mean "no filter".
type ListFilter struct {
	CategorySlug string
	SubCategory  uint
	FarmerID     uint
	CountyID     uint
	Search       string
	InStockOnly  bool
	FeaturedOnly bool
}

func (r *ProductRepository) List(f ListFilter, page, limit int) ([]entity.Product, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.DB.Model(&entity.Product{}).Where("products.is_active = ?", true)
	if f.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", f.CategorySlug)
	}
	if f.SubCategory != 0 {
		q = q.Where("products.sub_category_id = ?", f.SubCategory)
	}
	if f.FarmerID != 0 {
		q = q.Where("products.farmer_id = ?", f.FarmerID)
	}
	if f.CountyID != 0 {
		q = q.Joins("JOIN farmer_profiles ON farmer_profiles.id = products.farmer_id").
			Where("farmer_profiles.county_id = ?", f.CountyID)
	}
	if f.Search != "" {
		q = q.Where("products.name LIKE ?", "%"+f.Search+"%")
	}
	if f.InStockOnly {
		q = q.Where("products.stock_status IN ?", []string{entity.StockAvailable, entity.StockLowStock})
	}
	if f.FeaturedOnly {
		q = q.Where("products.is_featured = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.Product
	err := q.Preload("Images").Preload("Farmer").
		Order("products.created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&items).Error
	return items, total, err
}

func (r *ProductRepository) IncrementViewCount(id uint) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// DecrementStock is the serialization point for competing checkouts: the
// quantity guard and the decrement run as one conditional UPDATE, so two
// orders can never jointly overdraw a product. Returns false when the
// guard loses (insufficient stock at commit time).
func (r *ProductRepository) DecrementStock(tx *gorm.DB, productID uint, qty decimal.Decimal) (bool, error) {
	res := tx.Model(&entity.Product{}).
		Where("id = ? AND available_quantity >= ?", productID, qty).
		UpdateColumns(map[string]any{
			"available_quantity": gorm.Expr("available_quantity - ?", qty),
			"total_sold":         gorm.Expr("total_sold + ?", qty),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// RefreshStockStatus re-derives the status after a quantity change.
func (r *ProductRepository) RefreshStockStatus(tx *gorm.DB, productID uint) error {
	var p entity.Product
	if err := tx.First(&p, productID).Error; err != nil {
		return err
	}
	p.RecomputeStockStatus()
	return tx.Model(&entity.Product{}).Where("id = ?", productID).
		UpdateColumn("stock_status", p.StockStatus).Error
}
