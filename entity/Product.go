package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/utils"
)

// Stock states. available/low_stock/sold_out are derived from quantity;
// harvesting/pre_order are set by the farmer and survive quantity edits.
const (
	StockAvailable  = "available"
	StockLowStock   = "low_stock"
	StockSoldOut    = "sold_out"
	StockHarvesting = "harvesting"
	StockPreOrder   = "pre_order"
)

const (
	UnitKg    = "kg"
	UnitGram  = "g"
	UnitLitre = "ltr"
	UnitPiece = "pc"
	UnitDozen = "dozen"
	UnitBag   = "bag"
	UnitCrate = "crate"
	UnitBunch = "bunch"
	UnitSack  = "sack"
	UnitTon   = "ton"
)

const (
	GradePremium  = "premium"
	GradeA        = "grade_a"
	GradeB        = "grade_b"
	GradeStandard = "standard"
	GradeOrganic  = "organic"
)

type Product struct {
	gorm.Model
	FarmerID uint          `json:"farmerId" gorm:"index:idx_product_farmer"`
	Farmer   FarmerProfile `json:"-"`

	Name             string `json:"name" gorm:"size:200"`
	Slug             string `json:"slug" gorm:"size:200;uniqueIndex"`
	Sku              string `json:"sku" gorm:"size:100;uniqueIndex"`
	Description      string `json:"description" gorm:"type:text"`
	ShortDescription string `json:"shortDescription" gorm:"size:300"`

	CategoryID    uint         `json:"categoryId" gorm:"index:idx_product_category"`
	Category      Category     `json:"-"`
	SubCategoryID *uint        `json:"subCategoryId"`
	SubCategory   *SubCategory `json:"-"`

	Price         decimal.Decimal  `json:"price" gorm:"type:decimal(10,2)"`
	DiscountPrice *decimal.Decimal `json:"discountPrice" gorm:"type:decimal(10,2)"`
	MinimumOrder  decimal.Decimal  `json:"minimumOrder" gorm:"type:decimal(8,2);default:1"`

	// AvailableQuantity == 0 means quantity is untracked; validation and the
	// checkout decrement are skipped and only StockStatus gates ordering.
	AvailableQuantity decimal.Decimal `json:"availableQuantity" gorm:"type:decimal(10,2);default:0"`
	StockStatus       string          `json:"stockStatus" gorm:"size:20;default:available"`
	LowStockThreshold decimal.Decimal `json:"lowStockThreshold" gorm:"type:decimal(8,2);default:10"`
	Unit              string          `json:"unit" gorm:"size:20;default:kg"`

	QualityGrade string `json:"qualityGrade" gorm:"size:20;default:standard"`
	Variety      string `json:"variety" gorm:"size:100"`

	IsActive   bool `json:"isActive" gorm:"default:true"`
	IsFeatured bool `json:"isFeatured"`
	IsOrganic  bool `json:"isOrganic"`

	TotalSold decimal.Decimal `json:"totalSold" gorm:"type:decimal(10,2);default:0"`
	ViewCount uint            `json:"viewCount"`

	Images []ProductImage `json:"images" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// NewProduct builds a product with its derived fields (slug, SKU, stock
// status) computed up front, keeping persistence a plain write.
func NewProduct(farmer *FarmerProfile, name string) *Product {
	p := &Product{
		FarmerID:          farmer.ID,
		Name:              name,
		Slug:              utils.Slugify(name, farmer.FarmName),
		Sku:               utils.NewSKU(),
		MinimumOrder:      decimal.NewFromInt(1),
		LowStockThreshold: decimal.NewFromInt(10),
		Unit:              UnitKg,
		QualityGrade:      GradeStandard,
		IsActive:          true,
	}
	p.RecomputeStockStatus()
	return p
}

// SellingPrice is the discount price when set and lower than the list
// price, otherwise the list price.
func (p *Product) SellingPrice() decimal.Decimal {
	if p.DiscountPrice != nil && p.DiscountPrice.LessThan(p.Price) {
		return *p.DiscountPrice
	}
	return p.Price
}

// DiscountPercentage for display, 0 when there is no effective discount.
func (p *Product) DiscountPercentage() int64 {
	if p.DiscountPrice == nil || !p.DiscountPrice.LessThan(p.Price) || p.Price.IsZero() {
		return 0
	}
	return p.Price.Sub(*p.DiscountPrice).Div(p.Price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (p *Product) IsInStock() bool {
	return p.StockStatus == StockAvailable || p.StockStatus == StockLowStock
}

// RecomputeStockStatus applies the quantity rule. Manual states
// (harvesting, pre_order) are left alone; they are cleared only by an
// explicit status write.
func (p *Product) RecomputeStockStatus() {
	if p.StockStatus == StockHarvesting || p.StockStatus == StockPreOrder {
		return
	}
	switch {
	case p.AvailableQuantity.IsZero():
		p.StockStatus = StockSoldOut
	case p.AvailableQuantity.LessThanOrEqual(p.LowStockThreshold):
		p.StockStatus = StockLowStock
	default:
		p.StockStatus = StockAvailable
	}
}
