package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/configs"
	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/notifier"
	"github.com/steve-ongera/AgriLink/repository"
	"github.com/steve-ongera/AgriLink/services"
)

// setupTestDB opens an in-memory SQLite database unique to the test so
// parallel packages never share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{},
		&entity.County{}, &entity.SubCounty{}, &entity.Ward{},
		&entity.FarmerProfile{}, &entity.BuyerProfile{}, &entity.TransporterProfile{},
		&entity.Category{}, &entity.SubCategory{},
		&entity.Product{}, &entity.ProductImage{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.MpesaTransaction{},
		&entity.FarmerReview{}, &entity.TransporterReview{},
		&entity.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

type testEnv struct {
	DB *gorm.DB

	UserRepo    *repository.UserRepository
	CountyRepo  *repository.CountyRepository
	ProductRepo *repository.ProductRepository
	CartRepo    *repository.CartRepository
	OrderRepo   *repository.OrderRepository
	ReviewRepo  *repository.ReviewRepository
	PaymentRepo *repository.PaymentRepository
	NotifRepo   *repository.NotificationRepository

	Auth     *services.AuthService
	Catalog  *services.CatalogService
	Carts    *services.CartService
	Orders   *services.OrderService
	Reviews  *services.ReviewService
	Payments *services.PaymentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)

	e := &testEnv{
		DB:          db,
		UserRepo:    repository.NewUserRepository(db),
		CountyRepo:  repository.NewCountyRepository(db),
		ProductRepo: repository.NewProductRepository(db),
		CartRepo:    repository.NewCartRepository(db),
		OrderRepo:   repository.NewOrderRepository(db),
		ReviewRepo:  repository.NewReviewRepository(db),
		PaymentRepo: repository.NewPaymentRepository(db),
		NotifRepo:   repository.NewNotificationRepository(db),
	}

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	e.Auth = services.NewAuthService(cfg, e.UserRepo)
	e.Catalog = services.NewCatalogService(db, e.ProductRepo, e.UserRepo)
	e.Carts = services.NewCartService(db, e.CartRepo, e.ProductRepo)
	e.Orders = services.NewOrderService(db, e.OrderRepo, e.CartRepo, e.ProductRepo, e.UserRepo, e.CountyRepo, e.NotifRepo, notifier.Noop{})
	e.Reviews = services.NewReviewService(db, e.ReviewRepo, e.OrderRepo, e.UserRepo)
	e.Payments = services.NewPaymentService(db, e.PaymentRepo, e.OrderRepo, e.UserRepo, e.Orders)
	return e
}

// ----- fixtures -----

var fixtureSeq int

func nextSeq() int {
	fixtureSeq++
	return fixtureSeq
}

func (e *testEnv) seedCounty(t *testing.T) *entity.County {
	t.Helper()
	n := nextSeq()
	c := entity.County{Name: fmt.Sprintf("County %d", n), Code: fmt.Sprintf("%03d", n%1000)}
	if err := e.DB.Create(&c).Error; err != nil {
		t.Fatalf("seed county: %v", err)
	}
	return &c
}

func (e *testEnv) seedUser(t *testing.T, userType string) *entity.User {
	t.Helper()
	n := nextSeq()
	u := entity.User{
		Username:    fmt.Sprintf("%s%d", userType, n),
		Email:       fmt.Sprintf("%s%d@example.com", userType, n),
		Password:    "not-a-real-hash",
		FirstName:   "Test",
		LastName:    "User",
		UserType:    userType,
		PhoneNumber: "+254700000000",
	}
	if err := e.DB.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &u
}

func (e *testEnv) seedFarmer(t *testing.T, county *entity.County) (*entity.User, *entity.FarmerProfile) {
	t.Helper()
	u := e.seedUser(t, entity.UserTypeFarmer)
	p := entity.FarmerProfile{
		UserID:      u.ID,
		FarmName:    fmt.Sprintf("Farm %d", u.ID),
		FarmType:    entity.FarmTypeCrops,
		CountyID:    county.ID,
		MpesaNumber: "+254711111111",
		IsActive:    true,
	}
	if err := e.DB.Create(&p).Error; err != nil {
		t.Fatalf("seed farmer profile: %v", err)
	}
	return u, &p
}

func (e *testEnv) seedBuyer(t *testing.T, county *entity.County) (*entity.User, *entity.BuyerProfile) {
	t.Helper()
	u := e.seedUser(t, entity.UserTypeBuyer)
	p := entity.BuyerProfile{
		UserID:          u.ID,
		BuyerType:       entity.BuyerTypeIndividual,
		CountyID:        county.ID,
		DeliveryAddress: "Moi Avenue, Nairobi",
		MpesaNumber:     "+254722222222",
		IsActive:        true,
	}
	if err := e.DB.Create(&p).Error; err != nil {
		t.Fatalf("seed buyer profile: %v", err)
	}
	return u, &p
}

func (e *testEnv) seedTransporter(t *testing.T, county *entity.County) (*entity.User, *entity.TransporterProfile) {
	t.Helper()
	u := e.seedUser(t, entity.UserTypeTransporter)
	p := entity.TransporterProfile{
		UserID:              u.ID,
		VehicleType:         entity.VehiclePickup,
		VehicleRegistration: fmt.Sprintf("KDA %03dX", u.ID),
		BaseCountyID:        county.ID,
		MpesaNumber:         "+254733333333",
		DrivingLicense:      fmt.Sprintf("DL%06d", u.ID),
		IsAvailable:         true,
		IsActive:            true,
	}
	if err := e.DB.Create(&p).Error; err != nil {
		t.Fatalf("seed transporter profile: %v", err)
	}
	return u, &p
}

func (e *testEnv) seedCategory(t *testing.T) *entity.Category {
	t.Helper()
	n := nextSeq()
	c := entity.Category{
		Name:     fmt.Sprintf("Vegetables %d", n),
		Slug:     fmt.Sprintf("vegetables-%d", n),
		IsActive: true,
	}
	if err := e.DB.Create(&c).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return &c
}

// seedProduct creates an active tracked product priced in whole shillings.
func (e *testEnv) seedProduct(t *testing.T, farmer *entity.FarmerProfile, category *entity.Category, price, qty int64) *entity.Product {
	t.Helper()
	p := entity.NewProduct(farmer, fmt.Sprintf("Produce %d", nextSeq()))
	p.CategoryID = category.ID
	p.Price = decimal.NewFromInt(price)
	p.AvailableQuantity = decimal.NewFromInt(qty)
	p.RecomputeStockStatus()
	if err := e.DB.Create(p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
