package configs

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/utils"
)

// SeedAdmin creates the back-office account once.
func SeedAdmin() error {
	var cnt int64
	if err := db.Model(&entity.User{}).Where("user_type = ?", entity.UserTypeAdmin).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:   "admin",
		Email:      getEnv("ADMIN_EMAIL", "admin@agrilink.co.ke"),
		Password:   string(hash),
		FirstName:  "AgriLink",
		LastName:   "Admin",
		UserType:   entity.UserTypeAdmin,
		IsVerified: true,
	}
	return db.Create(&admin).Error
}

// SeedLookups loads counties and product categories used by the catalog and
// delivery validation. Idempotent: existing rows are left alone.
func SeedLookups() error {
	counties := []entity.County{
		{Name: "Nairobi", Code: "047"},
		{Name: "Kiambu", Code: "022"},
		{Name: "Nakuru", Code: "032"},
		{Name: "Meru", Code: "012"},
		{Name: "Uasin Gishu", Code: "027"},
		{Name: "Machakos", Code: "016"},
		{Name: "Kisumu", Code: "042"},
		{Name: "Nyeri", Code: "019"},
	}
	for _, c := range counties {
		if err := db.Where(entity.County{Name: c.Name}).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}

	categories := []entity.Category{
		{Name: "Vegetables", Icon: "fa-carrot", SortOrder: 1, IsActive: true},
		{Name: "Fruits", Icon: "fa-apple-whole", SortOrder: 2, IsActive: true},
		{Name: "Cereals", Icon: "fa-wheat-awn", SortOrder: 3, IsActive: true},
		{Name: "Dairy", Icon: "fa-cow", SortOrder: 4, IsActive: true},
		{Name: "Poultry", Icon: "fa-egg", SortOrder: 5, IsActive: true},
		{Name: "Tubers", Icon: "fa-seedling", SortOrder: 6, IsActive: true},
	}
	for _, cat := range categories {
		cat.Slug = utils.Slugify(cat.Name)
		if err := db.Where(entity.Category{Name: cat.Name}).FirstOrCreate(&cat).Error; err != nil {
			return err
		}
	}
	return nil
}
