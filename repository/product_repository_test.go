package repository_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/repository"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	if err := db.AutoMigrate(&entity.Product{}, &entity.FarmerProfile{}, &entity.ProductImage{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestDecrementStockGuards(t *testing.T) {
	db := setupRepoDB(t)
	repo := repository.NewProductRepository(db)

	p := entity.Product{
		Name:              "Sukuma Wiki",
		Slug:              "sukuma-wiki",
		Sku:               "FARM-TEST0001",
		Price:             decimal.NewFromInt(40),
		AvailableQuantity: decimal.NewFromInt(10),
		IsActive:          true,
	}
	require.NoError(t, db.Create(&p).Error)

	won, err := repo.DecrementStock(db, p.ID, decimal.NewFromInt(7))
	require.NoError(t, err)
	assert.True(t, won)

	// Only 3 left: a bigger take loses and changes nothing.
	won, err = repo.DecrementStock(db, p.ID, decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.False(t, won)

	var fresh entity.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	assert.True(t, fresh.AvailableQuantity.Equal(decimal.NewFromInt(3)))
	assert.True(t, fresh.TotalSold.Equal(decimal.NewFromInt(7)))

	// Taking exactly the remainder drains the row to zero.
	won, err = repo.DecrementStock(db, p.ID, decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.True(t, won)
	require.NoError(t, db.First(&fresh, p.ID).Error)
	assert.True(t, fresh.AvailableQuantity.IsZero())
}

// Competing decrements can never jointly overdraw: with 10 on hand and
// twenty attempts of 3 each, at most three can win.
func TestDecrementStockConcurrent(t *testing.T) {
	db := setupRepoDB(t)
	repo := repository.NewProductRepository(db)

	p := entity.Product{
		Name:              "Managu",
		Slug:              "managu",
		Sku:               "FARM-TEST0002",
		Price:             decimal.NewFromInt(30),
		AvailableQuantity: decimal.NewFromInt(10),
		IsActive:          true,
	}
	require.NoError(t, db.Create(&p).Error)

	var wg sync.WaitGroup
	wins := make(chan struct{}, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			won, err := repo.DecrementStock(db, p.ID, decimal.NewFromInt(3))
			if err == nil && won {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	wonCount := 0
	for range wins {
		wonCount++
	}
	assert.LessOrEqual(t, wonCount, 3)

	var fresh entity.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	assert.False(t, fresh.AvailableQuantity.IsNegative(), "stock never goes below zero")
	expected := decimal.NewFromInt(10 - int64(wonCount)*3)
	assert.True(t, fresh.AvailableQuantity.Equal(expected),
		"remaining %s after %d wins", fresh.AvailableQuantity, wonCount)
}

func TestRefreshStockStatus(t *testing.T) {
	db := setupRepoDB(t)
	repo := repository.NewProductRepository(db)

	p := entity.Product{
		Name:              "Terere",
		Slug:              "terere",
		Sku:               "FARM-TEST0003",
		Price:             decimal.NewFromInt(25),
		AvailableQuantity: decimal.NewFromInt(50),
		LowStockThreshold: decimal.NewFromInt(10),
		StockStatus:       entity.StockAvailable,
		IsActive:          true,
	}
	require.NoError(t, db.Create(&p).Error)

	won, err := repo.DecrementStock(db, p.ID, decimal.NewFromInt(45))
	require.NoError(t, err)
	require.True(t, won)
	require.NoError(t, repo.RefreshStockStatus(db, p.ID))

	var fresh entity.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	assert.Equal(t, entity.StockLowStock, fresh.StockStatus)
}
