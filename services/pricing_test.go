package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/services"
)

func TestDeliveryFee(t *testing.T) {
	tests := []struct {
		farmers int
		want    string
	}{
		{0, "0"},
		{1, "200"},
		{2, "300"},
		{3, "400"},
		{5, "600"},
	}
	for _, tt := range tests {
		got := services.DeliveryFee(tt.farmers)
		assert.True(t, got.Equal(dec(tt.want)), "farmers=%d: got %s, want %s", tt.farmers, got, tt.want)
	}
}

func TestServiceFee(t *testing.T) {
	assert.True(t, services.ServiceFee(dec("400")).Equal(dec("20")))
	assert.True(t, services.ServiceFee(dec("0")).Equal(dec("0")))

	// Rounds to two decimal places: 5% of 33.33 is 1.6665.
	assert.Equal(t, "1.67", services.ServiceFee(dec("33.33")).StringFixed(2))

	// Decimal-exact where float math would drift.
	assert.Equal(t, "0.01", services.ServiceFee(dec("0.10")).StringFixed(2))
}

func TestCartTotals(t *testing.T) {
	discount := dec("80")
	items := []entity.CartItem{
		{
			Quantity: dec("2.5"),
			Product:  entity.Product{FarmerID: 1, Price: dec("100")},
		},
		{
			Quantity: dec("1"),
			Product:  entity.Product{FarmerID: 1, Price: dec("100"), DiscountPrice: &discount},
		},
		{
			Quantity: dec("4"),
			Product:  entity.Product{FarmerID: 2, Price: dec("50")},
		},
	}

	totalItems, totalAmount, farmers := services.CartTotals(items)
	assert.True(t, totalItems.Equal(dec("7.5")))
	// 2.5*100 + 1*80 + 4*50 = 530; the discount price wins when lower.
	assert.True(t, totalAmount.Equal(dec("530")), "got %s", totalAmount)
	assert.Equal(t, 2, farmers)
}

func TestCartTotalsEmpty(t *testing.T) {
	totalItems, totalAmount, farmers := services.CartTotals(nil)
	assert.True(t, totalItems.IsZero())
	assert.True(t, totalAmount.IsZero())
	assert.Equal(t, 0, farmers)
}

func TestDeliveryFeeEstimate(t *testing.T) {
	guest := &entity.Cart{}
	assert.True(t, services.DeliveryFeeEstimate(guest, 2).IsZero(),
		"guest carts show no delivery estimate")

	buyerID := uint(7)
	owned := &entity.Cart{BuyerID: &buyerID}
	assert.True(t, services.DeliveryFeeEstimate(owned, 2).Equal(decimal.NewFromInt(300)))
}
