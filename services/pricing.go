package services

import (
	"github.com/shopspring/decimal"

	"github.com/steve-ongera/AgriLink/entity"
)

// Fee schedule. Delivery is a base charge plus a surcharge for every
// additional farmer the transporter must collect from; the service fee is
// the platform's cut of the goods subtotal.
var (
	baseDeliveryFee   = decimal.NewFromInt(200)
	perExtraFarmerFee = decimal.NewFromInt(100)
	serviceFeeRate    = decimal.RequireFromString("0.05")
	zero              = decimal.Zero
)

// DeliveryFee for a pickup run across n distinct farmers.
func DeliveryFee(distinctFarmers int) decimal.Decimal {
	if distinctFarmers <= 0 {
		return zero
	}
	fee := baseDeliveryFee
	if distinctFarmers > 1 {
		fee = fee.Add(perExtraFarmerFee.Mul(decimal.NewFromInt(int64(distinctFarmers - 1))))
	}
	return fee
}

// ServiceFee is 5% of the subtotal, kept at two decimal places.
func ServiceFee(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(serviceFeeRate).Round(2)
}

// CartTotals walks the items once and returns the quantity sum, the
// decimal-exact amount, and the distinct-farmer count.
func CartTotals(items []entity.CartItem) (totalItems, totalAmount decimal.Decimal, farmers int) {
	totalItems = zero
	totalAmount = zero
	seen := make(map[uint]struct{})
	for i := range items {
		it := &items[i]
		totalItems = totalItems.Add(it.Quantity)
		totalAmount = totalAmount.Add(it.TotalPrice())
		seen[it.Product.FarmerID] = struct{}{}
	}
	return totalItems, totalAmount, len(seen)
}

// DeliveryFeeEstimate mirrors the cart page: zero until the cart belongs to
// a known buyer, since the fee depends on where the goods are going.
func DeliveryFeeEstimate(cart *entity.Cart, distinctFarmers int) decimal.Decimal {
	if cart.BuyerID == nil {
		return zero
	}
	return DeliveryFee(distinctFarmers)
}
