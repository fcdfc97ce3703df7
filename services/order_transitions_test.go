package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/apperr"
	"github.com/steve-ongera/AgriLink/services"
	"github.com/steve-ongera/AgriLink/utils"
)

type orderFixture struct {
	OrderNumber     string
	BuyerUser       *entity.User
	TransporterUser *entity.User
	Transporter     *entity.TransporterProfile
}

func placeOrder(t *testing.T, e *testEnv) *orderFixture {
	t.Helper()
	county := e.seedCounty(t)
	cat := e.seedCategory(t)
	_, farmer := e.seedFarmer(t, county)
	buyerUser, buyer := e.seedBuyer(t, county)
	tUser, transporter := e.seedTransporter(t, county)
	p := e.seedProduct(t, farmer, cat, 100, 50)

	session := utils.NewCartToken()
	_, err := e.Carts.Add(session, &buyer.ID, &services.AddToCartIn{ProductID: p.ID, Quantity: dec("2")})
	require.NoError(t, err)
	res, err := e.Orders.Checkout(buyerUser.ID, session, checkoutReq(county.ID))
	require.NoError(t, err)

	return &orderFixture{
		OrderNumber:     res.OrderNumber,
		BuyerUser:       buyerUser,
		TransporterUser: tUser,
		Transporter:     transporter,
	}
}

func (e *testEnv) orderStatus(t *testing.T, orderNumber string) string {
	t.Helper()
	o, err := e.OrderRepo.GetByNumber(orderNumber)
	require.NoError(t, err)
	return o.Status
}

func TestOrderLifecycle(t *testing.T) {
	e := newTestEnv(t)
	f := placeOrder(t, e)

	require.NoError(t, e.Orders.MarkPaid(f.OrderNumber))
	assert.Equal(t, entity.OrderPaid, e.orderStatus(t, f.OrderNumber))

	require.NoError(t, e.Orders.AssignTransporter(f.OrderNumber, f.Transporter.ID))
	assert.Equal(t, entity.OrderAssigned, e.orderStatus(t, f.OrderNumber))

	require.NoError(t, e.Orders.MarkPickedUp(f.TransporterUser.ID, f.OrderNumber))
	require.NoError(t, e.Orders.MarkInTransit(f.TransporterUser.ID, f.OrderNumber))
	require.NoError(t, e.Orders.MarkDelivered(f.TransporterUser.ID, f.OrderNumber))
	assert.Equal(t, entity.OrderDelivered, e.orderStatus(t, f.OrderNumber))

	require.NoError(t, e.Orders.Complete(f.BuyerUser.ID, f.OrderNumber))
	assert.Equal(t, entity.OrderCompleted, e.orderStatus(t, f.OrderNumber))

	o, err := e.OrderRepo.GetByNumber(f.OrderNumber)
	require.NoError(t, err)
	assert.NotNil(t, o.PaymentConfirmedAt)
	assert.NotNil(t, o.PickedUpAt)
	assert.NotNil(t, o.DeliveredAt)
	require.NotNil(t, o.TransporterID)
	assert.Equal(t, f.Transporter.ID, *o.TransporterID)

	fresh, err := e.UserRepo.TransporterProfileByUser(f.TransporterUser.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, fresh.TotalDeliveries)
}

func TestMarkPaidTwiceConflicts(t *testing.T) {
	e := newTestEnv(t)
	f := placeOrder(t, e)

	require.NoError(t, e.Orders.MarkPaid(f.OrderNumber))

	var cerr *apperr.ConflictError
	assert.ErrorAs(t, e.Orders.MarkPaid(f.OrderNumber), &cerr)
}

func TestAssignRequiresAvailableTransporter(t *testing.T) {
	e := newTestEnv(t)
	f := placeOrder(t, e)
	require.NoError(t, e.Orders.MarkPaid(f.OrderNumber))

	require.NoError(t, e.DB.Model(&entity.TransporterProfile{}).
		Where("id = ?", f.Transporter.ID).
		Update("is_available", false).Error)

	var nferr *apperr.NotFoundError
	assert.ErrorAs(t, e.Orders.AssignTransporter(f.OrderNumber, f.Transporter.ID), &nferr)
}

func TestAssignSkippingPaymentFails(t *testing.T) {
	e := newTestEnv(t)
	f := placeOrder(t, e)

	// Still pending: assignment needs a paid order.
	var cerr *apperr.ConflictError
	assert.ErrorAs(t, e.Orders.AssignTransporter(f.OrderNumber, f.Transporter.ID), &cerr)
}

func TestTransporterProgressRequiresOwnership(t *testing.T) {
	e := newTestEnv(t)
	f := placeOrder(t, e)
	require.NoError(t, e.Orders.MarkPaid(f.OrderNumber))
	require.NoError(t, e.Orders.AssignTransporter(f.OrderNumber, f.Transporter.ID))

	county := e.seedCounty(t)
	otherUser, _ := e.seedTransporter(t, county)

	var nferr *apperr.NotFoundError
	assert.ErrorAs(t, e.Orders.MarkPickedUp(otherUser.ID, f.OrderNumber), &nferr)

	// Progress must follow the sequence: in_transit before picked_up fails.
	var cerr *apperr.ConflictError
	assert.ErrorAs(t, e.Orders.MarkInTransit(f.TransporterUser.ID, f.OrderNumber), &cerr)
}

func TestBuyerCancelRules(t *testing.T) {
	e := newTestEnv(t)
	f := placeOrder(t, e)

	// Pending orders cancel cleanly.
	require.NoError(t, e.Orders.Cancel(f.BuyerUser.ID, f.OrderNumber, false))
	assert.Equal(t, entity.OrderCancelled, e.orderStatus(t, f.OrderNumber))

	// A paid order is out of the buyer's hands.
	f2 := placeOrder(t, e)
	require.NoError(t, e.Orders.MarkPaid(f2.OrderNumber))
	var verr *apperr.ValidationError
	assert.ErrorAs(t, e.Orders.Cancel(f2.BuyerUser.ID, f2.OrderNumber, false), &verr)

	// Another buyer never sees the order at all.
	county := e.seedCounty(t)
	stranger, _ := e.seedBuyer(t, county)
	f3 := placeOrder(t, e)
	var nferr *apperr.NotFoundError
	assert.ErrorAs(t, e.Orders.Cancel(stranger.ID, f3.OrderNumber, false), &nferr)
}

func TestAdminCancelAndRefund(t *testing.T) {
	e := newTestEnv(t)

	// Admin may cancel a paid order.
	f := placeOrder(t, e)
	require.NoError(t, e.Orders.MarkPaid(f.OrderNumber))
	require.NoError(t, e.Orders.Cancel(0, f.OrderNumber, true))
	assert.Equal(t, entity.OrderCancelled, e.orderStatus(t, f.OrderNumber))

	// But not one that is already closed.
	var cerr *apperr.ConflictError
	assert.ErrorAs(t, e.Orders.Cancel(0, f.OrderNumber, true), &cerr)

	// Refund exits any live state.
	f2 := placeOrder(t, e)
	require.NoError(t, e.Orders.MarkPaid(f2.OrderNumber))
	require.NoError(t, e.Orders.Refund(f2.OrderNumber))
	assert.Equal(t, entity.OrderRefunded, e.orderStatus(t, f2.OrderNumber))

	assert.ErrorAs(t, e.Orders.Refund(f2.OrderNumber), &cerr)
}

func TestCompleteOnlyAfterDelivery(t *testing.T) {
	e := newTestEnv(t)
	f := placeOrder(t, e)

	// Still pending: the guarded update finds nothing to move.
	var cerr *apperr.ConflictError
	assert.ErrorAs(t, e.Orders.Complete(f.BuyerUser.ID, f.OrderNumber), &cerr)
}
