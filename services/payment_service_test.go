package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/apperr"
	"github.com/steve-ongera/AgriLink/services"
)

func TestPaymentFlow(t *testing.T) {
	e := newTestEnv(t)
	f := placeOrder(t, e)

	out, err := e.Payments.Initiate(f.BuyerUser.ID, f.OrderNumber, "")
	require.NoError(t, err)
	assert.NotEmpty(t, out.CheckoutRequestID)
	assert.NotEmpty(t, out.MerchantRequestID)

	// The recorded transaction carries the order total and the buyer's
	// M-Pesa number as fallback phone.
	txn, err := e.PaymentRepo.ByCheckoutRequestID(out.CheckoutRequestID)
	require.NoError(t, err)
	assert.Equal(t, entity.TxnPending, txn.Status)
	assert.Equal(t, "+254722222222", txn.PhoneNumber)
	// 200 goods + 200 delivery + 10 service fee.
	assert.True(t, txn.Amount.Equal(dec("410")), "amount %s", txn.Amount)

	// A successful callback settles the transaction and pays the order.
	err = e.Payments.ApplyCallback(&services.MpesaCallbackIn{
		CheckoutRequestID:  out.CheckoutRequestID,
		ResultCode:         "0",
		ResultDesc:         "The service request is processed successfully.",
		MpesaReceiptNumber: "SGH61XKQTP",
	})
	require.NoError(t, err)

	txn, err = e.PaymentRepo.ByCheckoutRequestID(out.CheckoutRequestID)
	require.NoError(t, err)
	assert.Equal(t, entity.TxnCompleted, txn.Status)
	assert.Equal(t, "SGH61XKQTP", txn.MpesaReceiptNumber)

	assert.Equal(t, entity.OrderPaid, e.orderStatus(t, f.OrderNumber))
}

func TestPaymentCallbackFailure(t *testing.T) {
	e := newTestEnv(t)
	f := placeOrder(t, e)

	out, err := e.Payments.Initiate(f.BuyerUser.ID, f.OrderNumber, "+254799999999")
	require.NoError(t, err)

	err = e.Payments.ApplyCallback(&services.MpesaCallbackIn{
		CheckoutRequestID: out.CheckoutRequestID,
		ResultCode:        "1032",
		ResultDesc:        "Request cancelled by user.",
	})
	require.NoError(t, err)

	txn, err := e.PaymentRepo.ByCheckoutRequestID(out.CheckoutRequestID)
	require.NoError(t, err)
	assert.Equal(t, entity.TxnFailed, txn.Status)
	assert.Equal(t, entity.OrderPending, e.orderStatus(t, f.OrderNumber),
		"a failed payment leaves the order awaiting payment")
}

func TestPaymentCallbackSettledOnce(t *testing.T) {
	e := newTestEnv(t)
	f := placeOrder(t, e)

	out, err := e.Payments.Initiate(f.BuyerUser.ID, f.OrderNumber, "")
	require.NoError(t, err)

	cb := &services.MpesaCallbackIn{CheckoutRequestID: out.CheckoutRequestID, ResultCode: "0"}
	require.NoError(t, e.Payments.ApplyCallback(cb))

	var cerr *apperr.ConflictError
	assert.ErrorAs(t, e.Payments.ApplyCallback(cb), &cerr)
}

func TestPaymentInitiateRules(t *testing.T) {
	e := newTestEnv(t)
	f := placeOrder(t, e)

	// Only the buyer's own order.
	county := e.seedCounty(t)
	stranger, _ := e.seedBuyer(t, county)
	var nferr *apperr.NotFoundError
	_, err := e.Payments.Initiate(stranger.ID, f.OrderNumber, "")
	assert.ErrorAs(t, err, &nferr)

	// Only while awaiting payment.
	require.NoError(t, e.Orders.MarkPaid(f.OrderNumber))
	var verr *apperr.ValidationError
	_, err = e.Payments.Initiate(f.BuyerUser.ID, f.OrderNumber, "")
	assert.ErrorAs(t, err, &verr)

	// Unknown transaction id on callback.
	err = e.Payments.ApplyCallback(&services.MpesaCallbackIn{CheckoutRequestID: "missing", ResultCode: "0"})
	assert.ErrorAs(t, err, &nferr)
}
