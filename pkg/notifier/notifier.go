package notifier

import "github.com/shopspring/decimal"

// Mailer sends the order confirmation after checkout commits. Sends are
// best-effort; callers must not fail an order on a mail error.
type Mailer interface {
	SendOrderConfirmation(recipientEmail, customerName, orderNumber string, totalAmount decimal.Decimal) error
}

// Noop is used in tests and when mail is not configured.
type Noop struct{}

func (Noop) SendOrderConfirmation(string, string, string, decimal.Decimal) error { return nil }
