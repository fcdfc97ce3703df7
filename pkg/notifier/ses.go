package notifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/shopspring/decimal"
)

type SESMailer struct {
	client *ses.Client
	sender string
}

// NewSESMailer builds a mailer from static credentials. Returns nil (mail
// disabled) when the sender address is not configured.
func NewSESMailer(region, accessKeyID, secretAccessKey, sender string) (*SESMailer, error) {
	if sender == "" {
		return nil, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS SDK config: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(awsCfg), sender: sender}, nil
}

func (m *SESMailer) SendOrderConfirmation(recipientEmail, customerName, orderNumber string, totalAmount decimal.Decimal) error {
	if recipientEmail == "" {
		return fmt.Errorf("recipient email address is empty")
	}

	subject := fmt.Sprintf("Order #%s Confirmation - AgriLink", orderNumber)
	amount := totalAmount.StringFixed(2)

	bodyHTML := fmt.Sprintf(`
        <html>
        <body>
            <p>Dear %s,</p>
            <p>Thank you for your order! Order #%s has been placed.</p>
            <ul>
                <li>Order Number: %s</li>
                <li>Total Amount: KES %s</li>
            </ul>
            <p>Complete your M-Pesa payment to get your produce moving.</p>
            <p>AgriLink</p>
        </body>
        </html>`, customerName, orderNumber, orderNumber, amount)

	bodyText := fmt.Sprintf(
		"Dear %s,\n\nThank you for your order! Order #%s has been placed.\n\n"+
			"Order Number: %s\nTotal Amount: KES %s\n\n"+
			"Complete your M-Pesa payment to get your produce moving.\n\nAgriLink",
		customerName, orderNumber, orderNumber, amount)

	input := &ses.SendEmailInput{
		Source: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{recipientEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyHTML),
				},
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyText),
				},
			},
		},
	}

	if _, err := m.client.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
