package usecases

import (
	"context"
	"time"
)

// Receipt carries what the payment confirmation message needs.
type Receipt struct {
	CustomerPhone string
	ProductName   string
	Amount        int64
	Currency      string
	Reference     string
	PeriodEnd     time.Time
}

// ReceiptNotifier sends the payment receipt, best effort per channel.
type ReceiptNotifier interface {
	SendPaymentReceipt(ctx context.Context, receipt Receipt) []error
}
