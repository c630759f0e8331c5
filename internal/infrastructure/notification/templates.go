package notification

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	lifecycleUsecases "github.com/lipagate/lipagate/internal/application/lifecycle/usecases"
	paymentUsecases "github.com/lipagate/lipagate/internal/application/payment/usecases"
)

var printer = message.NewPrinter(language.English)

// formatAmount renders minor units as a grouped decimal with currency code,
// e.g. "SSP 1,500.00".
func formatAmount(amount int64, currency string) string {
	return printer.Sprintf("%s %.2f", currency, float64(amount)/100)
}

func formatDate(t time.Time) string {
	return t.UTC().Format("2 January 2006")
}

func renewalReminderText(n lifecycleUsecases.LifecycleNotice) string {
	product := n.ProductName
	if product == "" {
		product = "your subscription"
	}
	return fmt.Sprintf(
		"Your subscription to %s ends on %s. Renew before then to keep your access. Pay via mobile money or bank transfer and your merchant will confirm it.",
		product, formatDate(n.CurrentPeriodEnd),
	)
}

func renewalReminderMerchantText(n lifecycleUsecases.LifecycleNotice) string {
	return fmt.Sprintf(
		"Subscriber %s has a subscription to %s ending on %s. You may want to remind them to renew.",
		n.CustomerPhone, n.ProductName, formatDate(n.CurrentPeriodEnd),
	)
}

func expirationNoticeText(n lifecycleUsecases.LifecycleNotice) string {
	product := n.ProductName
	if product == "" {
		product = "your subscription"
	}
	return fmt.Sprintf(
		"Your subscription to %s has expired. Renew any time to regain access, a new payment reactivates it immediately after confirmation.",
		product,
	)
}

func expirationNoticeMerchantText(n lifecycleUsecases.LifecycleNotice) string {
	return fmt.Sprintf(
		"Subscriber %s's subscription to %s expired on %s.",
		n.CustomerPhone, n.ProductName, formatDate(n.CurrentPeriodEnd),
	)
}

func trialEndedText(n lifecycleUsecases.TrialNotice) string {
	plan := n.PlanName
	if plan == "" {
		plan = "your plan"
	}
	return fmt.Sprintf(
		"Your trial of %s ended on %s and your account moved to the free tier. Upgrade any time to get your features back.",
		plan, formatDate(n.TrialEndedAt),
	)
}

func receiptText(r paymentUsecases.Receipt) string {
	product := r.ProductName
	if product == "" {
		product = "your subscription"
	}
	return fmt.Sprintf(
		"Payment %s of %s confirmed. Your access to %s runs until %s. Thank you!",
		r.Reference, formatAmount(r.Amount, r.Currency), product, formatDate(r.PeriodEnd),
	)
}
