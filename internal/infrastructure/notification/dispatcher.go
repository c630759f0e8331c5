package notification

import (
	"context"
	"fmt"

	lifecycleUsecases "github.com/lipagate/lipagate/internal/application/lifecycle/usecases"
	paymentUsecases "github.com/lipagate/lipagate/internal/application/payment/usecases"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// Dispatcher fans lifecycle notices out to every channel that has contact
// info. Customers are reachable by phone (SMS and WhatsApp); merchants also
// by email. Each channel call is isolated: one provider being down only adds
// an error to the returned slice, the other channels still go out and the
// caller is never aborted.
type Dispatcher struct {
	email    Sender
	sms      Sender
	whatsapp Sender
	logger   logger.Interface
}

var (
	_ lifecycleUsecases.Notifier      = (*Dispatcher)(nil)
	_ paymentUsecases.ReceiptNotifier = (*Dispatcher)(nil)
)

// NewDispatcher creates a dispatcher. Any sender may be nil to disable that
// channel.
func NewDispatcher(email, sms, whatsapp Sender, logger logger.Interface) *Dispatcher {
	return &Dispatcher{email: email, sms: sms, whatsapp: whatsapp, logger: logger}
}

// SendRenewalReminder tells the customer and the merchant that a period is
// about to end.
func (d *Dispatcher) SendRenewalReminder(ctx context.Context, n lifecycleUsecases.LifecycleNotice) []error {
	var errs []error
	errs = append(errs, d.toPhone(ctx, n.CustomerPhone, Message{
		Subject: "Subscription renewal reminder",
		Text:    renewalReminderText(n),
	})...)
	errs = append(errs, d.toMerchant(ctx, n.MerchantEmail, n.MerchantPhone, Message{
		Subject: "A subscriber is about to lapse",
		Text:    renewalReminderMerchantText(n),
	})...)
	return errs
}

// SendExpirationNotice tells the customer and the merchant that a
// subscription expired.
func (d *Dispatcher) SendExpirationNotice(ctx context.Context, n lifecycleUsecases.LifecycleNotice) []error {
	var errs []error
	errs = append(errs, d.toPhone(ctx, n.CustomerPhone, Message{
		Subject: "Subscription expired",
		Text:    expirationNoticeText(n),
	})...)
	errs = append(errs, d.toMerchant(ctx, n.MerchantEmail, n.MerchantPhone, Message{
		Subject: "A subscription expired",
		Text:    expirationNoticeMerchantText(n),
	})...)
	return errs
}

// SendTrialEnded tells a merchant their platform trial ran out.
func (d *Dispatcher) SendTrialEnded(ctx context.Context, n lifecycleUsecases.TrialNotice) []error {
	return d.toMerchant(ctx, n.MerchantEmail, n.MerchantPhone, Message{
		Subject: "Your trial has ended",
		Text:    trialEndedText(n),
	})
}

// SendPaymentReceipt confirms a payment to the customer.
func (d *Dispatcher) SendPaymentReceipt(ctx context.Context, r paymentUsecases.Receipt) []error {
	return d.toPhone(ctx, r.CustomerPhone, Message{
		Subject: "Payment confirmed",
		Text:    receiptText(r),
	})
}

// toPhone sends over both phone channels when a number is present.
func (d *Dispatcher) toPhone(ctx context.Context, phone string, msg Message) []error {
	if phone == "" {
		return nil
	}
	msg.Recipient = phone

	var errs []error
	for _, sender := range []Sender{d.sms, d.whatsapp} {
		if err := d.send(ctx, sender, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// toMerchant sends email plus both phone channels depending on available
// contact info.
func (d *Dispatcher) toMerchant(ctx context.Context, email, phone string, msg Message) []error {
	var errs []error
	if email != "" {
		emailMsg := msg
		emailMsg.Recipient = email
		if err := d.send(ctx, d.email, emailMsg); err != nil {
			errs = append(errs, err)
		}
	}
	errs = append(errs, d.toPhone(ctx, phone, msg)...)
	return errs
}

// send isolates one channel call; a nil sender is a disabled channel.
func (d *Dispatcher) send(ctx context.Context, sender Sender, msg Message) (err error) {
	if sender == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s sender panicked: %v", sender.Name(), r)
		}
	}()
	if err := sender.Send(ctx, msg); err != nil {
		d.logger.Warnw("notification channel failed",
			"channel", sender.Name(),
			"recipient", msg.Recipient,
			"error", err,
		)
		return fmt.Errorf("%s: %w", sender.Name(), err)
	}
	return nil
}
