package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lifecycleUsecases "github.com/lipagate/lipagate/internal/application/lifecycle/usecases"
	paymentUsecases "github.com/lipagate/lipagate/internal/application/payment/usecases"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// recordingSender captures every message and optionally fails or panics.
type recordingSender struct {
	name  string
	err   error
	panic bool
	sent  []Message
}

func (s *recordingSender) Name() string { return s.name }

func (s *recordingSender) Send(_ context.Context, msg Message) error {
	if s.panic {
		panic("provider client bug")
	}
	s.sent = append(s.sent, msg)
	return s.err
}

func fullNotice() lifecycleUsecases.LifecycleNotice {
	return lifecycleUsecases.LifecycleNotice{
		CustomerPhone:    "+211900000001",
		MerchantEmail:    "amina@example.com",
		MerchantPhone:    "+211900000099",
		MerchantName:     "Amina K",
		ProductName:      "Premium plan",
		CurrentPeriodEnd: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestDispatcher_RenewalReminderFansOut(t *testing.T) {
	email := &recordingSender{name: "email"}
	sms := &recordingSender{name: "sms"}
	whatsapp := &recordingSender{name: "whatsapp"}
	d := NewDispatcher(email, sms, whatsapp, logger.NewLogger())

	errs := d.SendRenewalReminder(context.Background(), fullNotice())

	assert.Empty(t, errs)
	// Customer gets SMS and WhatsApp, merchant gets email plus both phone
	// channels.
	require.Len(t, email.sent, 1)
	assert.Equal(t, "amina@example.com", email.sent[0].Recipient)
	require.Len(t, sms.sent, 2)
	assert.Equal(t, "+211900000001", sms.sent[0].Recipient)
	assert.Equal(t, "+211900000099", sms.sent[1].Recipient)
	assert.Len(t, whatsapp.sent, 2)
}

func TestDispatcher_MissingContactSkipsChannel(t *testing.T) {
	email := &recordingSender{name: "email"}
	sms := &recordingSender{name: "sms"}
	d := NewDispatcher(email, sms, nil, logger.NewLogger())

	notice := fullNotice()
	notice.MerchantEmail = ""
	notice.MerchantPhone = ""
	errs := d.SendExpirationNotice(context.Background(), notice)

	assert.Empty(t, errs)
	assert.Empty(t, email.sent)
	require.Len(t, sms.sent, 1)
	assert.Equal(t, "+211900000001", sms.sent[0].Recipient)
}

func TestDispatcher_ChannelFailureIsIsolated(t *testing.T) {
	email := &recordingSender{name: "email"}
	sms := &recordingSender{name: "sms", err: errors.New("gateway 502")}
	whatsapp := &recordingSender{name: "whatsapp"}
	d := NewDispatcher(email, sms, whatsapp, logger.NewLogger())

	errs := d.SendRenewalReminder(context.Background(), fullNotice())

	// Both SMS sends fail, everything else still goes out.
	require.Len(t, errs, 2)
	assert.ErrorContains(t, errs[0], "sms")
	assert.Len(t, email.sent, 1)
	assert.Len(t, whatsapp.sent, 2)
}

func TestDispatcher_SenderPanicBecomesError(t *testing.T) {
	whatsapp := &recordingSender{name: "whatsapp", panic: true}
	d := NewDispatcher(nil, nil, whatsapp, logger.NewLogger())

	errs := d.SendPaymentReceipt(context.Background(), paymentUsecases.Receipt{
		CustomerPhone: "+211900000001",
		Amount:        5000,
		Currency:      "SSP",
		Reference:     "LPG-7H2K9",
	})

	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "panicked")
}

func TestDispatcher_AllSendersNilIsNoop(t *testing.T) {
	d := NewDispatcher(nil, nil, nil, logger.NewLogger())

	errs := d.SendTrialEnded(context.Background(), lifecycleUsecases.TrialNotice{
		MerchantEmail: "amina@example.com",
		MerchantPhone: "+211900000099",
	})

	assert.Empty(t, errs)
}
