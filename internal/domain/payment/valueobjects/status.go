package valueobjects

// PaymentStatus tracks a manually verified off-platform transaction.
// Money moves over mobile money or bank transfer outside the system; a
// merchant or admin confirms the claim by hand.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusMatched   PaymentStatus = "matched"
	StatusConfirmed PaymentStatus = "confirmed"
	StatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	transitions := map[PaymentStatus][]PaymentStatus{
		StatusPending:   {StatusMatched, StatusConfirmed, StatusFailed},
		StatusMatched:   {StatusConfirmed, StatusFailed},
		StatusConfirmed: {},
		StatusFailed:    {},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[PaymentStatus]bool{
	StatusPending:   true,
	StatusMatched:   true,
	StatusConfirmed: true,
	StatusFailed:    true,
}

// PaymentChannel is the off-platform rail the customer paid over.
type PaymentChannel string

const (
	ChannelMobileMoney  PaymentChannel = "mobile_money"
	ChannelBankTransfer PaymentChannel = "bank_transfer"
)

func (c PaymentChannel) String() string { return string(c) }

var ValidChannels = map[PaymentChannel]bool{
	ChannelMobileMoney:  true,
	ChannelBankTransfer: true,
}
