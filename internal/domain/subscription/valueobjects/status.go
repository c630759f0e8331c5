package valueobjects

type SubscriptionStatus string

const (
	StatusTrialing  SubscriptionStatus = "trialing"
	StatusActive    SubscriptionStatus = "active"
	StatusPastDue   SubscriptionStatus = "past_due"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// Entitles reports whether the status alone allows access to gated content.
// past_due means the grace window delays expiry, it does not extend access.
func (s SubscriptionStatus) Entitles() bool {
	return s == StatusActive || s == StatusTrialing
}

// IsTerminal reports whether the status admits no automatic transition.
// Reactivation out of expired happens only through a new confirmed payment.
func (s SubscriptionStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusExpired
}

func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusTrialing:  {StatusActive, StatusCancelled, StatusExpired},
		StatusActive:    {StatusPastDue, StatusCancelled, StatusExpired},
		StatusPastDue:   {StatusActive, StatusCancelled, StatusExpired},
		StatusCancelled: {},
		StatusExpired:   {StatusActive},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusTrialing:  true,
	StatusActive:    true,
	StatusPastDue:   true,
	StatusCancelled: true,
	StatusExpired:   true,
}
