package dto

// Decision is the four-way outcome of an access evaluation. It drives which
// of the three page states is rendered (full content, auth wall, paywall);
// denied means the target is not viewable at all.
type Decision string

const (
	DecisionGranted      Decision = "granted"
	DecisionAuthRequired Decision = "auth_required"
	DecisionPaywall      Decision = "paywall"
	DecisionDenied       Decision = "denied"
)

// Grant reasons.
const (
	ReasonFree     = "free"
	ReasonEntitled = "entitled"
)

// PaywallProduct is one upsell option: a product plus its cheapest active
// price. Products without an active price are omitted.
type PaywallProduct struct {
	ProductSID  string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceSID    string `json:"price_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Interval    string `json:"interval"`
}

// AccessResult is the evaluator's full answer.
type AccessResult struct {
	Decision Decision         `json:"decision"`
	Reason   string           `json:"reason,omitempty"`
	LoginURL string           `json:"login_url,omitempty"`
	Products []PaywallProduct `json:"products,omitempty"`
}
