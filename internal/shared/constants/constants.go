package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyMerchantID = "merchant_id"
	ContextKeyAdmin      = "admin"
	ContextKeyRequestID  = "request_id"

	// Database table names
	TableMerchants             = "merchants"
	TableCreators              = "creators"
	TableContents              = "contents"
	TableContentViews          = "content_views"
	TableProducts              = "products"
	TablePrices                = "prices"
	TableSubscriptions         = "subscriptions"
	TablePayments              = "payments"
	TablePlans                 = "plans"
	TablePlatformSubscriptions = "platform_subscriptions"
)

// SubscriptionGraceDays is the fixed window after period end during which a
// lapsed subscription stays past_due instead of expired.
const SubscriptionGraceDays = 7

// ExpiryReminderDays is how far ahead of period end the renewal reminder goes out.
const ExpiryReminderDays = 7
