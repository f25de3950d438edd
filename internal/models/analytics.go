package models

// UsageFrequency buckets how often a subscriber applies the product.
type UsageFrequency string

const (
	UsageLow    UsageFrequency = "low"
	UsageNormal UsageFrequency = "normal"
	UsageHigh   UsageFrequency = "high"
)

// BudgetTier and CommitmentLevel describe a shopper's declared preferences
// on the subscription quiz.
type (
	BudgetTier      string
	CommitmentLevel string
)

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"

	CommitmentLow    CommitmentLevel = "low"
	CommitmentMedium CommitmentLevel = "medium"
	CommitmentHigh   CommitmentLevel = "high"
)

// CustomerProfile is the quiz input used to recommend a plan.
type CustomerProfile struct {
	CatCount   int             `json:"catCount" binding:"required,min=1"`
	Budget     BudgetTier      `json:"budget"`
	Commitment CommitmentLevel `json:"commitment"`
}

// SubscriptionAnalytics is an externally supplied snapshot of one
// subscriber's observed behavior. It is never stored or mutated here; churn
// scoring reads it and discards it.
type SubscriptionAnalytics struct {
	DaysSinceLastInteraction int            `json:"daysSinceLastInteraction"`
	SupportTickets           int            `json:"supportTickets"`
	PaymentFailures          int            `json:"paymentFailures"`
	PauseCount               int            `json:"pauseCount"`
	UsageFrequency           UsageFrequency `json:"usageFrequency"`
}
