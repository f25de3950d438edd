package models

import "time"

// BillingPeriod enumerates the supported subscription billing intervals.
type BillingPeriod string

const (
	PeriodMonthly   BillingPeriod = "monthly"
	PeriodQuarterly BillingPeriod = "quarterly"
	PeriodBiannual  BillingPeriod = "biannual"
)

// Months returns the number of months covered by one billing period.
// Unknown periods count as a single month.
func (p BillingPeriod) Months() int {
	switch p {
	case PeriodQuarterly:
		return 3
	case PeriodBiannual:
		return 6
	default:
		return 1
	}
}

// SubscriptionPlan is one subscription tier. Price is the full charge for
// the billing period (a quarterly plan stores the full quarterly amount,
// not a monthly equivalent) in CAD. RetentionRate is the assumed per-period
// probability a subscriber stays, in [0,1]. Priority strictly increases
// with commitment length and drives the upgrade path.
type SubscriptionPlan struct {
	ID             string        `db:"id" json:"id"`
	Name           string        `db:"name" json:"name"`
	Description    string        `db:"description" json:"description"`
	Period         BillingPeriod `db:"period" json:"period"`
	Price          float64       `db:"price" json:"price"`
	SavingsPercent int           `db:"savings_percent" json:"savingsPercent"`
	RetentionRate  float64       `db:"retention_rate" json:"retentionRate"`
	Features       []string      `db:"-" json:"features"`
	Priority       int           `db:"priority" json:"priority"`
	UpdatedAt      time.Time     `db:"updated_at" json:"-"`
}

// MonthlyEquivalent returns the plan price normalized to one month.
func (p *SubscriptionPlan) MonthlyEquivalent() float64 {
	return p.Price / float64(p.Period.Months())
}

// TriggerType enumerates the retention lifecycle message purposes.
type TriggerType string

const (
	TriggerReminder TriggerType = "reminder"
	TriggerDiscount TriggerType = "discount"
	TriggerPause    TriggerType = "pause"
	TriggerCancel   TriggerType = "cancel"
)

// RetentionTrigger is static lifecycle-messaging configuration keyed by the
// number of days since subscription start. The marketing automation system
// owns scheduling and sending; this service only serves the table.
type RetentionTrigger struct {
	Day             int         `json:"day"`
	Type            TriggerType `json:"type"`
	Subject         string      `json:"subject"`
	Message         string      `json:"message"`
	DiscountCode    string      `json:"discountCode,omitempty"`
	DiscountPercent int         `json:"discountPercent,omitempty"`
}
