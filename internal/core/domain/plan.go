package domain

import "errors"

// BillingCycle is the recurrence period at which a plan charges.
type BillingCycle string

const (
	BillingMonthly   BillingCycle = "monthly"
	BillingQuarterly BillingCycle = "quarterly"
	BillingYearly    BillingCycle = "yearly"
)

// PlanStatus represents the publication state of a subscription plan.
type PlanStatus string

const (
	PlanActive   PlanStatus = "active"
	PlanArchived PlanStatus = "archived"
	PlanDraft    PlanStatus = "draft"
)

var ErrPlanNotFound = errors.New("subscription plan not found")

// SubscriptionPlan is a sellable tier. Features is an ordered list of
// marketing bullet points.
type SubscriptionPlan struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        float64      `json:"price"`
	BillingCycle BillingCycle `json:"billing_cycle"`
	Features     []string     `json:"features"`
	IsPopular    bool         `json:"is_popular"`
	Status       PlanStatus   `json:"status"`
	CreatedAt    string       `json:"created_at"`
}
