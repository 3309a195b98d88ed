package domain

import "errors"

// AccountStatus represents the lifecycle state of a customer account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
	AccountTrial    AccountStatus = "trial"
)

var ErrAccountNotFound = errors.New("account not found")

// Account is a customer organization. SubscriptionPlan holds the plan's
// display name rather than a plan id, kept as in the source dataset.
type Account struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Industry         string        `json:"industry"`
	SubscriptionPlan string        `json:"subscription_plan"`
	Status           AccountStatus `json:"status"`
	UserCount        int           `json:"user_count"`
	CreatedAt        string        `json:"created_at"`
}
