package domain

// SubscriptionMetric is one month of the fixed revenue series.
// Month is formatted as YYYY-MM.
type SubscriptionMetric struct {
	Month                 string  `json:"month"`
	NewSubscriptions      int     `json:"new_subscriptions"`
	CanceledSubscriptions int     `json:"canceled_subscriptions"`
	TotalActive           int     `json:"total_active"`
	Revenue               float64 `json:"revenue"`
}

// ChurnedUser records a cancellation event: who left, when, why, and how much
// recurring revenue went with them.
type ChurnedUser struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	AccountName      string  `json:"account_name"`
	SubscriptionPlan string  `json:"subscription_plan"`
	ChurnDate        string  `json:"churn_date"`
	ChurnReason      string  `json:"churn_reason"`
	LastLoginDate    string  `json:"last_login_date"`
	TotalRevenue     float64 `json:"total_revenue"`
}
