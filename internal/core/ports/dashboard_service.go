package ports

import "context"

// StatCard is one summary card on the dashboard landing page.
type StatCard struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// DashboardService produces the landing-page stat cards: system-wide totals
// for admins, the viewer's own subscription for regular users.
type DashboardService interface {
	Stats(ctx context.Context, userID string, isAdmin bool) ([]StatCard, error)
}
