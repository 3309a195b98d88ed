// Package report derives the dashboard's revenue and churn aggregates from
// the fixed monthly series and churn-event list. All functions are pure.
package report

import (
	"fmt"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// TrendWindow is the number of trailing months shown in the revenue trend.
const TrendWindow = 6

const monthsPerQuarter = 3

// QuarterSummary is one quarter of the rollup with its QoQ growth.
type QuarterSummary struct {
	Quarter       string  `json:"quarter"`
	Revenue       float64 `json:"revenue"`
	Subscriptions int     `json:"subscriptions"`
	GrowthPct     float64 `json:"growth_pct"`
}

// YearSummary is the full-series rollup.
type YearSummary struct {
	Year              string  `json:"year"`
	Revenue           float64 `json:"revenue"`
	Subscriptions     int     `json:"subscriptions"`
	AvgMonthlyRevenue float64 `json:"avg_monthly_revenue"`
}

// TrendPoint is one month of the windowed revenue trend. GrowthPct compares
// against the previous entry within the window; HasPrior is false on the
// first windowed entry, which has nothing to compare to.
type TrendPoint struct {
	Month            string  `json:"month"`
	Revenue          float64 `json:"revenue"`
	NewSubscriptions int     `json:"new_subscriptions"`
	TotalActive      int     `json:"total_active"`
	GrowthPct        float64 `json:"growth_pct"`
	HasPrior         bool    `json:"has_prior"`
}

// ReasonShare is one bucket of the churn-reason distribution.
type ReasonShare struct {
	Reason   string  `json:"reason"`
	Count    int     `json:"count"`
	SharePct float64 `json:"share_pct"`
}

// ChurnSummary aggregates the churn-event list.
type ChurnSummary struct {
	TotalChurned     int           `json:"total_churned"`
	TotalLostRevenue float64       `json:"total_lost_revenue"`
	AvgLostRevenue   float64       `json:"avg_lost_revenue"`
	TopReason        string        `json:"top_reason"`
	Reasons          []ReasonShare `json:"reasons"`
}

// QuarterlyRollup partitions the monthly series into 3-month windows and sums
// revenue and new subscriptions per window. Growth for the first quarter is
// reported as 0 (no prior period). A trailing partial window is summed as-is.
func QuarterlyRollup(months []domain.SubscriptionMetric) []QuarterSummary {
	var quarters []QuarterSummary
	for start := 0; start < len(months); start += monthsPerQuarter {
		end := start + monthsPerQuarter
		if end > len(months) {
			end = len(months)
		}

		q := QuarterSummary{
			Quarter: fmt.Sprintf("Q%d %s", start/monthsPerQuarter+1, yearOf(months[start])),
		}
		for _, m := range months[start:end] {
			q.Revenue += m.Revenue
			q.Subscriptions += m.NewSubscriptions
		}
		if n := len(quarters); n > 0 {
			q.GrowthPct = growthPct(q.Revenue, quarters[n-1].Revenue)
		}
		quarters = append(quarters, q)
	}
	return quarters
}

// YearlyRollup sums the whole series.
func YearlyRollup(months []domain.SubscriptionMetric) YearSummary {
	var y YearSummary
	if len(months) == 0 {
		return y
	}
	y.Year = yearOf(months[0])
	for _, m := range months {
		y.Revenue += m.Revenue
		y.Subscriptions += m.NewSubscriptions
	}
	y.AvgMonthlyRevenue = y.Revenue / float64(len(months))
	return y
}

// RevenueTrend returns the trailing TrendWindow months annotated with
// month-over-month growth computed within the windowed slice.
func RevenueTrend(months []domain.SubscriptionMetric) []TrendPoint {
	start := len(months) - TrendWindow
	if start < 0 {
		start = 0
	}
	window := months[start:]

	points := make([]TrendPoint, len(window))
	for i, m := range window {
		p := TrendPoint{
			Month:            m.Month,
			Revenue:          m.Revenue,
			NewSubscriptions: m.NewSubscriptions,
			TotalActive:      m.TotalActive,
		}
		if i > 0 {
			p.GrowthPct = growthPct(m.Revenue, window[i-1].Revenue)
			p.HasPrior = true
		}
		points[i] = p
	}
	return points
}

// ChurnRollup aggregates churn events: totals, the per-churn average, and the
// reason distribution. The top reason is the bucket with the highest count;
// ties go to the reason encountered first in event order.
func ChurnRollup(events []domain.ChurnedUser) ChurnSummary {
	s := ChurnSummary{TotalChurned: len(events)}

	counts := make(map[string]int, len(events))
	var order []string
	for _, e := range events {
		s.TotalLostRevenue += e.TotalRevenue
		if _, seen := counts[e.ChurnReason]; !seen {
			order = append(order, e.ChurnReason)
		}
		counts[e.ChurnReason]++
	}

	if s.TotalChurned > 0 {
		s.AvgLostRevenue = s.TotalLostRevenue / float64(s.TotalChurned)
	}

	s.Reasons = make([]ReasonShare, 0, len(order))
	for _, reason := range order {
		n := counts[reason]
		s.Reasons = append(s.Reasons, ReasonShare{
			Reason:   reason,
			Count:    n,
			SharePct: float64(n) / float64(s.TotalChurned) * 100,
		})
		if s.TopReason == "" || n > counts[s.TopReason] {
			s.TopReason = reason
		}
	}
	return s
}

// growthPct is the period-over-period growth percentage. Reported as 0 when
// the prior period has no revenue, so displays never see NaN or Inf.
func growthPct(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func yearOf(m domain.SubscriptionMetric) string {
	if len(m.Month) >= 4 {
		return m.Month[:4]
	}
	return m.Month
}
