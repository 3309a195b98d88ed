package handler

import "github.com/subscribely/admin-dashboard/internal/core/ports"

type accountRequest struct {
	Name             string `json:"name"              validate:"required"`
	Industry         string `json:"industry"`
	SubscriptionPlan string `json:"subscription_plan"`
	Status           string `json:"status"            validate:"required,oneof=active inactive trial"`
	UserCount        int    `json:"user_count"        validate:"gte=0"`
}

func (r accountRequest) toInput() ports.AccountInput {
	return ports.AccountInput{
		Name:             r.Name,
		Industry:         r.Industry,
		SubscriptionPlan: r.SubscriptionPlan,
		Status:           r.Status,
		UserCount:        r.UserCount,
	}
}
