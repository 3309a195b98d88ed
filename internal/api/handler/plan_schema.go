package handler

import "github.com/subscribely/admin-dashboard/internal/core/ports"

type planRequest struct {
	Name         string   `json:"name"          validate:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"         validate:"gte=0"`
	BillingCycle string   `json:"billing_cycle" validate:"required,oneof=monthly quarterly yearly"`
	Features     []string `json:"features"`
	IsPopular    bool     `json:"is_popular"`
	Status       string   `json:"status"        validate:"required,oneof=active archived draft"`
}

func (r planRequest) toInput() ports.PlanInput {
	return ports.PlanInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		BillingCycle: r.BillingCycle,
		Features:     r.Features,
		IsPopular:    r.IsPopular,
		Status:       r.Status,
	}
}
