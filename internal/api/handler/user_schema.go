package handler

import "github.com/subscribely/admin-dashboard/internal/core/ports"

type userRequest struct {
	Name        string `json:"name"         validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Role        string `json:"role"         validate:"required,oneof=admin user"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Status      string `json:"status"       validate:"required,oneof=active inactive pending"`
}

func (r userRequest) toInput() ports.UserInput {
	return ports.UserInput{
		Name:        r.Name,
		Email:       r.Email,
		Role:        r.Role,
		AccountID:   r.AccountID,
		AccountName: r.AccountName,
		Status:      r.Status,
	}
}
