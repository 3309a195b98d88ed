package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserStatus represents the account standing of a dashboard user.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserPending  UserStatus = "pending"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a person managed through the dashboard. The same record doubles
// as the login identity: Role decides which routes the bearer may reach.
//
// AccountID/AccountName are denormalized on purpose: the source dataset
// stores the account label next to the id, so a rename does not propagate.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	AccountID    string     `json:"account_id"`
	AccountName  string     `json:"account_name"`
	Status       UserStatus `json:"status"`
	CreatedAt    string     `json:"created_at"`
}

// IsAdmin is the role gate: every admin-only view reduces to this predicate.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
