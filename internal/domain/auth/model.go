package auth

import (
	"regexp"
	"strings"
	"time"

	"nautica/internal/core/apperror"
)

// Roles in ascending privilege order.
const (
	RoleCustomer = "customer"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is an account able to authenticate against the API.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate implements self-validation. It defaults Role to customer.
func (u *User) Validate() error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if !emailRe.MatchString(u.Email) {
		return apperror.NewValidation("invalid email address").
			WithDetail("field", "email")
	}
	if strings.TrimSpace(u.FirstName) == "" {
		return apperror.NewValidation("first name is required").
			WithDetail("field", "firstName")
	}
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	switch u.Role {
	case RoleCustomer, RoleManager, RoleAdmin:
	default:
		return apperror.NewValidation("invalid role").
			WithDetail("field", "role").
			WithDetail("value", u.Role)
	}
	return nil
}
