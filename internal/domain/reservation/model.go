// Package reservation provides the booking workflow: every reservation is
// created together with a freshly minted folio and always references exactly
// one.
package reservation

import (
	"context"
	"regexp"
	"strings"
	"time"

	"nautica/internal/core/apperror"
)

// ProductType discriminates which catalog entity a reservation books.
type ProductType string

const (
	ProductYacht ProductType = "yacht"
	ProductTour  ProductType = "tour"
	ProductClub  ProductType = "club"
)

// Status of a reservation. Any status may be set to any other via update;
// no transition graph is enforced.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Reservation is a booking of one catalog item by one customer. FolioID is
// assigned at creation and never reassigned.
type Reservation struct {
	ID              int64       `db:"id" json:"id"`
	FirstName       string      `db:"first_name" json:"firstName"`
	LastName        string      `db:"last_name" json:"lastName"`
	Email           string      `db:"email" json:"email"`
	Phone           string      `db:"phone" json:"phone"`
	ReservationDate time.Time   `db:"reservation_date" json:"reservationDate"`
	Quantity        int         `db:"quantity" json:"quantity"`
	Description     *string     `db:"description" json:"description,omitempty"`
	ProductID       int64       `db:"product_id" json:"productId"`
	Type            ProductType `db:"type" json:"type"`
	QR              *string     `db:"qr" json:"qr,omitempty"`
	Status          Status      `db:"status" json:"status"`
	FolioID         int64       `db:"folio_id" json:"folioId"`
	UserID          int64       `db:"user_id" json:"userId"`
	YachtID         *int64      `db:"yacht_id" json:"yachtId,omitempty"`
	TourID          *int64      `db:"tour_id" json:"tourId,omitempty"`
	ClubID          *int64      `db:"club_id" json:"clubId,omitempty"`
	CreatedAt       time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time   `db:"updated_at" json:"updatedAt"`
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate implements self-validation. It defaults Status to pending.
func (r *Reservation) Validate(ctx context.Context) error {
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return apperror.NewValidation("customer name is required")
	}
	if !emailRe.MatchString(r.Email) {
		return apperror.NewValidation("invalid email address").
			WithDetail("field", "email")
	}
	if r.Quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity").
			WithDetail("value", r.Quantity)
	}
	if r.ProductID <= 0 {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if r.UserID <= 0 {
		return apperror.NewValidation("user is required").
			WithDetail("field", "userId")
	}
	if !IsValidProductType(r.Type) {
		return &apperror.AppError{
			Code:       apperror.CodeInvalidProduct,
			Message:    "type must be one of yacht, tour, club",
			HTTPStatus: 400,
		}
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	if !IsValidStatus(r.Status) {
		return &apperror.AppError{
			Code:       apperror.CodeInvalidStatus,
			Message:    "invalid reservation status",
			HTTPStatus: 400,
		}
	}
	return nil
}

// IsValidProductType reports whether t names a bookable catalog type.
func IsValidProductType(t ProductType) bool {
	switch t {
	case ProductYacht, ProductTour, ProductClub:
		return true
	}
	return false
}

// IsValidStatus reports whether s is a known reservation status.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ParseDate parses the wire representation of a reservation date:
// RFC 3339, or a bare calendar date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid reservation date").
			WithDetail("value", s).
			WithCause(err)
	}
	return t, nil
}
