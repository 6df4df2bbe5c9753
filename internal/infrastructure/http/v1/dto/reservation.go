package dto

import (
	"nautica/internal/domain/reservation"
)

// CreateReservationRequest is the booking payload.
type CreateReservationRequest struct {
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required"`
	Phone           string  `json:"phone" binding:"required"`
	ReservationDate string  `json:"reservationDate" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required"`
	Description     *string `json:"description"`
	ProductID       int64   `json:"productId" binding:"required"`
	Type            string  `json:"type" binding:"required"`
	QR              *string `json:"qr"`
	UserID          int64   `json:"userId"`
}

// ToModel converts the request into a domain reservation. The date string
// is parsed by the service so format errors surface as validation errors.
func (r *CreateReservationRequest) ToModel() (*reservation.Reservation, error) {
	date, err := reservation.ParseDate(r.ReservationDate)
	if err != nil {
		return nil, err
	}
	return &reservation.Reservation{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		ReservationDate: date,
		Quantity:        r.Quantity,
		Description:     r.Description,
		ProductID:       r.ProductID,
		Type:            reservation.ProductType(r.Type),
		QR:              r.QR,
		UserID:          r.UserID,
	}, nil
}

// UpdateReservationRequest carries optional field updates.
type UpdateReservationRequest struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	ReservationDate *string `json:"reservationDate"`
	Quantity        *int    `json:"quantity"`
	Description     *string `json:"description"`
	Status          *string `json:"status"`
}

// ToPatch converts the request into a service patch.
func (r *UpdateReservationRequest) ToPatch() *reservation.Patch {
	p := &reservation.Patch{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		ReservationDate: r.ReservationDate,
		Quantity:        r.Quantity,
		Description:     r.Description,
	}
	if r.Status != nil {
		status := reservation.Status(*r.Status)
		p.Status = &status
	}
	return p
}
