package reservation

import (
	"context"

	"github.com/google/uuid"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/catalog/club"
	"nautica/internal/domain/catalog/tour"
	"nautica/internal/domain/catalog/yacht"
	"nautica/internal/domain/folio"
	"nautica/pkg/logger"
)

// Created is the result of a successful booking.
type Created struct {
	Reservation *Reservation `json:"reservation"`
	Folio       int64        `json:"folio"`
}

// Detailed is a reservation with its folio and catalog entity resolved.
type Detailed struct {
	*Reservation
	Folio *folio.Folio `json:"folio,omitempty"`
	Yacht *yacht.Yacht `json:"yacht,omitempty"`
	Tour  *tour.Tour   `json:"tour,omitempty"`
	Club  *club.Club   `json:"club,omitempty"`
}

// FolioDetails is a folio with every reservation issued against it.
type FolioDetails struct {
	*folio.Folio
	Reservations []*Detailed `json:"reservations"`
}

// Service orchestrates reservation creation and lookups. Creation mints a
// folio first and persists the reservation referencing it; a reservation
// row never exists without a committed folio. The folio commit is
// independent, so an insert failure after minting leaves at most an unused
// folio number, never a dangling reference.
type Service struct {
	repo    Repository
	folios  *folio.Service
	catalog CatalogLookup
	audit   AuditRecorder
}

// NewService creates a new reservation service. audit may be nil.
func NewService(repo Repository, folios *folio.Service, catalog CatalogLookup, audit AuditRecorder) *Service {
	return &Service{
		repo:    repo,
		folios:  folios,
		catalog: catalog,
		audit:   audit,
	}
}

// Create validates the reservation, mints a folio for it, and persists it.
// Exactly one folio row and one reservation row are created per successful
// call. On any failure no reservation is created.
func (s *Service) Create(ctx context.Context, r *Reservation) (*Created, error) {
	if err := r.Validate(ctx); err != nil {
		return nil, err
	}

	// Pin the type-specific foreign key to the booked product.
	switch r.Type {
	case ProductYacht:
		if r.YachtID == nil {
			r.YachtID = &r.ProductID
		}
	case ProductTour:
		if r.TourID == nil {
			r.TourID = &r.ProductID
		}
	case ProductClub:
		if r.ClubID == nil {
			r.ClubID = &r.ProductID
		}
	}

	if r.QR == nil {
		ref := uuid.NewString()
		r.QR = &ref
	}

	issued, err := s.folios.Generate(ctx)
	if err != nil {
		return nil, err
	}
	r.FolioID = issued.ID

	if err := s.repo.Insert(ctx, r); err != nil {
		// The folio stays committed but unreferenced, which is harmless;
		// the reverse (reservation without folio) can never happen.
		return nil, err
	}

	s.record(ctx, r.ID, "create", r)

	logger.Info(ctx, "reservation created",
		"id", r.ID,
		"folio", issued.Folio,
		"type", r.Type,
		"product_id", r.ProductID)

	return &Created{Reservation: r, Folio: issued.Folio}, nil
}

// Get returns a single reservation by id.
func (s *Service) Get(ctx context.Context, id int64) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all reservations with folio and catalog details, newest first.
func (s *Service) List(ctx context.Context) ([]*Detailed, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Detailed, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.withDetails(ctx, r, true))
	}
	return out, nil
}

// FindByProduct returns reservations for one catalog item, newest first.
func (s *Service) FindByProduct(ctx context.Context, productID int64, typ ProductType) ([]*Reservation, error) {
	if !IsValidProductType(typ) {
		return nil, &apperror.AppError{
			Code:       apperror.CodeInvalidProduct,
			Message:    "type must be one of yacht, tour, club",
			HTTPStatus: 400,
		}
	}
	return s.repo.FindByProduct(ctx, productID, typ)
}

// FindByStatus returns reservations in the given status, newest first.
func (s *Service) FindByStatus(ctx context.Context, status Status) ([]*Reservation, error) {
	if !IsValidStatus(status) {
		return nil, &apperror.AppError{
			Code:       apperror.CodeInvalidStatus,
			Message:    "invalid reservation status",
			HTTPStatus: 400,
		}
	}
	return s.repo.FindByStatus(ctx, status)
}

// FindByEmail returns a customer's reservations, newest first.
func (s *Service) FindByEmail(ctx context.Context, email string) ([]*Reservation, error) {
	return s.repo.FindByEmail(ctx, email)
}

// FindByFolio returns the folio with the given composite public number
// together with its reservations and their catalog entities.
func (s *Service) FindByFolio(ctx context.Context, composite int64) (*FolioDetails, error) {
	f, err := s.folios.GetByNumber(ctx, composite)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByFolioID(ctx, f.ID)
	if err != nil {
		return nil, err
	}

	details := &FolioDetails{Folio: f, Reservations: make([]*Detailed, 0, len(rows))}
	for _, r := range rows {
		details.Reservations = append(details.Reservations, s.withDetails(ctx, r, false))
	}
	return details, nil
}

// Patch carries optional field updates for a reservation. Nil fields are
// left unchanged. ReservationDate is the wire string form.
type Patch struct {
	FirstName       *string
	LastName        *string
	Email           *string
	Phone           *string
	ReservationDate *string
	Quantity        *int
	Description     *string
	Status          *Status
}

// Update applies a patch to an existing reservation.
func (s *Service) Update(ctx context.Context, id int64, p *Patch) (*Reservation, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.FirstName != nil {
		r.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		r.LastName = *p.LastName
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.ReservationDate != nil {
		date, err := ParseDate(*p.ReservationDate)
		if err != nil {
			return nil, err
		}
		r.ReservationDate = date
	}
	if p.Quantity != nil {
		r.Quantity = *p.Quantity
	}
	if p.Description != nil {
		r.Description = p.Description
	}
	if p.Status != nil {
		r.Status = *p.Status
	}

	if err := r.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	s.record(ctx, r.ID, "update", p)
	return r, nil
}

// Delete removes a reservation. The folio row stays; issued receipt
// numbers are never reused.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, id, "delete", nil)
	return nil
}

// withDetails resolves the folio (optional) and catalog entity for one
// reservation. Lookup failures degrade to a bare reservation.
func (s *Service) withDetails(ctx context.Context, r *Reservation, includeFolio bool) *Detailed {
	d := &Detailed{Reservation: r}

	if includeFolio {
		f, err := s.folios.GetByID(ctx, r.FolioID)
		if err == nil {
			d.Folio = f
		} else if !apperror.IsNotFound(err) {
			logger.Warn(ctx, "load folio for reservation failed", "reservation_id", r.ID, "error", err)
		}
	}

	if s.catalog == nil {
		return d
	}

	var err error
	switch r.Type {
	case ProductYacht:
		d.Yacht, err = s.catalog.Yacht(ctx, r.ProductID)
	case ProductTour:
		d.Tour, err = s.catalog.Tour(ctx, r.ProductID)
	case ProductClub:
		d.Club, err = s.catalog.Club(ctx, r.ProductID)
	}
	if err != nil && !apperror.IsNotFound(err) {
		logger.Warn(ctx, "load catalog entity for reservation failed",
			"reservation_id", r.ID,
			"type", r.Type,
			"error", err)
	}
	return d
}

func (s *Service) record(ctx context.Context, id int64, action string, changes any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, "reservation", id, action, changes); err != nil {
		logger.Warn(ctx, "audit record failed", "reservation_id", id, "action", action, "error", err)
	}
}
