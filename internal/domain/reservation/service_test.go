package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nautica/internal/core/apperror"
	"nautica/internal/core/clock"
	"nautica/internal/domain/catalog/club"
	"nautica/internal/domain/catalog/tour"
	"nautica/internal/domain/catalog/yacht"
	"nautica/internal/domain/folio"
)

type stubCatalog struct {
	yachts map[int64]*yacht.Yacht
	tours  map[int64]*tour.Tour
	clubs  map[int64]*club.Club
}

func (s *stubCatalog) Yacht(ctx context.Context, id int64) (*yacht.Yacht, error) {
	if y, ok := s.yachts[id]; ok {
		return y, nil
	}
	return nil, apperror.NewNotFound("yacht", id)
}

func (s *stubCatalog) Tour(ctx context.Context, id int64) (*tour.Tour, error) {
	if t, ok := s.tours[id]; ok {
		return t, nil
	}
	return nil, apperror.NewNotFound("tour", id)
}

func (s *stubCatalog) Club(ctx context.Context, id int64) (*club.Club, error) {
	if c, ok := s.clubs[id]; ok {
		return c, nil
	}
	return nil, apperror.NewNotFound("club", id)
}

func newTestService(t *testing.T, year int) (*Service, *MockRepository, *folio.MockRepository) {
	t.Helper()
	folioRepo := folio.NewMockRepository()
	clk := clock.Fixed{T: time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)}
	folios := folio.NewService(folioRepo, folio.NoopTx{}, clk, 0)

	repo := NewMockRepository()
	catalog := &stubCatalog{
		yachts: map[int64]*yacht.Yacht{4: {ID: 4, Name: "Sea Breeze"}},
		tours:  map[int64]*tour.Tour{9: {ID: 9, Name: "Snorkel Bay"}},
		clubs:  map[int64]*club.Club{2: {ID: 2, Name: "Marina Club"}},
	}
	return NewService(repo, folios, catalog, nil), repo, folioRepo
}

func validReservation() *Reservation {
	return &Reservation{
		FirstName:       "Ana",
		LastName:        "Lopez",
		Email:           "ana@example.com",
		Phone:           "5551234567",
		ReservationDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		Quantity:        2,
		ProductID:       4,
		Type:            ProductYacht,
		UserID:          1,
	}
}

func TestCreate_AssignsFirstFolioOfYear(t *testing.T) {
	svc, repo, folioRepo := newTestService(t, 2025)

	created, err := svc.Create(context.Background(), validReservation())
	require.NoError(t, err)

	assert.Equal(t, int64(125), created.Folio)
	assert.Equal(t, StatusPending, created.Reservation.Status)
	assert.NotNil(t, created.Reservation.QR)
	require.NotNil(t, created.Reservation.YachtID)
	assert.Equal(t, int64(4), *created.Reservation.YachtID)
	assert.Equal(t, 1, repo.Count())
	assert.Equal(t, 1, folioRepo.Count())
}

func TestCreate_SequentialFolios(t *testing.T) {
	svc, _, _ := newTestService(t, 2025)

	want := []int64{125, 225, 325}
	for _, composite := range want {
		created, err := svc.Create(context.Background(), validReservation())
		require.NoError(t, err)
		assert.Equal(t, composite, created.Folio)
	}
}

func TestCreate_ValidationRejected(t *testing.T) {
	svc, repo, folioRepo := newTestService(t, 2025)

	r := validReservation()
	r.Email = "not-an-email"

	_, err := svc.Create(context.Background(), r)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	// Nothing persisted, no folio burned.
	assert.Equal(t, 0, repo.Count())
	assert.Equal(t, 0, folioRepo.Count())
}

func TestCreate_RequiresRegisteredUser(t *testing.T) {
	svc, repo, folioRepo := newTestService(t, 2025)

	r := validReservation()
	r.UserID = 0

	_, err := svc.Create(context.Background(), r)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, "userId", appErr.Details["field"])

	assert.Equal(t, 0, repo.Count())
	assert.Equal(t, 0, folioRepo.Count())
}

func TestCreate_InsertFailureLeavesNoReservation(t *testing.T) {
	svc, repo, folioRepo := newTestService(t, 2025)
	repo.FailNextInsert = true

	_, err := svc.Create(context.Background(), validReservation())
	require.Error(t, err)
	assert.Equal(t, 0, repo.Count())

	// The minted folio stays committed and unreferenced; the sequence
	// continues from it on the next booking.
	assert.Equal(t, 1, folioRepo.Count())
	created, err := svc.Create(context.Background(), validReservation())
	require.NoError(t, err)
	assert.Equal(t, int64(225), created.Folio)
}

func TestFindByFolio_ReturnsReservationsWithDetails(t *testing.T) {
	svc, _, _ := newTestService(t, 2025)

	created, err := svc.Create(context.Background(), validReservation())
	require.NoError(t, err)

	details, err := svc.FindByFolio(context.Background(), created.Folio)
	require.NoError(t, err)
	assert.Equal(t, int64(1), details.Number)
	require.Len(t, details.Reservations, 1)

	got := details.Reservations[0]
	assert.Equal(t, created.Reservation.ID, got.ID)
	require.NotNil(t, got.Yacht)
	assert.Equal(t, "Sea Breeze", got.Yacht.Name)
}

func TestFindByFolio_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t, 2025)

	_, err := svc.FindByFolio(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFindByProduct_FiltersByTypeAndID(t *testing.T) {
	svc, _, _ := newTestService(t, 2025)

	_, err := svc.Create(context.Background(), validReservation())
	require.NoError(t, err)

	tourRes := validReservation()
	tourRes.Type = ProductTour
	tourRes.ProductID = 9
	_, err = svc.Create(context.Background(), tourRes)
	require.NoError(t, err)

	rows, err := svc.FindByProduct(context.Background(), 4, ProductYacht)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ProductYacht, rows[0].Type)

	_, err = svc.FindByProduct(context.Background(), 4, ProductType("boat"))
	require.Error(t, err)
}

func TestUpdate_PatchesFieldsAndStatus(t *testing.T) {
	svc, _, _ := newTestService(t, 2025)

	created, err := svc.Create(context.Background(), validReservation())
	require.NoError(t, err)

	status := StatusConfirmed
	qty := 5
	date := "2025-08-20"
	got, err := svc.Update(context.Background(), created.Reservation.ID, &Patch{
		Status:          &status,
		Quantity:        &qty,
		ReservationDate: &date,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC), got.ReservationDate)

	// Unchanged fields survive the patch.
	assert.Equal(t, "Ana", got.FirstName)
}

func TestUpdate_InvalidStatusRejected(t *testing.T) {
	svc, _, _ := newTestService(t, 2025)

	created, err := svc.Create(context.Background(), validReservation())
	require.NoError(t, err)

	bad := Status("done")
	_, err = svc.Update(context.Background(), created.Reservation.ID, &Patch{Status: &bad})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidStatus, appErr.Code)
}

func TestDelete_KeepsFolioRow(t *testing.T) {
	svc, repo, folioRepo := newTestService(t, 2025)

	created, err := svc.Create(context.Background(), validReservation())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.Reservation.ID))
	assert.Equal(t, 0, repo.Count())
	assert.Equal(t, 1, folioRepo.Count())

	assert.True(t, apperror.IsNotFound(svc.Delete(context.Background(), created.Reservation.ID)))
}
