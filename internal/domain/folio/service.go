package folio

import (
	"context"
	"errors"
	"time"

	"nautica/internal/core/apperror"
	"nautica/internal/core/clock"
	"nautica/internal/core/tx"
	"nautica/pkg/logger"
)

// DefaultRetries is the default retry budget for transient allocation failures.
const DefaultRetries = 3

// retryBackoff is the base delay between allocation retries; attempt n
// waits n times this long.
const retryBackoff = 25 * time.Millisecond

// Service issues folios. It holds no sequence state in memory; the counter
// lives in the store so multiple server instances stay consistent.
type Service struct {
	repo      Repository
	txManager tx.Manager
	clock     clock.Clock
	retries   int
}

// NewService creates the folio service. A nil clock defaults to the system
// clock; retries <= 0 defaults to DefaultRetries.
func NewService(repo Repository, txManager tx.Manager, clk clock.Clock, retries int) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	if retries <= 0 {
		retries = DefaultRetries
	}
	return &Service{
		repo:      repo,
		txManager: txManager,
		clock:     clk,
		retries:   retries,
	}
}

// Generate allocates the next folio for the current year and persists it.
// The counter bump and the row insert run in one transaction, so a failure
// at any point leaves no half-committed state and burns no number.
//
// Transient store errors are retried with backoff up to the configured
// budget; after that the caller gets a FOLIO_ALLOCATION_FAILED error.
func (s *Service) Generate(ctx context.Context) (*Issued, error) {
	year := s.clock.Now().Year()

	var issued *Issued
	var lastErr error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			logger.Warn(ctx, "folio allocation retry",
				"attempt", attempt,
				"year", year,
				"error", lastErr)
			select {
			case <-time.After(time.Duration(attempt) * retryBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		issued, lastErr = s.allocate(ctx, year)
		if lastErr == nil {
			return issued, nil
		}
		if !errors.Is(lastErr, ErrTransient) {
			return nil, lastErr
		}
	}

	return nil, apperror.NewFolioExhausted(year, lastErr)
}

// allocate runs one increment-and-insert cycle inside a transaction.
func (s *Service) allocate(ctx context.Context, year int) (*Issued, error) {
	f := &Folio{Year: year}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		number, err := s.repo.NextNumber(ctx, year)
		if err != nil {
			return err
		}

		f.Number = number
		f.Folio = Compose(number, year)

		return s.repo.Insert(ctx, f)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "folio issued",
		"id", f.ID,
		"year", f.Year,
		"number", f.Number,
		"folio", f.Folio)

	return &Issued{ID: f.ID, Folio: f.Folio}, nil
}

// GetByNumber returns the folio with the given composite public number.
func (s *Service) GetByNumber(ctx context.Context, composite int64) (*Folio, error) {
	return s.repo.GetByNumber(ctx, composite)
}

// GetByID returns the folio with the given internal id.
func (s *Service) GetByID(ctx context.Context, id int64) (*Folio, error) {
	return s.repo.GetByID(ctx, id)
}
