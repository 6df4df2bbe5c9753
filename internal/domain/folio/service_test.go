package folio

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nautica/internal/core/apperror"
	"nautica/internal/core/clock"
)

func fixedClock(year int) clock.Clock {
	return clock.Fixed{T: time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)}
}

func newTestService(repo Repository, clk clock.Clock) *Service {
	return NewService(repo, NoopTx{}, clk, 0)
}

func TestCompose(t *testing.T) {
	tests := []struct {
		number int64
		year   int
		want   int64
	}{
		{1, 2025, 125},
		{2, 2025, 225},
		{3, 2025, 325},
		{7, 2025, 725},
		{12, 2025, 1225},
		{13, 2025, 1325},
		{1, 2030, 130},
		{100, 2025, 10025},
		{1, 2100, 100}, // suffix "00"
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%d", tt.number, tt.year), func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.number, tt.year))
		})
	}
}

func TestGenerate_SequentialComposites(t *testing.T) {
	repo := NewMockRepository()
	svc := newTestService(repo, fixedClock(2025))
	ctx := context.Background()

	want := []int64{125, 225, 325}
	for i, expected := range want {
		issued, err := svc.Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, issued.Folio, "call %d", i+1)
	}

	f, err := repo.GetByNumber(context.Background(), 125)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.Number)
	assert.Equal(t, 2025, f.Year)
}

func TestGenerate_YearRollover(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	// Last folio of 2024.
	svc24 := newTestService(repo, fixedClock(2024))
	issued, err := svc24.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(124), issued.Folio)

	// First folio of 2025 starts its own sequence at 1.
	svc25 := newTestService(repo, fixedClock(2025))
	issued, err = svc25.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(125), issued.Folio)

	// 2024 sequence is unaffected by the rollover.
	issued, err = svc24.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(224), issued.Folio)
}

func TestGenerate_ConcurrentUniqueness(t *testing.T) {
	const n = 50

	repo := NewMockRepository()
	svc := newTestService(repo, fixedClock(2001))
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]int64, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			issued, err := svc.Generate(ctx)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = issued.Folio
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "call %d", i)
	}

	// All composites distinct, and the underlying numbers form 1..n.
	sort.Slice(results, func(i, j int) bool { return results[i] < results[j] })
	seen := make(map[int64]bool, n)
	for _, folio := range results {
		assert.False(t, seen[folio], "duplicate composite %d", folio)
		seen[folio] = true
	}

	numbers := make([]int64, 0, n)
	for _, f := range repo.All() {
		require.Equal(t, 2001, f.Year)
		numbers = append(numbers, f.Number)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	for i, num := range numbers {
		assert.Equal(t, int64(i+1), num, "sequence must be gap-free")
	}
	// Composite of sequence 1 in year '01 is 101, of 50 is 5001.
	assert.Equal(t, int64(101), results[0])
	assert.Equal(t, int64(5001), results[n-1])
}

func TestGenerate_RetriesTransientErrors(t *testing.T) {
	repo := NewMockRepository()
	repo.FailNextInsert = fmt.Errorf("%w: serialization failure", ErrTransient)

	svc := newTestService(repo, fixedClock(2025))
	issued, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(125), issued.Folio)
	assert.Equal(t, 1, repo.Count())
}

func TestGenerate_RetryBudgetExhausted(t *testing.T) {
	repo := NewMockRepository()
	repo.FailNextNumber = fmt.Errorf("%w: connection refused", ErrTransient)

	svc := newTestService(repo, fixedClock(2025))
	_, err := svc.Generate(context.Background())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeFolioExhausted, appErr.Code)
	assert.Equal(t, 0, repo.Count(), "no folio row may exist after failed allocation")
}

func TestGenerate_FatalErrorNotRetried(t *testing.T) {
	repo := NewMockRepository()
	fatal := errors.New("column does not exist")
	repo.FailNextNumber = fatal

	svc := newTestService(repo, fixedClock(2025))
	_, err := svc.Generate(context.Background())
	require.ErrorIs(t, err, fatal)
	assert.False(t, apperror.IsAppError(err))
}

func TestGetByNumber_IdempotentRead(t *testing.T) {
	repo := NewMockRepository()
	svc := newTestService(repo, fixedClock(2025))
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.Generate(ctx)
		require.NoError(t, err)
	}

	first, err := svc.GetByNumber(ctx, 725)
	require.NoError(t, err)
	second, err := svc.GetByNumber(ctx, 725)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(7), first.Number)
}

func TestGetByNumber_NotFound(t *testing.T) {
	repo := NewMockRepository()
	svc := newTestService(repo, fixedClock(2025))

	_, err := svc.GetByNumber(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
