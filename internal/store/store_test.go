package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zeirishi/takehome-calculator/internal/domain"
)

func testRecord(id string, amount int64) domain.SettlementRecord {
	return domain.SettlementRecord{
		ID:        id,
		CreatedAt: time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		Payment: domain.PaymentInput{
			Amount:         decimal.NewFromInt(amount),
			IncludesTax:    true,
			HasWithholding: true,
		},
		WithholdingAmount: decimal.NewFromInt(92818),
		DepositAmount:     decimal.NewFromInt(amount - 92818),
		EstimatedTakeHome: decimal.RequireFromString("650318.75"),
	}
}

// stores under test share one behavioural contract
func runStoreContract(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "alpha", []byte(`{"a":1}`)))
	got, err := s.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	// overwrite
	require.NoError(t, s.Put(ctx, "alpha", []byte(`{"a":2}`)))
	got, err = s.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), got)

	require.NoError(t, s.Delete(ctx, "alpha"))
	_, err = s.Get(ctx, "alpha")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, s.Delete(ctx, "alpha"))
}

func TestFileStoreContract(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer fs.Close()
	runStoreContract(t, fs)
}

func TestSQLiteStoreContract(t *testing.T) {
	s, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "takehome.db"))
	require.NoError(t, err)
	defer s.Close()
	runStoreContract(t, s)
}

func TestOpenWithFallback(t *testing.T) {
	s, err := OpenWithFallback(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	defer s.Close()
	runStoreContract(t, s)
}

func TestRecordStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	rs := NewRecordStore(fs)
	defer rs.Close()

	// empty history is nil, not an error
	records, err := rs.LoadRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	saved := []domain.SettlementRecord{testRecord("one", 1000000), testRecord("two", 550000)}
	require.NoError(t, rs.SaveRecords(ctx, saved))

	loaded, err := rs.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "one", loaded[0].ID)
	assert.True(t, saved[0].EstimatedTakeHome.Equal(loaded[0].EstimatedTakeHome))
	assert.True(t, loaded[1].Payment.IncludesTax)
}

func TestRecordStoreProfile(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	rs := NewRecordStore(fs)
	defer rs.Close()

	profile, err := rs.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)

	want := domain.DeductionProfile{
		FilingType:         domain.FilingBlue55,
		HasSpouseDeduction: true,
		DependentCount:     2,
		ExpenseRatePercent: 40,
		Region:             "osaka",
		BusinessCategory:   "consulting",
	}
	require.NoError(t, rs.SaveProfile(ctx, want))

	profile, err = rs.LoadProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, want, *profile)
}
