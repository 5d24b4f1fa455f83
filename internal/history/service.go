package history

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/zeirishi/takehome-calculator/internal/domain"
	"github.com/zeirishi/takehome-calculator/internal/store"
)

// Service manages the persisted settlement history: append, removal, and
// cached month/year summaries. The history is append-only; removal happens
// only through the explicit Remove path.
type Service struct {
	records *store.RecordStore
	cache   *cache.Cache
	logger  *zap.Logger
}

// NewService wraps a record store.
func NewService(records *store.RecordStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		records: records,
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		logger:  logger,
	}
}

// Records returns the full persisted history, oldest first.
func (s *Service) Records(ctx context.Context) ([]domain.SettlementRecord, error) {
	return s.records.LoadRecords(ctx)
}

// Append persists a new settlement record at the end of the history.
func (s *Service) Append(ctx context.Context, record domain.SettlementRecord) error {
	records, err := s.records.LoadRecords(ctx)
	if err != nil {
		return err
	}
	records = append(records, record)
	if err := s.records.SaveRecords(ctx, records); err != nil {
		return err
	}
	s.cache.Flush()
	s.logger.Debug("appended settlement record", zap.String("id", record.ID), zap.Int("history_len", len(records)))
	return nil
}

// Remove deletes one record by ID. Removing an unknown ID is an error so the
// caller can surface a typo to the user.
func (s *Service) Remove(ctx context.Context, id string) error {
	records, err := s.records.LoadRecords(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, r := range records {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return fmt.Errorf("no settlement record with id %s", id)
	}

	if err := s.records.SaveRecords(ctx, kept); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}

// Monthly returns the per-month summaries, memoized per history state.
func (s *Service) Monthly(ctx context.Context) ([]MonthlySummary, error) {
	records, err := s.records.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	key := summaryCacheKey("monthly", records)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]MonthlySummary), nil
	}

	summaries := MonthlySummaries(records)
	s.cache.Set(key, summaries, cache.DefaultExpiration)
	return summaries, nil
}

// Yearly returns the per-year summaries, memoized per history state.
func (s *Service) Yearly(ctx context.Context) ([]YearlySummary, error) {
	records, err := s.records.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	key := summaryCacheKey("yearly", records)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]YearlySummary), nil
	}

	summaries := YearlySummaries(records)
	s.cache.Set(key, summaries, cache.DefaultExpiration)
	return summaries, nil
}

// summaryCacheKey identifies a history state by its length and tail record,
// enough because the history only grows or is explicitly rewritten (and both
// paths flush the cache anyway).
func summaryCacheKey(kind string, records []domain.SettlementRecord) string {
	if len(records) == 0 {
		return kind + ":empty"
	}
	return fmt.Sprintf("%s:%d:%s", kind, len(records), records[len(records)-1].ID)
}
