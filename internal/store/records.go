package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zeirishi/takehome-calculator/internal/domain"
)

// Fixed keys for the logical record sets.
const (
	keySettlementRecords = "settlement_records"
	keyDeductionProfile  = "deduction_profile"
)

// RecordStore serializes settlement history and the deduction profile as
// JSON blobs on top of a raw Store.
type RecordStore struct {
	store Store
}

// NewRecordStore wraps a raw key-value store.
func NewRecordStore(s Store) *RecordStore {
	return &RecordStore{store: s}
}

// LoadRecords returns the persisted history, oldest first. A missing key is
// an empty history, not an error.
func (rs *RecordStore) LoadRecords(ctx context.Context) ([]domain.SettlementRecord, error) {
	data, err := rs.store.Get(ctx, keySettlementRecords)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []domain.SettlementRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode settlement records: %w", err)
	}
	return records, nil
}

// SaveRecords persists the full history blob.
func (rs *RecordStore) SaveRecords(ctx context.Context, records []domain.SettlementRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode settlement records: %w", err)
	}
	return rs.store.Put(ctx, keySettlementRecords, data)
}

// LoadProfile returns the persisted deduction profile, or nil when none has
// been saved yet.
func (rs *RecordStore) LoadProfile(ctx context.Context) (*domain.DeductionProfile, error) {
	data, err := rs.store.Get(ctx, keyDeductionProfile)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile domain.DeductionProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode deduction profile: %w", err)
	}
	return &profile, nil
}

// SaveProfile persists the deduction profile.
func (rs *RecordStore) SaveProfile(ctx context.Context, profile domain.DeductionProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode deduction profile: %w", err)
	}
	return rs.store.Put(ctx, keyDeductionProfile, data)
}

// Close closes the underlying store.
func (rs *RecordStore) Close() error { return rs.store.Close() }
