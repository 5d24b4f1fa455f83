package output

import (
	"encoding/json"

	"github.com/zeirishi/takehome-calculator/internal/domain"
)

// JSONFormatter serializes the settlement record as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(record *domain.SettlementRecord) ([]byte, error) {
	return json.MarshalIndent(record, "", "  ")
}
