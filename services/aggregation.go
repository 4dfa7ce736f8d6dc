package services

import (
	"context"

	"github.com/feetrack/api/database"
	"github.com/feetrack/api/model"
)

// CommitteeTotal is the aggregate for one committee name: the defensive
// sum of the legacy amount column and the number of matching rows.
type CommitteeTotal struct {
	Committee   string  `json:"committee"`
	TotalAmount float64 `json:"total_amount"`
	Count       int64   `json:"count"`
}

// CategoryTotals carries the five per-category sums and the count of rows
// that contributed to each. A row contributes to a category only when its
// value parses as a number; NULL and junk are excluded from both.
type CategoryTotals struct {
	Totals map[string]float64 `json:"totals"`
	Counts map[string]int64   `json:"counts"`
}

// AggregationService recomputes totals with a full scan on every request.
// At this system's scale that is deliberate: no cached or maintained
// aggregate exists to drift out of sync.
type AggregationService struct {
	store database.Storage
}

// NewAggregationService creates a new aggregation service
func NewAggregationService(store database.Storage) *AggregationService {
	return &AggregationService{store: store}
}

// CommitteeTotal sums the legacy amount over rows filed under the given
// committee name. Matching is case-sensitive.
func (s *AggregationService) CommitteeTotal(ctx context.Context, committee string) (CommitteeTotal, error) {
	rows, err := s.store.AmountRowsByCommittee(ctx, committee)
	if err != nil {
		return CommitteeTotal{}, err
	}
	return SumCommittee(committee, rows), nil
}

// CategoryTotals scans every payment row and sums the five category
// columns independently.
func (s *AggregationService) CategoryTotals(ctx context.Context) (CategoryTotals, error) {
	rows, err := s.store.AmountRows(ctx)
	if err != nil {
		return CategoryTotals{}, err
	}
	return SumCategories(rows), nil
}

// SumCommittee folds amount rows into a committee total. Rows whose
// amount does not parse are skipped from the sum but still counted: the
// count answers "how many payments", not "how many clean values".
func SumCommittee(committee string, rows []database.AmountRow) CommitteeTotal {
	total := CommitteeTotal{Committee: committee}
	for _, row := range rows {
		total.Count++
		if v, ok := model.ParseAmount(row.Amount); ok {
			total.TotalAmount += v
		}
	}
	return total
}

// SumCategories folds amount rows into per-category totals. Unparseable
// and NULL values are silently excluded from both sum and count; that is
// the defined policy for legacy data, not an error path.
func SumCategories(rows []database.AmountRow) CategoryTotals {
	out := CategoryTotals{
		Totals: make(map[string]float64, len(model.CommitteeNames)),
		Counts: make(map[string]int64, len(model.CommitteeNames)),
	}
	for _, name := range model.CommitteeNames {
		out.Totals[name] = 0
		out.Counts[name] = 0
	}

	for _, row := range rows {
		for _, name := range model.CommitteeNames {
			if v, ok := model.ParseAmount(row.Category(name)); ok {
				out.Totals[name] += v
				out.Counts[name]++
			}
		}
	}
	return out
}
