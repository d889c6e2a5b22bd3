package ports

import (
	"context"
	"time"

	"tyre-dashboard-service/internal/curing/core/domain"
)

type CuringFilter struct {
	// From and To bound the day range, both inclusive. Zero means no range.
	From time.Time
	To   time.Time

	RecipeID   string
	Status     string // visual inspection status, summary only
	DefectArea string // summary only
}

func (f CuringFilter) HasRange() bool {
	return !f.From.IsZero() && !f.To.IsZero()
}

type CuringReaderPort interface {
	QuerySummary(ctx context.Context, f CuringFilter) (*domain.SummaryCounts, error)
	// QueryProduction sums production per group, largest first. limit <= 0
	// returns every group.
	QueryProduction(ctx context.Context, f CuringFilter, groupBy string, limit int) ([]domain.ProductionGroup, error)
}
