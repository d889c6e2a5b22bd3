package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tyre-dashboard-service/internal/curing/core/domain"
	"tyre-dashboard-service/internal/curing/core/ports"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("start_date and end_date must be given together, start first")
	ErrInvalidGroupBy   = errors.New("invalid group_by value")
)

// TopRecipes caps the recipe production chart.
const TopRecipes = 15

const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

type CuringInput struct {
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
	RecipeID   string
	Status     string
	DefectArea string
}

type CuringUseCase struct {
	reader ports.CuringReaderPort
}

func NewCuringUseCase(reader ports.CuringReaderPort) *CuringUseCase {
	return &CuringUseCase{reader: reader}
}

// Summary returns the curing KPIs, every figure rounded to two decimals.
func (uc *CuringUseCase) Summary(ctx context.Context, in CuringInput) (*domain.Summary, error) {
	f, err := toFilter(in)
	if err != nil {
		return nil, err
	}

	counts, err := uc.reader.QuerySummary(ctx, f)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		TotalProduction:   round(counts.TotalProduction),
		ScrapRate:         rate(counts.Scrapped, counts.Inspected),
		ReworkRate:        rate(counts.Reworked, counts.Inspected),
		NCMHold:           counts.NCMHold,
		AvgCycleTime:      round(counts.AvgCycleTime),
		AvgChangeoverTime: round(counts.AvgChangeoverTime),
		TotalChangeover:   counts.TotalChangeover,
	}, nil
}

// Production sums production per press or per recipe. Recipes are limited to
// the TopRecipes largest.
func (uc *CuringUseCase) Production(ctx context.Context, in CuringInput, groupBy string) (*domain.Production, error) {
	limit := 0
	switch groupBy {
	case domain.GroupByPress:
	case domain.GroupByRecipe:
		limit = TopRecipes
	default:
		return nil, ErrInvalidGroupBy
	}

	f, err := toFilter(in)
	if err != nil {
		return nil, err
	}
	// status and defect area only exist on the inspection table
	f.Status, f.DefectArea = "", ""

	groups, err := uc.reader.QueryProduction(ctx, f, groupBy, limit)
	if err != nil {
		return nil, err
	}

	out := &domain.Production{
		GroupBy: groupBy,
		Groups:  make([]domain.ProductionGroup, 0, len(groups)),
	}
	for _, g := range groups {
		out.Groups = append(out.Groups, domain.ProductionGroup{
			Key:   g.Key,
			Total: g.Total.Round(2),
		})
	}
	return out, nil
}

func toFilter(in CuringInput) (ports.CuringFilter, error) {
	f := ports.CuringFilter{
		RecipeID:   in.RecipeID,
		Status:     in.Status,
		DefectArea: in.DefectArea,
	}

	if in.StartDate == "" && in.EndDate == "" {
		return f, nil
	}
	if in.StartDate == "" || in.EndDate == "" {
		return f, ErrInvalidDateRange
	}

	from, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return f, fmt.Errorf("%w: start_date=%q", ErrInvalidDate, in.StartDate)
	}
	to, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return f, fmt.Errorf("%w: end_date=%q", ErrInvalidDate, in.EndDate)
	}
	if from.After(to) {
		return f, ErrInvalidDateRange
	}

	f.From, f.To = from, to
	return f, nil
}

func rate(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return round(decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(total)))
}

func round(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
