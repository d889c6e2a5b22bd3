package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"tyre-dashboard-service/internal/curing/core/domain"
	"tyre-dashboard-service/internal/curing/core/ports"
	pg "tyre-dashboard-service/internal/platform/postgres"
)

// Cycles and gaps above these are press stoppages, not curing time.
const (
	maxCycleMinutes      = 40.1
	maxChangeoverMinutes = 60
)

var groupColumns = map[string]string{
	domain.GroupByPress:  "wc_id",
	domain.GroupByRecipe: "recipe_id",
}

type CuringRepository struct {
	db pg.DB
}

func NewCuringRepository(db pg.DB) *CuringRepository {
	return &CuringRepository{db: db}
}

var _ ports.CuringReaderPort = (*CuringRepository)(nil)

// where collects AND-ed conditions with numbered placeholders.
type where struct {
	conds []string
	args  []any
}

// add appends a condition; expr carries one %d for the placeholder index.
func (w *where) add(expr string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(expr, len(w.args)))
}

// addRange bounds column to the filter's days, end day included.
func (w *where) addRange(column string, f ports.CuringFilter) {
	if !f.HasRange() {
		return
	}
	w.add(column+" >= $%d", f.From)
	w.add(column+" < $%d", f.To.AddDate(0, 0, 1))
}

func (w *where) addIf(expr, arg string) {
	if arg != "" {
		w.add(expr, arg)
	}
}

func (w *where) sql(extra ...string) string {
	conds := append(append([]string{}, w.conds...), extra...)
	if len(conds) == 0 {
		return ""
	}
	return "\nWHERE " + strings.Join(conds, " AND ")
}

func productionWhere(f ports.CuringFilter) *where {
	w := &where{}
	w.addRange("date_time", f)
	w.addIf("recipe_id = $%d", f.RecipeID)
	return w
}

func (r *CuringRepository) QuerySummary(ctx context.Context, f ports.CuringFilter) (*domain.SummaryCounts, error) {
	var res domain.SummaryCounts

	prod := productionWhere(f)
	if err := r.scanOne(ctx, `
SELECT COALESCE(SUM(production), 0)
FROM curing_prod_agg_year_month_day_hour`+prod.sql(), prod.args, &res.TotalProduction); err != nil {
		return nil, fmt.Errorf("total production: %w", err)
	}

	visual := &where{}
	visual.addRange("date_time", f)
	visual.addIf("tbm_recipe_id = $%d", f.RecipeID)
	visual.addIf("status_name = $%d", f.Status)
	visual.addIf("defect_area_name = $%d", f.DefectArea)

	var inspected, scrapped, reworked sql.NullInt64
	if err := r.scanOne(ctx, `
SELECT
    COUNT(DISTINCT gt_barcode),
    COUNT(DISTINCT CASE WHEN LOWER(status_name) = 'scrap' THEN gt_barcode END),
    COUNT(DISTINCT CASE WHEN LOWER(status_name) = 'rework' THEN gt_barcode END)
FROM curing_pcr_visual_event_level`+visual.sql(), visual.args, &inspected, &scrapped, &reworked); err != nil {
		return nil, fmt.Errorf("visual inspection: %w", err)
	}
	res.Inspected, res.Scrapped, res.Reworked = inspected.Int64, scrapped.Int64, reworked.Int64

	ncm := &where{}
	ncm.addRange("hold_dt", f)
	ncm.addIf("recipe = $%d", f.RecipeID)

	var hold sql.NullInt64
	if err := r.scanOne(ctx, `
SELECT COUNT(DISTINCT barcode)
FROM curing_ncm_hold_with_reason`+ncm.sql(), ncm.args, &hold); err != nil {
		return nil, fmt.Errorf("ncm hold: %w", err)
	}
	res.NCMHold = hold.Int64

	cycle := &where{}
	cycle.addRange("previous_cycle_time", f)
	cycle.addIf("recipe_id = $%d", f.RecipeID)

	var avgCycle decimal.NullDecimal
	if err := r.scanOne(ctx, `
SELECT AVG(cycle_time_minutes)
FROM curing_cycle_times_all`+cycle.sql(fmt.Sprintf("cycle_time_minutes <= %v", maxCycleMinutes)), cycle.args, &avgCycle); err != nil {
		return nil, fmt.Errorf("cycle time: %w", err)
	}
	res.AvgCycleTime = avgCycle.Decimal

	change := &where{}
	change.addRange("previous_cycle_time", f)

	var avgGap decimal.NullDecimal
	var changeovers sql.NullInt64
	if err := r.scanOne(ctx, fmt.Sprintf(`
SELECT
    AVG(gap_minutes) FILTER (WHERE gap_minutes <= %d),
    COUNT(*) FILTER (WHERE recipe_changed = 1)
FROM curing_changeover_real`, maxChangeoverMinutes)+change.sql(), change.args, &avgGap, &changeovers); err != nil {
		return nil, fmt.Errorf("changeover: %w", err)
	}
	res.AvgChangeoverTime = avgGap.Decimal
	res.TotalChangeover = changeovers.Int64

	return &res, nil
}

func (r *CuringRepository) QueryProduction(
	ctx context.Context,
	f ports.CuringFilter,
	groupBy string,
	limit int,
) ([]domain.ProductionGroup, error) {
	column, ok := groupColumns[groupBy]
	if !ok {
		return nil, fmt.Errorf("unsupported group_by: %s", groupBy)
	}

	w := productionWhere(f)
	query := fmt.Sprintf(`
SELECT %[1]s::text AS key, COALESCE(SUM(production), 0) AS total_production
FROM curing_prod_agg_year_month_day_hour%[2]s
GROUP BY %[1]s
ORDER BY total_production DESC, key`, column, w.sql())

	args := w.args
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf("\nLIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]domain.ProductionGroup, 0)
	for rows.Next() {
		var key sql.NullString
		var total decimal.Decimal
		if err := rows.Scan(&key, &total); err != nil {
			return nil, err
		}
		if !key.Valid || key.String == "" {
			key.String = "Unknown"
		}
		groups = append(groups, domain.ProductionGroup{Key: key.String, Total: total})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

// scanOne reads the single row of an aggregate query.
func (r *CuringRepository) scanOne(ctx context.Context, query string, args []any, dest ...any) error {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return err
		}
	}
	return rows.Err()
}
