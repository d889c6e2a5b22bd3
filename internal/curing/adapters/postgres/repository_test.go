package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"tyre-dashboard-service/internal/curing/core/domain"
	"tyre-dashboard-service/internal/curing/core/ports"
	pg "tyre-dashboard-service/internal/platform/postgres"
)

// fakeRowScanner implements pg.RowScanner through each destination's
// sql.Scanner.
type fakeRowScanner struct {
	rows [][]any
	i    int
	err  error
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		s, ok := dest[i].(sql.Scanner)
		if !ok {
			return errors.New("unsupported dest type")
		}
		if err := s.Scan(row[i]); err != nil {
			return err
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

type fakeQuery struct {
	query string
	args  []any
}

// fakeDB answers each query from the first rows entry whose key the query
// mentions.
type fakeDB struct {
	rows    map[string][][]any
	err     error
	queries []fakeQuery
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (pg.RowScanner, error) {
	f.queries = append(f.queries, fakeQuery{query: query, args: args})
	if f.err != nil {
		return nil, f.err
	}
	for table, rows := range f.rows {
		if strings.Contains(query, table) {
			return &fakeRowScanner{rows: rows}, nil
		}
	}
	return &fakeRowScanner{}, nil
}

func (f *fakeDB) find(t *testing.T, table string) fakeQuery {
	t.Helper()
	for _, q := range f.queries {
		if strings.Contains(q.query, table) {
			return q
		}
	}
	t.Fatalf("no query against %s", table)
	return fakeQuery{}
}

func januaryFilter() ports.CuringFilter {
	return ports.CuringFilter{
		From:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		RecipeID: "R1",
	}
}

// ------------------------------------------------------------
// SUMMARY
// ------------------------------------------------------------

func TestCuringRepository_QuerySummary(t *testing.T) {
	db := &fakeDB{rows: map[string][][]any{
		"curing_prod_agg_year_month_day_hour": {{"1500.5"}},
		"curing_pcr_visual_event_level":       {{int64(200), int64(10), int64(4)}},
		"curing_ncm_hold_with_reason":         {{int64(3)}},
		"curing_cycle_times_all":              {{"18.25"}},
		"curing_changeover_real":              {{nil, int64(5)}},
	}}

	res, err := NewCuringRepository(db).QuerySummary(context.Background(), januaryFilter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TotalProduction.String() != "1500.5" {
		t.Fatalf("unexpected production %s", res.TotalProduction)
	}
	if res.Inspected != 200 || res.Scrapped != 10 || res.Reworked != 4 || res.NCMHold != 3 {
		t.Fatalf("unexpected counts %+v", res)
	}
	if res.AvgCycleTime.String() != "18.25" {
		t.Fatalf("unexpected cycle time %s", res.AvgCycleTime)
	}
	if !res.AvgChangeoverTime.IsZero() || res.TotalChangeover != 5 {
		t.Fatalf("null average must read as zero, got %+v", res)
	}
	if len(db.queries) != 5 {
		t.Fatalf("expected 5 queries, got %d", len(db.queries))
	}

	prod := db.find(t, "curing_prod_agg_year_month_day_hour")
	if !strings.Contains(prod.query, "date_time >= $1 AND date_time < $2 AND recipe_id = $3") {
		t.Fatalf("unexpected production query: %s", prod.query)
	}
	if end, ok := prod.args[1].(time.Time); !ok || !end.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end day must be included, got %v", prod.args[1])
	}

	cycle := db.find(t, "curing_cycle_times_all")
	if !strings.Contains(cycle.query, "cycle_time_minutes <= 40.1") {
		t.Fatalf("expected cycle cap, got: %s", cycle.query)
	}

	change := db.find(t, "curing_changeover_real")
	if strings.Contains(change.query, "recipe_id") || len(change.args) != 2 {
		t.Fatalf("changeovers are not filtered by recipe: %s %v", change.query, change.args)
	}
}

func TestCuringRepository_QuerySummary_VisualFilters(t *testing.T) {
	db := &fakeDB{}

	_, err := NewCuringRepository(db).QuerySummary(context.Background(), ports.CuringFilter{
		Status:     "Scrap",
		DefectArea: "Bead",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	visual := db.find(t, "curing_pcr_visual_event_level")
	if !strings.Contains(visual.query, "WHERE status_name = $1 AND defect_area_name = $2") {
		t.Fatalf("unexpected visual query: %s", visual.query)
	}

	prod := db.find(t, "curing_prod_agg_year_month_day_hour")
	if strings.Contains(prod.query, "WHERE") || len(prod.args) != 0 {
		t.Fatalf("production takes no visual filters: %s", prod.query)
	}
}

func TestCuringRepository_QuerySummary_Error(t *testing.T) {
	db := &fakeDB{err: errors.New("connection refused")}

	if _, err := NewCuringRepository(db).QuerySummary(context.Background(), ports.CuringFilter{}); err == nil {
		t.Fatalf("expected error")
	}
}

// ------------------------------------------------------------
// PRODUCTION
// ------------------------------------------------------------

func TestCuringRepository_QueryProduction_ByRecipe(t *testing.T) {
	db := &fakeDB{rows: map[string][][]any{
		"curing_prod_agg_year_month_day_hour": {
			{"R1", "900"},
			{nil, "12.5"},
		},
	}}

	groups, err := NewCuringRepository(db).QueryProduction(context.Background(), januaryFilter(), domain.GroupByRecipe, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(groups) != 2 || groups[0].Key != "R1" || groups[1].Key != "Unknown" {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if groups[1].Total.String() != "12.5" {
		t.Fatalf("unexpected total %s", groups[1].Total)
	}

	q := db.queries[0]
	if !strings.Contains(q.query, "GROUP BY recipe_id") || !strings.Contains(q.query, "LIMIT $4") {
		t.Fatalf("unexpected query: %s", q.query)
	}
	if q.args[3] != 15 {
		t.Fatalf("expected limit arg 15, got %v", q.args[3])
	}
}

func TestCuringRepository_QueryProduction_ByPress(t *testing.T) {
	db := &fakeDB{}

	groups, err := NewCuringRepository(db).QueryProduction(context.Background(), ports.CuringFilter{}, domain.GroupByPress, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if groups == nil || len(groups) != 0 {
		t.Fatalf("expected empty, non-nil groups")
	}

	q := db.queries[0]
	if !strings.Contains(q.query, "GROUP BY wc_id") || strings.Contains(q.query, "LIMIT") {
		t.Fatalf("unexpected query: %s", q.query)
	}
}

func TestCuringRepository_QueryProduction_UnknownGroup(t *testing.T) {
	db := &fakeDB{}

	if _, err := NewCuringRepository(db).QueryProduction(context.Background(), ports.CuringFilter{}, "shift", 0); err == nil {
		t.Fatalf("expected error")
	}
	if len(db.queries) != 0 {
		t.Fatalf("no query expected")
	}
}

func TestCuringRepository_QueryProduction_RowsError(t *testing.T) {
	boom := errors.New("rows error")

	repo := NewCuringRepository(&errRowsDB{err: boom})
	if _, err := repo.QueryProduction(context.Background(), ports.CuringFilter{}, domain.GroupByPress, 0); !errors.Is(err, boom) {
		t.Fatalf("expected rows error, got %v", err)
	}
}

type errRowsDB struct {
	err error
}

func (d *errRowsDB) QueryContext(ctx context.Context, query string, args ...any) (pg.RowScanner, error) {
	return &fakeRowScanner{err: d.err}, nil
}
