package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tyre-dashboard-service/internal/inventory/core/domain"
	"tyre-dashboard-service/internal/inventory/core/engine"
	"tyre-dashboard-service/internal/inventory/core/ports"
)

var (
	ErrSnapshotNotReady = errors.New("inventory snapshot not loaded yet")
	ErrInvalidDimension = errors.New("invalid filter dimension")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("start_date is after end_date")
	ErrMissingValue     = errors.New("chart filter value is required")
)

// DefaultRefreshInterval matches how often the shop floor tables are rebuilt.
const DefaultRefreshInterval = 4 * time.Hour

const dateLayout = "2006-01-02"

var capturedDateLayouts = []string{dateLayout, "2006-01", "2006"}

// Snapshot is the last successfully fetched inventory.
type Snapshot struct {
	Records   []domain.Record
	Options   domain.FilterOptions
	FetchedAt time.Time
}

// DashboardUseCase keeps the last-known-good snapshot and derives dashboard
// views from it. A newer snapshot always replaces the older one; a failed
// fetch leaves it untouched.
type DashboardUseCase struct {
	source ports.InventorySourcePort
	now    func() time.Time

	mu   sync.RWMutex
	snap *Snapshot
}

func NewDashboardUseCase(source ports.InventorySourcePort) *DashboardUseCase {
	return &DashboardUseCase{source: source, now: time.Now}
}

// Refresh fetches records and filter options together and swaps them in.
func (uc *DashboardUseCase) Refresh(ctx context.Context) error {
	var (
		records []domain.Record
		options *domain.FilterOptions
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := uc.source.ListInventory(gctx)
		if err != nil {
			return fmt.Errorf("list inventory: %w", err)
		}
		records = r
		return nil
	})
	g.Go(func() error {
		o, err := uc.source.FilterOptions(gctx)
		if err != nil {
			return fmt.Errorf("filter options: %w", err)
		}
		options = o
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("inventory refresh failed, keeping previous snapshot: %v", err)
		return err
	}

	snap := &Snapshot{
		Records:   normalizeRecords(records),
		FetchedAt: uc.now(),
	}
	if options != nil {
		snap.Options = *options
	}
	snap.Options.QualityStatuses = normalizeStatuses(snap.Options.QualityStatuses)
	fillOptionLists(&snap.Options)

	uc.mu.Lock()
	uc.snap = snap
	uc.mu.Unlock()

	log.Printf("inventory snapshot refreshed: %d records", len(snap.Records))
	return nil
}

// Run refreshes immediately and then every interval until ctx is done.
func (uc *DashboardUseCase) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	_ = uc.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = uc.Refresh(ctx)
		}
	}
}

func (uc *DashboardUseCase) snapshot() (*Snapshot, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.snap == nil {
		return nil, ErrSnapshotNotReady
	}
	return uc.snap, nil
}

// View builds the whole dashboard for a filter state.
func (uc *DashboardUseCase) View(ctx context.Context, state domain.FilterState, page int) (*domain.DashboardView, error) {
	if err := ValidateState(state); err != nil {
		return nil, err
	}
	snap, err := uc.snapshot()
	if err != nil {
		return nil, err
	}

	v := engine.Build(snap.Records, state, page, snap.FetchedAt)
	return &v, nil
}

// Records returns one page of the filtered inventory table.
func (uc *DashboardUseCase) Records(ctx context.Context, state domain.FilterState, page int) (*domain.RecordPage, error) {
	if err := ValidateState(state); err != nil {
		return nil, err
	}
	snap, err := uc.snapshot()
	if err != nil {
		return nil, err
	}

	filtered := engine.ApplyFilters(snap.Records, state.Panel, state.Chart)
	p := engine.Paginate(filtered, page, engine.RecordsPerPage)
	return &p, nil
}

// Inventory returns the snapshot filtered by panel filters only.
func (uc *DashboardUseCase) Inventory(ctx context.Context, panel domain.PanelFilters) ([]domain.Record, error) {
	if err := ValidateState(domain.FilterState{Panel: panel}); err != nil {
		return nil, err
	}
	snap, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return engine.ApplyFilters(snap.Records, panel, nil), nil
}

func (uc *DashboardUseCase) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	snap, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	opts := snap.Options
	return &opts, nil
}

// ValidateState rejects filters the engine would silently ignore or could
// never match.
func ValidateState(state domain.FilterState) error {
	for dim, v := range state.Panel {
		if err := ValidatePanelFilter(dim, v); err != nil {
			return err
		}
	}
	for dim := range state.Chart {
		if !domain.IsChartDimension(dim) {
			return fmt.Errorf("%w: %q", ErrInvalidDimension, dim)
		}
	}

	start, end := state.Panel[domain.DimStartDate], state.Panel[domain.DimEndDate]
	if start != "" && end != "" && start > end {
		return ErrInvalidDateRange
	}
	return nil
}

// ValidatePanelFilter checks one panel control value.
func ValidatePanelFilter(dim, value string) error {
	if !domain.IsPanelDimension(dim) {
		return fmt.Errorf("%w: %q", ErrInvalidDimension, dim)
	}
	if value == "" {
		return nil
	}
	switch dim {
	case domain.DimCapturedDate:
		// Matched as a prefix, so a year or a month selects the whole period.
		for _, layout := range capturedDateLayouts {
			if _, err := time.Parse(layout, value); err == nil {
				return nil
			}
		}
		return fmt.Errorf("%w: %s=%q", ErrInvalidDate, dim, value)
	case domain.DimStartDate, domain.DimEndDate:
		if _, err := time.Parse(dateLayout, value); err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidDate, dim, value)
		}
	}
	return nil
}

func normalizeRecords(records []domain.Record) []domain.Record {
	out := make([]domain.Record, len(records))
	for i, r := range records {
		r.QualityStatus = domain.NormalizeQualityStatus(r.QualityStatus)
		out[i] = r
	}
	return out
}

// fillOptionLists gives every list the upstream left out an empty value.
func fillOptionLists(o *domain.FilterOptions) {
	for _, list := range []*[]string{
		&o.CapturedDates,
		&o.ItemTypes,
		&o.ItemCodes,
		&o.MachineNames,
		&o.MachineIDs,
		&o.UOMs,
		&o.QualityStatuses,
		&o.MHENos,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
}

func normalizeStatuses(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = domain.NormalizeQualityStatus(s)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ChangeFilter is the onFilterChange transition of a filter state.
func ChangeFilter(state domain.FilterState, dim, value string) (domain.FilterState, error) {
	if err := ValidatePanelFilter(dim, value); err != nil {
		return state, err
	}
	next := domain.FilterState{
		Panel: engine.SetPanelFilter(state.Panel, dim, value),
		Chart: state.Chart.Clone(),
	}
	if err := ValidateState(next); err != nil {
		return state, err
	}
	return next, nil
}

// ClickChart is the onChartClick transition of a filter state.
func ClickChart(state domain.FilterState, dim, value string) (domain.FilterState, error) {
	if !domain.IsChartDimension(dim) {
		return state, fmt.Errorf("%w: %q", ErrInvalidDimension, dim)
	}
	if value == "" {
		return state, ErrMissingValue
	}
	return domain.FilterState{
		Panel: state.Panel.Clone(),
		Chart: engine.ToggleChartFilter(state.Chart, dim, value),
	}, nil
}
