package domain

import "time"

// Bucket is one group of an aggregation.
type Bucket struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// DateSeries is the date-wise chart: one label per day, one stacked series
// per UOM.
type DateSeries struct {
	Labels []string             `json:"labels"`
	UOMs   []string             `json:"uoms"`
	Series map[string][]float64 `json:"series"`
}

// ItemCodeTotal is one bar of the item code chart.
type ItemCodeTotal struct {
	Code  string             `json:"code"`
	Total float64            `json:"total"`
	UOMs  map[string]float64 `json:"uoms"`
}

// MHERow is one row of the MHE count tables. Key is the item type or the
// item code depending on the table.
type MHERow struct {
	Key       string  `json:"key"`
	UOM       string  `json:"uom"`
	MHECount  int     `json:"mhe_count"`
	Inventory float64 `json:"inventory"`
}

// RecordPage is a page of the final inventory table.
type RecordPage struct {
	Records    []Record `json:"records"`
	Page       int      `json:"page"`
	PerPage    int      `json:"per_page"`
	TotalPages int      `json:"total_pages"`
	Total      int      `json:"total"`
	Start      int      `json:"start"`
	End        int      `json:"end"`
}

// DashboardView is everything the inventory dashboard renders for one
// filter state.
type DashboardView struct {
	TotalRecords      int             `json:"total_records"`
	UOMInventory      []Bucket        `json:"uom_inventory"`
	QualityStatus     []Bucket        `json:"quality_status_inventory"`
	MachineInventory  []Bucket        `json:"machine_inventory"`
	DateInventory     DateSeries      `json:"date_inventory"`
	TopItemCodes      []ItemCodeTotal `json:"top_item_codes"`
	MHEByItemType     []MHERow        `json:"mhe_by_item_type"`
	MHEByItemCode     []MHERow        `json:"mhe_by_item_code"`
	Records           RecordPage      `json:"records"`
	Filters           FilterState     `json:"filters"`
	HasActiveFilters  bool            `json:"has_active_filters"`
	SnapshotFetchedAt time.Time       `json:"snapshot_fetched_at"`
}
