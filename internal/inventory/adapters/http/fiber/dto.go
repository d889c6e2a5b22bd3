package fiber

import (
	"time"

	"tyre-dashboard-service/internal/inventory/core/domain"
)

type FilterChangeRequest struct {
	Dimension string `json:"dimension" example:"item_code"`
	Value     string `json:"value" example:"TB-1020"`
}

// RecordRow is a table row: missing text shows as "N/A".
type RecordRow struct {
	ID               string  `json:"id"`
	CapturedDate     string  `json:"captured_date"`
	ItemType         string  `json:"item_type"`
	ItemCode         string  `json:"item_code"`
	MachineName      string  `json:"machine_name"`
	MachineID        string  `json:"machine_id"`
	Section          string  `json:"section"`
	Shift            string  `json:"shift"`
	LotNo            string  `json:"lot_no"`
	MHENo            string  `json:"mhe_no"`
	BookedQuantity   float64 `json:"booked_quantity"`
	CurrentQuantity  float64 `json:"current_quantity"`
	UOM              string  `json:"uom"`
	QualityStatus    string  `json:"quality_status"`
	DateOfProduction string  `json:"date_of_production"`
	TimeOfProduction string  `json:"time_of_production"`
	UseAfter         string  `json:"use_after"`
	UseBefore        string  `json:"use_before"`
}

type RecordPageResponse struct {
	Records    []RecordRow `json:"records"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
	Total      int         `json:"total"`
	Start      int         `json:"start"`
	End        int         `json:"end"`
}

type DashboardResponse struct {
	TotalRecords      int                    `json:"total_records"`
	UOMInventory      []domain.Bucket        `json:"uom_inventory"`
	QualityStatus     []domain.Bucket        `json:"quality_status_inventory"`
	MachineInventory  []domain.Bucket        `json:"machine_inventory"`
	DateInventory     domain.DateSeries      `json:"date_inventory"`
	TopItemCodes      []domain.ItemCodeTotal `json:"top_item_codes"`
	MHEByItemType     []domain.MHERow        `json:"mhe_by_item_type"`
	MHEByItemCode     []domain.MHERow        `json:"mhe_by_item_code"`
	Records           RecordPageResponse     `json:"records"`
	Filters           FilterStateResponse    `json:"filters"`
	HasActiveFilters  bool                   `json:"has_active_filters"`
	SnapshotFetchedAt time.Time              `json:"snapshot_fetched_at"`
}

type FilterStateResponse struct {
	Panel            map[string]string `json:"panel"`
	Chart            map[string]string `json:"chart"`
	HasActiveFilters bool              `json:"has_active_filters"`
}

type RefreshResponse struct {
	Status string `json:"status" example:"refreshed"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_filter"`
	Message string `json:"message" example:"invalid filter dimension: \"colour\""`
}

func toRecordRow(r domain.Record) RecordRow {
	return RecordRow{
		ID:               r.ID,
		CapturedDate:     domain.Display(r.CaptureDate()),
		ItemType:         domain.Display(r.ItemType),
		ItemCode:         domain.Display(r.ItemCode),
		MachineName:      domain.Display(r.MachineName),
		MachineID:        domain.Display(r.MachineID),
		Section:          domain.Display(r.Section),
		Shift:            domain.Display(r.Shift),
		LotNo:            domain.Display(r.LotNo),
		MHENo:            domain.Display(r.MHENo),
		BookedQuantity:   r.BookedQuantity.Float(),
		CurrentQuantity:  r.CurrentQuantity.Float(),
		UOM:              domain.Display(r.UOM),
		QualityStatus:    domain.Display(r.QualityStatus),
		DateOfProduction: domain.Display(r.DateOfProduction),
		TimeOfProduction: domain.Display(r.TimeOfProduction),
		UseAfter:         domain.Display(r.UseAfter),
		UseBefore:        domain.Display(r.UseBefore),
	}
}

func toRecordPage(p domain.RecordPage) RecordPageResponse {
	rows := make([]RecordRow, 0, len(p.Records))
	for _, r := range p.Records {
		rows = append(rows, toRecordRow(r))
	}
	return RecordPageResponse{
		Records:    rows,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
		Total:      p.Total,
		Start:      p.Start,
		End:        p.End,
	}
}

func toFilterState(s domain.FilterState) FilterStateResponse {
	out := FilterStateResponse{
		Panel:            map[string]string{},
		Chart:            map[string]string{},
		HasActiveFilters: s.HasActiveFilters(),
	}
	for k, v := range s.Panel {
		if v != "" {
			out.Panel[k] = v
		}
	}
	for k, v := range s.Chart {
		out.Chart[k] = v
	}
	return out
}

func toDashboard(v *domain.DashboardView) DashboardResponse {
	return DashboardResponse{
		TotalRecords:      v.TotalRecords,
		UOMInventory:      v.UOMInventory,
		QualityStatus:     v.QualityStatus,
		MachineInventory:  v.MachineInventory,
		DateInventory:     v.DateInventory,
		TopItemCodes:      v.TopItemCodes,
		MHEByItemType:     v.MHEByItemType,
		MHEByItemCode:     v.MHEByItemCode,
		Records:           toRecordPage(v.Records),
		Filters:           toFilterState(v.Filters),
		HasActiveFilters:  v.HasActiveFilters,
		SnapshotFetchedAt: v.SnapshotFetchedAt,
	}
}
