package engine

import (
	"time"

	"tyre-dashboard-service/internal/inventory/core/domain"
)

// RecordsPerPage is the page size of the inventory table.
const RecordsPerPage = 50

// Paginate slices one page out of records. page is clamped into
// [1, TotalPages]; an empty input yields page 1 of 1 with no rows.
func Paginate(records []domain.Record, page, perPage int) domain.RecordPage {
	if perPage <= 0 {
		perPage = RecordsPerPage
	}

	total := len(records)
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}

	rows := make([]domain.Record, end-start)
	copy(rows, records[start:end])

	res := domain.RecordPage{
		Records:    rows,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      total,
		End:        end,
	}
	if total > 0 {
		res.Start = start + 1
	}
	return res
}

// Build computes the full dashboard for one filter state over a snapshot.
func Build(records []domain.Record, state domain.FilterState, page int, fetchedAt time.Time) domain.DashboardView {
	filtered := ApplyFilters(records, state.Panel, state.Chart)

	return domain.DashboardView{
		TotalRecords:      len(filtered),
		UOMInventory:      QuantityByUOM(filtered),
		QualityStatus:     QuantityByQualityStatus(filtered),
		MachineInventory:  QuantityByMachine(filtered),
		DateInventory:     DateInventory(filtered),
		TopItemCodes:      TopItemCodesByQuantity(filtered, TopItemCodes),
		MHEByItemType:     MHEByItemType(filtered),
		MHEByItemCode:     MHEByItemCode(filtered),
		Records:           Paginate(filtered, page, RecordsPerPage),
		Filters:           state.Clone(),
		HasActiveFilters:  state.HasActiveFilters(),
		SnapshotFetchedAt: fetchedAt,
	}
}
