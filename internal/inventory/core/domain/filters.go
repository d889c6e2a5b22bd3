package domain

import "strings"

// Filter dimensions. The names double as query parameter and JSON keys.
const (
	DimCapturedDate  = "captured_date"
	DimStartDate     = "start_date"
	DimEndDate       = "end_date"
	DimItemType      = "item_type"
	DimItemCode      = "item_code"
	DimMachineName   = "machine_name"
	DimMachineID     = "machine_id"
	DimUOM           = "uom"
	DimQualityStatus = "quality_status"
	DimMHENo         = "mhe_no"
	DimLotNo         = "lot_no"
	DimShift         = "shift"
	DimSection       = "section"
)

// PanelDimensions lists the form controls of the filter panel in the order
// they are evaluated.
var PanelDimensions = []string{
	DimCapturedDate,
	DimStartDate,
	DimEndDate,
	DimItemType,
	DimItemCode,
	DimMachineName,
	DimMachineID,
	DimUOM,
	DimQualityStatus,
	DimMHENo,
	DimLotNo,
}

// ChartDimensions are the dimensions a chart segment can be clicked on.
var ChartDimensions = []string{
	DimItemType,
	DimItemCode,
	DimMachineName,
	DimMachineID,
	DimUOM,
	DimQualityStatus,
	DimMHENo,
	DimLotNo,
	DimShift,
	DimSection,
}

func IsPanelDimension(dim string) bool {
	return contains(PanelDimensions, dim)
}

func IsChartDimension(dim string) bool {
	return contains(ChartDimensions, dim)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// PanelFilters holds one value per panel dimension; "" means unconstrained.
type PanelFilters map[string]string

// ChartFilters holds the chart segments currently clicked, one per dimension.
type ChartFilters map[string]string

// Clone returns an independent copy; nil stays nil.
func (p PanelFilters) Clone() PanelFilters {
	if p == nil {
		return nil
	}
	out := make(PanelFilters, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Active reports whether any panel dimension is constrained.
func (p PanelFilters) Active() bool {
	for _, v := range p {
		if v != "" {
			return true
		}
	}
	return false
}

func (c ChartFilters) Clone() ChartFilters {
	if c == nil {
		return nil
	}
	out := make(ChartFilters, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// FilterState is everything the presentation layer has selected. It is
// threaded explicitly through the engine instead of living in globals.
type FilterState struct {
	Panel PanelFilters `json:"panel"`
	Chart ChartFilters `json:"chart"`
}

// HasActiveFilters drives the "Clear All Filters" control.
func (s FilterState) HasActiveFilters() bool {
	return s.Panel.Active() || len(s.Chart) > 0
}

func (s FilterState) Clone() FilterState {
	return FilterState{Panel: s.Panel.Clone(), Chart: s.Chart.Clone()}
}

// FilterOptions enumerates the distinct values offered by each selector.
type FilterOptions struct {
	CapturedDates   []string `json:"captured_dates"`
	ItemTypes       []string `json:"item_types"`
	ItemCodes       []string `json:"item_codes"`
	MachineNames    []string `json:"machine_names"`
	MachineIDs      []string `json:"machine_ids"`
	UOMs            []string `json:"uoms"`
	QualityStatuses []string `json:"quality_statuses"`
	MHENos          []string `json:"mhe_nos"`
}

var qualityStatusCasing = map[string]string{
	"ready to use":     "Ready To Use",
	"consumed":         "Consumed",
	"consumed1":        "Consumed1",
	"decision pending": "Decision Pending",
	"ncmhold":          "NCMHold",
	"hold":             "Hold",
}

// NormalizeQualityStatus maps the shop floor's inconsistent casing to the
// canonical label. Unrecognised values pass through.
func NormalizeQualityStatus(s string) string {
	if v, ok := qualityStatusCasing[strings.ToLower(s)]; ok {
		return v
	}
	return s
}
