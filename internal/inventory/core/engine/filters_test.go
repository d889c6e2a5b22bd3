package engine_test

import (
	"reflect"
	"testing"

	"tyre-dashboard-service/internal/inventory/core/domain"
	"tyre-dashboard-service/internal/inventory/core/engine"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		{ID: "1", ItemCode: "X", ItemType: "GT", UOM: "KG", QualityStatus: "Hold", MachineName: "Press 1", MHENo: "M1", CurrentQuantity: "10", CapturedDateIST: "2024-01-15T10:00:00"},
		{ID: "2", ItemCode: "Y", ItemType: "GT", UOM: "PCS", QualityStatus: "Ready To Use", MachineName: "Press 2", MHENo: "M2", CurrentQuantity: "4.5", CapturedDateIST: "2024-02-01T00:00:00"},
		{ID: "3", ItemCode: "X", ItemType: "Bead", UOM: "KG", QualityStatus: "Ready To Use", MachineName: "Press 1", MHENo: "M3", CurrentQuantity: "2", CapturedDateIST: "2024-01-31T23:59:59"},
		{ID: "4", ItemCode: "Z", UOM: "", CurrentQuantity: "abc"},
		{ID: "5", ItemCode: "X", ItemType: "GT", UOM: "KG", QualityStatus: "Hold", MachineName: "Press 3", MHENo: "M1", CurrentQuantity: "1", CapturedDate: "2023-12-31T20:00:00"},
	}
}

func ids(records []domain.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

// ------------------------------------------------------------
// NO FILTERS
// ------------------------------------------------------------

func TestApplyFilters_NoFiltersReturnsCopy(t *testing.T) {
	in := sampleRecords()

	out := engine.ApplyFilters(in, nil, nil)
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("expected identical records, got %v", ids(out))
	}

	out[0].ItemCode = "mutated"
	if in[0].ItemCode != "X" {
		t.Fatalf("result must not alias the input slice")
	}

	out = engine.ApplyFilters(in, domain.PanelFilters{domain.DimItemCode: ""}, domain.ChartFilters{})
	if len(out) != len(in) {
		t.Fatalf("empty panel value must not constrain, got %d records", len(out))
	}
}

// ------------------------------------------------------------
// PANEL EQUALITY
// ------------------------------------------------------------

func TestApplyFilters_PanelEquality(t *testing.T) {
	in := sampleRecords()

	out := engine.ApplyFilters(in, domain.PanelFilters{domain.DimItemCode: "X"}, nil)

	if got, want := ids(out), []string{"1", "3", "5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, r := range out {
		if r.ItemCode != "X" {
			t.Fatalf("unexpected item_code %q in result", r.ItemCode)
		}
	}
}

func TestApplyFilters_PanelAndComposition(t *testing.T) {
	out := engine.ApplyFilters(sampleRecords(), domain.PanelFilters{
		domain.DimItemCode:      "X",
		domain.DimQualityStatus: "Hold",
		domain.DimItemType:      "GT",
	}, nil)

	if got, want := ids(out), []string{"1", "5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestApplyFilters_MissingFieldIsExcluded(t *testing.T) {
	out := engine.ApplyFilters(sampleRecords(), domain.PanelFilters{domain.DimUOM: "Unknown"}, nil)
	if len(out) != 0 {
		t.Fatalf("records without uom must not match a literal filter value, got %v", ids(out))
	}
}

// ------------------------------------------------------------
// DATES
// ------------------------------------------------------------

func TestApplyFilters_DateRangeInclusive(t *testing.T) {
	out := engine.ApplyFilters(sampleRecords(), domain.PanelFilters{
		domain.DimStartDate: "2024-01-01",
		domain.DimEndDate:   "2024-01-31",
	}, nil)

	if got, want := ids(out), []string{"1", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestApplyFilters_DateRangeOpenEnded(t *testing.T) {
	out := engine.ApplyFilters(sampleRecords(), domain.PanelFilters{domain.DimStartDate: "2024-01-31"}, nil)
	if got, want := ids(out), []string{"2", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	out = engine.ApplyFilters(sampleRecords(), domain.PanelFilters{domain.DimEndDate: "2024-01-01"}, nil)
	if got, want := ids(out), []string{"5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestApplyFilters_SingleDatePrefix(t *testing.T) {
	out := engine.ApplyFilters(sampleRecords(), domain.PanelFilters{domain.DimCapturedDate: "2024-01-15"}, nil)
	if got, want := ids(out), []string{"1"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// falls back to captured_date when the IST column is empty
	out = engine.ApplyFilters(sampleRecords(), domain.PanelFilters{domain.DimCapturedDate: "2023-12-31"}, nil)
	if got, want := ids(out), []string{"5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// ------------------------------------------------------------
// CHART FILTERS
// ------------------------------------------------------------

func TestApplyFilters_ChartFilters(t *testing.T) {
	out := engine.ApplyFilters(sampleRecords(),
		domain.PanelFilters{domain.DimItemCode: "X"},
		domain.ChartFilters{domain.DimMachineName: "Press 1"},
	)
	if got, want := ids(out), []string{"1", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestApplyFilters_UnknownChartDimensionIsNoop(t *testing.T) {
	in := sampleRecords()
	out := engine.ApplyFilters(in, nil, domain.ChartFilters{"colour": "red"})
	if len(out) != len(in) {
		t.Fatalf("unknown chart dimension must pass through, got %d of %d", len(out), len(in))
	}
}

func TestApplyFilters_Deterministic(t *testing.T) {
	panel := domain.PanelFilters{domain.DimUOM: "KG", domain.DimStartDate: "2023-01-01"}
	chart := domain.ChartFilters{domain.DimQualityStatus: "Hold", domain.DimItemCode: "X"}

	first := engine.ApplyFilters(sampleRecords(), panel, chart)
	for i := 0; i < 20; i++ {
		again := engine.ApplyFilters(sampleRecords(), panel, chart)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, ids(first), ids(again))
		}
	}
}

// ------------------------------------------------------------
// TOGGLE / SET
// ------------------------------------------------------------

func TestToggleChartFilter(t *testing.T) {
	empty := domain.ChartFilters{}

	on := engine.ToggleChartFilter(empty, "uom", "KG")
	if !reflect.DeepEqual(on, domain.ChartFilters{"uom": "KG"}) {
		t.Fatalf("expected {uom: KG}, got %v", on)
	}
	if len(empty) != 0 {
		t.Fatalf("input must not be mutated, got %v", empty)
	}

	off := engine.ToggleChartFilter(on, "uom", "KG")
	if len(off) != 0 {
		t.Fatalf("expected {}, got %v", off)
	}
	if on["uom"] != "KG" {
		t.Fatalf("input must not be mutated, got %v", on)
	}

	replaced := engine.ToggleChartFilter(on, "uom", "PCS")
	if !reflect.DeepEqual(replaced, domain.ChartFilters{"uom": "PCS"}) {
		t.Fatalf("expected {uom: PCS}, got %v", replaced)
	}

	nilStart := engine.ToggleChartFilter(nil, "item_code", "A")
	if nilStart["item_code"] != "A" {
		t.Fatalf("expected item_code=A, got %v", nilStart)
	}
}

func TestSetPanelFilter(t *testing.T) {
	cur := domain.PanelFilters{domain.DimUOM: "KG"}

	next := engine.SetPanelFilter(cur, domain.DimItemCode, "X")
	if next[domain.DimUOM] != "KG" || next[domain.DimItemCode] != "X" {
		t.Fatalf("unexpected filters %v", next)
	}
	if _, ok := cur[domain.DimItemCode]; ok {
		t.Fatalf("input must not be mutated")
	}

	cleared := engine.SetPanelFilter(next, domain.DimUOM, "")
	if _, ok := cleared[domain.DimUOM]; ok {
		t.Fatalf("empty value must clear the dimension, got %v", cleared)
	}
}
