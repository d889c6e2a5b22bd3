// Package engine derives every dashboard view from a record snapshot and a
// filter state. All functions are pure: inputs are never mutated and
// identical inputs give identical outputs.
package engine

import (
	"strings"

	"tyre-dashboard-service/internal/inventory/core/domain"
)

// ApplyFilters returns the records matching every active panel and chart
// constraint. The result is always a fresh slice.
func ApplyFilters(records []domain.Record, panel domain.PanelFilters, chart domain.ChartFilters) []domain.Record {
	preds := predicates(panel, chart)

	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if matchAll(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

type predicate func(domain.Record) bool

func matchAll(r domain.Record, preds []predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// predicates compiles the filter maps in a fixed dimension order so the
// evaluation never depends on map iteration.
func predicates(panel domain.PanelFilters, chart domain.ChartFilters) []predicate {
	var preds []predicate

	for _, dim := range domain.PanelDimensions {
		v := panel[dim]
		if v == "" {
			continue
		}
		switch dim {
		case domain.DimCapturedDate:
			preds = append(preds, capturedOn(v))
		case domain.DimStartDate:
			preds = append(preds, capturedFrom(v))
		case domain.DimEndDate:
			preds = append(preds, capturedUntil(v))
		default:
			preds = append(preds, equals(dim, v))
		}
	}

	for _, dim := range domain.ChartDimensions {
		if v, ok := chart[dim]; ok && v != "" {
			preds = append(preds, equals(dim, v))
		}
	}

	return preds
}

func equals(dim, want string) predicate {
	return func(r domain.Record) bool {
		got, ok := r.Field(dim)
		return ok && got == want
	}
}

func capturedOn(prefix string) predicate {
	return func(r domain.Record) bool {
		d := r.CaptureDate()
		return d != "" && strings.HasPrefix(d, prefix)
	}
}

// Range bounds compare the YYYY-MM-DD day, so both ends are inclusive.
func capturedFrom(start string) predicate {
	return func(r domain.Record) bool {
		day := r.Day()
		return day != "" && day >= start
	}
}

func capturedUntil(end string) predicate {
	return func(r domain.Record) bool {
		day := r.Day()
		return day != "" && day <= end
	}
}

// ToggleChartFilter handles a click on a chart segment: clicking the active
// value clears that dimension, anything else selects it.
func ToggleChartFilter(current domain.ChartFilters, dim, value string) domain.ChartFilters {
	next := make(domain.ChartFilters, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	if cur, ok := current[dim]; ok && cur == value {
		delete(next, dim)
		return next
	}
	next[dim] = value
	return next
}

// SetPanelFilter handles a change of one filter panel control. An empty
// value removes the constraint.
func SetPanelFilter(current domain.PanelFilters, dim, value string) domain.PanelFilters {
	next := make(domain.PanelFilters, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	if value == "" {
		delete(next, dim)
		return next
	}
	next[dim] = value
	return next
}
