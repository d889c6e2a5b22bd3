package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"tyre-dashboard-service/internal/inventory/core/domain"
)

// TopItemCodes is how many bars the item code chart shows.
const TopItemCodes = 15

// KeyFunc derives the group key of a record. ok=false leaves the record out
// of the aggregation.
type KeyFunc func(domain.Record) (key string, ok bool)

// ValueFunc derives the amount a record contributes to its group.
type ValueFunc func(domain.Record) decimal.Decimal

// Buckets are aggregation groups in first-encounter order.
type Buckets []domain.Bucket

// Map returns the group totals keyed by group.
func (b Buckets) Map() map[string]float64 {
	m := make(map[string]float64, len(b))
	for _, g := range b {
		m[g.Key] = g.Total
	}
	return m
}

// Sum adds up all group totals.
func (b Buckets) Sum() float64 {
	s := decimal.Zero
	for _, g := range b {
		s = s.Add(decimal.NewFromFloat(g.Total))
	}
	return s.InexactFloat64()
}

// By groups on a single dimension, with missing values as "Unknown".
func By(dim string) KeyFunc {
	return func(r domain.Record) (string, bool) {
		v, _ := r.Field(dim)
		return domain.Category(v), true
	}
}

// ByPair groups on two dimensions joined into a composite key.
func ByPair(a, b string) KeyFunc {
	return func(r domain.Record) (string, bool) {
		va, _ := r.Field(a)
		vb, _ := r.Field(b)
		return CompositeKey(domain.Category(va), domain.Category(vb)), true
	}
}

// ByDay groups on the capture day; records without one are skipped.
func ByDay(r domain.Record) (string, bool) {
	d := r.Day()
	return d, d != ""
}

// keySep cannot occur in shop floor identifiers, so composite keys never
// collide the way "A_B"+"C" and "A"+"B_C" would.
const keySep = "\x1f"

// CompositeKey joins two dimension values into one group key.
func CompositeKey(a, b string) string {
	return a + keySep + b
}

// CurrentQuantity is the default value of every inventory aggregation.
func CurrentQuantity(r domain.Record) decimal.Decimal {
	return r.CurrentQuantity.Decimal()
}

// AggregateBy sums value per key. A nil value sums current quantity.
func AggregateBy(records []domain.Record, key KeyFunc, value ValueFunc) Buckets {
	if value == nil {
		value = CurrentQuantity
	}

	index := make(map[string]int)
	var keys []string
	var sums []decimal.Decimal

	for _, r := range records {
		k, ok := key(r)
		if !ok {
			continue
		}
		i, seen := index[k]
		if !seen {
			i = len(keys)
			index[k] = i
			keys = append(keys, k)
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(value(r))
	}

	out := make(Buckets, len(keys))
	for i, k := range keys {
		out[i] = domain.Bucket{Key: k, Total: sums[i].InexactFloat64()}
	}
	return out
}

func QuantityByUOM(records []domain.Record) Buckets {
	return AggregateBy(records, By(domain.DimUOM), nil)
}

func QuantityByQualityStatus(records []domain.Record) Buckets {
	return AggregateBy(records, By(domain.DimQualityStatus), nil)
}

func QuantityByMachine(records []domain.Record) Buckets {
	return AggregateBy(records, By(domain.DimMachineName), nil)
}

// QuantityByDate returns per-day totals in ascending date order.
func QuantityByDate(records []domain.Record) Buckets {
	b := AggregateBy(records, ByDay, nil)
	sort.SliceStable(b, func(i, j int) bool { return b[i].Key < b[j].Key })
	return b
}

// DistinctUOMs lists UOM categories in first-encounter order.
func DistinctUOMs(records []domain.Record) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range records {
		u := domain.Category(r.UOM)
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}

// DateInventory builds the date-wise chart stacked by UOM.
func DateInventory(records []domain.Record) domain.DateSeries {
	cells := AggregateBy(records, func(r domain.Record) (string, bool) {
		d, ok := ByDay(r)
		if !ok {
			return "", false
		}
		return CompositeKey(d, domain.Category(r.UOM)), true
	}, nil).Map()

	days := QuantityByDate(records)
	uoms := DistinctUOMs(records)

	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = d.Key
	}

	series := make(map[string][]float64, len(uoms))
	for _, u := range uoms {
		row := make([]float64, len(labels))
		for i, d := range labels {
			row[i] = cells[CompositeKey(d, u)]
		}
		series[u] = row
	}

	return domain.DateSeries{Labels: labels, UOMs: uoms, Series: series}
}

// TopItemCodesByQuantity returns the n item codes with the largest totals,
// descending, each broken down by UOM. Ties keep first-encounter order.
func TopItemCodesByQuantity(records []domain.Record, n int) []domain.ItemCodeTotal {
	totals := AggregateBy(records, By(domain.DimItemCode), nil)
	perUOM := AggregateBy(records, ByPair(domain.DimItemCode, domain.DimUOM), nil).Map()
	uoms := DistinctUOMs(records)

	sort.SliceStable(totals, func(i, j int) bool { return totals[i].Total > totals[j].Total })
	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}

	out := make([]domain.ItemCodeTotal, 0, len(totals))
	for _, t := range totals {
		breakdown := make(map[string]float64)
		for _, u := range uoms {
			if v, ok := perUOM[CompositeKey(t.Key, u)]; ok {
				breakdown[u] = v
			}
		}
		out = append(out, domain.ItemCodeTotal{Code: t.Key, Total: t.Total, UOMs: breakdown})
	}
	return out
}

// MHECounts groups by (dim, UOM) and reports, per group, the inventory sum
// and how many distinct MHE numbers were seen.
func MHECounts(records []domain.Record, dim string) []domain.MHERow {
	type acc struct {
		row  domain.MHERow
		sum  decimal.Decimal
		mhes map[string]struct{}
	}

	index := make(map[string]*acc)
	var order []*acc

	for _, r := range records {
		v, _ := r.Field(dim)
		k := domain.Category(v)
		u := domain.Category(r.UOM)
		ck := CompositeKey(k, u)

		a, ok := index[ck]
		if !ok {
			a = &acc{
				row:  domain.MHERow{Key: k, UOM: u},
				sum:  decimal.Zero,
				mhes: make(map[string]struct{}),
			}
			index[ck] = a
			order = append(order, a)
		}
		a.mhes[domain.Category(r.MHENo)] = struct{}{}
		a.sum = a.sum.Add(CurrentQuantity(r))
	}

	out := make([]domain.MHERow, len(order))
	for i, a := range order {
		a.row.MHECount = len(a.mhes)
		a.row.Inventory = a.sum.InexactFloat64()
		out[i] = a.row
	}
	return out
}

// MHEByItemType is the MHE table keyed by item type.
func MHEByItemType(records []domain.Record) []domain.MHERow {
	return MHECounts(records, domain.DimItemType)
}

// MHEByItemCode is the MHE table keyed by item code, largest inventory first.
func MHEByItemCode(records []domain.Record) []domain.MHERow {
	rows := MHECounts(records, domain.DimItemCode)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Inventory > rows[j].Inventory })
	return rows
}
