package domain

import "github.com/shopspring/decimal"

// Production groupings.
const (
	GroupByPress  = "press"
	GroupByRecipe = "recipe"
)

// SummaryCounts are the raw aggregates read from the curing tables.
type SummaryCounts struct {
	TotalProduction   decimal.Decimal
	Inspected         int64 // distinct green tyres seen at visual inspection
	Scrapped          int64
	Reworked          int64
	NCMHold           int64
	AvgCycleTime      decimal.Decimal // minutes
	AvgChangeoverTime decimal.Decimal // minutes
	TotalChangeover   int64
}

// Summary is the KPI strip of the curing dashboard. Rates are percentages.
type Summary struct {
	TotalProduction   float64
	ScrapRate         float64
	ReworkRate        float64
	NCMHold           int64
	AvgCycleTime      float64
	AvgChangeoverTime float64
	TotalChangeover   int64
}

type ProductionGroup struct {
	Key   string // press (work centre) id or recipe id
	Total decimal.Decimal
}

type Production struct {
	GroupBy string
	Groups  []ProductionGroup
}
