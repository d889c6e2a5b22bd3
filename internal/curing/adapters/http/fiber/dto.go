package fiber

type SummaryResponse struct {
	TotalProduction   float64 `json:"total_production" example:"15230"`
	ScrapRate         float64 `json:"scrap_rate" example:"1.25"`
	ReworkRate        float64 `json:"rework_rate" example:"3.4"`
	NCMHold           int64   `json:"ncm_hold" example:"12"`
	AvgCycleTime      float64 `json:"avg_cycle_time" example:"14.8"`
	AvgChangeoverTime float64 `json:"avg_changeover_time" example:"22.5"`
	TotalChangeover   int64   `json:"total_changeover" example:"9"`
}

type PressProductionResponse struct {
	WCID            string  `json:"wc_id"`
	TotalProduction float64 `json:"total_production"`
}

type RecipeProductionResponse struct {
	RecipeID        string  `json:"recipe_id"`
	TotalProduction float64 `json:"total_production"`
}

type ProductionGroupResponse struct {
	Key             string  `json:"key"`
	TotalProduction float64 `json:"total_production"`
}

type ProductionResponse struct {
	GroupBy string                    `json:"group_by"`
	Groups  []ProductionGroupResponse `json:"groups"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid group_by value"`
}
