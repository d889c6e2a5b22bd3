package fiber

import (
	"context"
	"errors"
	"log"
	"net/http"

	"tyre-dashboard-service/internal/curing/core/domain"
	"tyre-dashboard-service/internal/curing/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type CuringUseCase interface {
	Summary(ctx context.Context, in usecase.CuringInput) (*domain.Summary, error)
	Production(ctx context.Context, in usecase.CuringInput, groupBy string) (*domain.Production, error)
}

type CuringHandler struct {
	uc CuringUseCase
}

func NewCuringHandler(uc CuringUseCase) *CuringHandler {
	return &CuringHandler{uc: uc}
}

// GetSummary godoc
// @Summary Curing KPIs
// @Description Production, scrap and rework rates, NCM holds, cycle and changeover times
// @Tags Curing
// @Produce json
// @Security SessionToken
// @Param start_date query string false "Start day (YYYY-MM-DD), requires end_date"
// @Param end_date query string false "End day (YYYY-MM-DD, inclusive), requires start_date"
// @Param recipe_id query string false "Recipe"
// @Param status query string false "Visual inspection status"
// @Param defect_area query string false "Defect area"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/curing/summary [get]
func (h *CuringHandler) GetSummary(c *fiber.Ctx) error {
	res, err := h.uc.Summary(c.UserContext(), parseInput(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(SummaryResponse{
		TotalProduction:   res.TotalProduction,
		ScrapRate:         res.ScrapRate,
		ReworkRate:        res.ReworkRate,
		NCMHold:           res.NCMHold,
		AvgCycleTime:      res.AvgCycleTime,
		AvgChangeoverTime: res.AvgChangeoverTime,
		TotalChangeover:   res.TotalChangeover,
	})
}

// GetProductionByPress godoc
// @Summary Production per press
// @Tags Curing
// @Produce json
// @Security SessionToken
// @Param start_date query string false "Start day (YYYY-MM-DD)"
// @Param end_date query string false "End day (YYYY-MM-DD)"
// @Param recipe_id query string false "Recipe"
// @Success 200 {array} PressProductionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/curing/production-by-press [get]
func (h *CuringHandler) GetProductionByPress(c *fiber.Ctx) error {
	res, err := h.uc.Production(c.UserContext(), parseInput(c), domain.GroupByPress)
	if err != nil {
		return writeError(c, err)
	}

	out := make([]PressProductionResponse, 0, len(res.Groups))
	for _, g := range res.Groups {
		out = append(out, PressProductionResponse{
			WCID:            g.Key,
			TotalProduction: g.Total.InexactFloat64(),
		})
	}
	return c.Status(http.StatusOK).JSON(out)
}

// GetProductionByRecipe godoc
// @Summary Production per recipe
// @Description The 15 recipes with the highest production
// @Tags Curing
// @Produce json
// @Security SessionToken
// @Param start_date query string false "Start day (YYYY-MM-DD)"
// @Param end_date query string false "End day (YYYY-MM-DD)"
// @Param recipe_id query string false "Recipe"
// @Success 200 {array} RecipeProductionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/curing/production-by-recipe [get]
func (h *CuringHandler) GetProductionByRecipe(c *fiber.Ctx) error {
	res, err := h.uc.Production(c.UserContext(), parseInput(c), domain.GroupByRecipe)
	if err != nil {
		return writeError(c, err)
	}

	out := make([]RecipeProductionResponse, 0, len(res.Groups))
	for _, g := range res.Groups {
		out = append(out, RecipeProductionResponse{
			RecipeID:        g.Key,
			TotalProduction: g.Total.InexactFloat64(),
		})
	}
	return c.Status(http.StatusOK).JSON(out)
}

// GetProduction godoc
// @Summary Production grouped by press or recipe
// @Tags Curing
// @Produce json
// @Security SessionToken
// @Param group_by query string true "Group by: press | recipe"
// @Param start_date query string false "Start day (YYYY-MM-DD)"
// @Param end_date query string false "End day (YYYY-MM-DD)"
// @Param recipe_id query string false "Recipe"
// @Success 200 {object} ProductionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/curing/production [get]
func (h *CuringHandler) GetProduction(c *fiber.Ctx) error {
	res, err := h.uc.Production(c.UserContext(), parseInput(c), c.Query("group_by", ""))
	if err != nil {
		return writeError(c, err)
	}

	resp := ProductionResponse{
		GroupBy: res.GroupBy,
		Groups:  make([]ProductionGroupResponse, 0, len(res.Groups)),
	}
	for _, g := range res.Groups {
		resp.Groups = append(resp.Groups, ProductionGroupResponse{
			Key:             g.Key,
			TotalProduction: g.Total.InexactFloat64(),
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

func parseInput(c *fiber.Ctx) usecase.CuringInput {
	return usecase.CuringInput{
		StartDate:  c.Query("start_date", ""),
		EndDate:    c.Query("end_date", ""),
		RecipeID:   c.Query("recipe_id", ""),
		Status:     c.Query("status", ""),
		DefectArea: c.Query("defect_area", ""),
	}
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidGroupBy):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	default:
		log.Printf("curing query failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
