package fiber

import (
	"context"
	"errors"
	"log"
	"net/http"

	authhttp "tyre-dashboard-service/internal/auth/adapters/http/fiber"
	authusecase "tyre-dashboard-service/internal/auth/core/usecase"
	"tyre-dashboard-service/internal/inventory/core/domain"
	"tyre-dashboard-service/internal/inventory/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardUseCase interface {
	Refresh(ctx context.Context) error
	View(ctx context.Context, state domain.FilterState, page int) (*domain.DashboardView, error)
	Records(ctx context.Context, state domain.FilterState, page int) (*domain.RecordPage, error)
	Inventory(ctx context.Context, panel domain.PanelFilters) ([]domain.Record, error)
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)
}

// SessionFilters is where each signed-in user's filter state lives.
type SessionFilters interface {
	Filters(ctx context.Context, token string) (domain.FilterState, error)
	UpdateFilters(
		ctx context.Context,
		token string,
		fn func(domain.FilterState) (domain.FilterState, error),
	) (domain.FilterState, error)
}

type InventoryHandler struct {
	uc       DashboardUseCase
	sessions SessionFilters
}

func NewInventoryHandler(uc DashboardUseCase, sessions SessionFilters) *InventoryHandler {
	return &InventoryHandler{uc: uc, sessions: sessions}
}

// GetInventory godoc
// @Summary List inventory records
// @Description Returns the current snapshot filtered by the panel query parameters
// @Tags Inventory
// @Produce json
// @Security SessionToken
// @Param captured_date query string false "Capture date prefix (YYYY, YYYY-MM or YYYY-MM-DD)"
// @Param start_date query string false "Range start (YYYY-MM-DD, inclusive)"
// @Param end_date query string false "Range end (YYYY-MM-DD, inclusive)"
// @Param item_type query string false "Item type"
// @Param item_code query string false "Item code"
// @Param machine_name query string false "Machine name"
// @Param machine_id query string false "Machine id"
// @Param uom query string false "Unit of measure"
// @Param quality_status query string false "Quality status"
// @Param mhe_no query string false "MHE number"
// @Param lot_no query string false "Lot number"
// @Success 200 {array} domain.Record
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/inventory [get]
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	panel := domain.PanelFilters{}
	for _, dim := range domain.PanelDimensions {
		if v := c.Query(dim, ""); v != "" {
			panel[dim] = v
		}
	}

	records, err := h.uc.Inventory(c.UserContext(), panel)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(records)
}

// GetFilterOptions godoc
// @Summary Filter options
// @Description Distinct values offered by each filter selector
// @Tags Inventory
// @Produce json
// @Security SessionToken
// @Success 200 {object} domain.FilterOptions
// @Failure 503 {object} ErrorResponse
// @Router /api/filter-options [get]
func (h *InventoryHandler) GetFilterOptions(c *fiber.Ctx) error {
	opts, err := h.uc.FilterOptions(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(opts)
}

// GetDashboard godoc
// @Summary Inventory dashboard
// @Description Builds every chart, table and KPI for the session's filter state
// @Tags Dashboard
// @Produce json
// @Security SessionToken
// @Param page query int false "Records table page" default(1)
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/dashboard [get]
func (h *InventoryHandler) GetDashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()

	state, err := h.sessions.Filters(ctx, sessionToken(c))
	if err != nil {
		return writeError(c, err)
	}

	view, err := h.uc.View(ctx, state, c.QueryInt("page", 1))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboard(view))
}

// GetRecords godoc
// @Summary Inventory table page
// @Tags Dashboard
// @Produce json
// @Security SessionToken
// @Param page query int false "Page" default(1)
// @Success 200 {object} RecordPageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/dashboard/records [get]
func (h *InventoryHandler) GetRecords(c *fiber.Ctx) error {
	ctx := c.UserContext()

	state, err := h.sessions.Filters(ctx, sessionToken(c))
	if err != nil {
		return writeError(c, err)
	}

	page, err := h.uc.Records(ctx, state, c.QueryInt("page", 1))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toRecordPage(*page))
}

// ChangeFilter godoc
// @Summary Set a panel filter
// @Description Sets one panel control; an empty value clears it. Chart filters are kept.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body FilterChangeRequest true "Dimension and value"
// @Success 200 {object} FilterStateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/dashboard/filters [put]
func (h *InventoryHandler) ChangeFilter(c *fiber.Ctx) error {
	var req FilterChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	state, err := h.sessions.UpdateFilters(c.UserContext(), sessionToken(c), func(s domain.FilterState) (domain.FilterState, error) {
		return usecase.ChangeFilter(s, req.Dimension, req.Value)
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toFilterState(state))
}

// ClickChart godoc
// @Summary Toggle a chart filter
// @Description Clicking the active segment again removes the filter; any other value replaces it
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body FilterChangeRequest true "Dimension and clicked value"
// @Success 200 {object} FilterStateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/dashboard/chart-filters [post]
func (h *InventoryHandler) ClickChart(c *fiber.Ctx) error {
	var req FilterChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	state, err := h.sessions.UpdateFilters(c.UserContext(), sessionToken(c), func(s domain.FilterState) (domain.FilterState, error) {
		return usecase.ClickChart(s, req.Dimension, req.Value)
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toFilterState(state))
}

// ClearFilters godoc
// @Summary Clear all filters
// @Tags Dashboard
// @Produce json
// @Security SessionToken
// @Success 200 {object} FilterStateResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/dashboard/filters [delete]
func (h *InventoryHandler) ClearFilters(c *fiber.Ctx) error {
	state, err := h.sessions.UpdateFilters(c.UserContext(), sessionToken(c), func(domain.FilterState) (domain.FilterState, error) {
		return domain.FilterState{
			Panel: domain.PanelFilters{},
			Chart: domain.ChartFilters{},
		}, nil
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toFilterState(state))
}

// Refresh godoc
// @Summary Refetch the inventory snapshot
// @Description On failure the previous snapshot stays in place
// @Tags Dashboard
// @Produce json
// @Security SessionToken
// @Success 200 {object} RefreshResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/dashboard/refresh [post]
func (h *InventoryHandler) Refresh(c *fiber.Ctx) error {
	if err := h.uc.Refresh(c.UserContext()); err != nil {
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "refresh_failed",
			Message: "inventory source unavailable, previous snapshot kept",
		})
	}
	return c.Status(http.StatusOK).JSON(RefreshResponse{Status: "refreshed"})
}

func sessionToken(c *fiber.Ctx) string {
	token, _ := c.Locals(authhttp.LocalSessionToken).(string)
	return token
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDimension),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrMissingValue):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_filter",
			Message: err.Error(),
		})
	case errors.Is(err, authusecase.ErrUnauthorized):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrSnapshotNotReady):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "snapshot_not_ready",
			Message: err.Error(),
		})
	default:
		log.Printf("inventory handler: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
