package controllers

import (
	"errors"
	"strconv"
	"time"

	"macchain/backend/config"
	"macchain/backend/stats"
	"macchain/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StatisticsController struct {
	Service *stats.Service
	Cfg     *config.Config
}

func NewStatisticsController(service *stats.Service, cfg *config.Config) *StatisticsController {
	return &StatisticsController{Service: service, Cfg: cfg}
}

// GetLatest godoc
// @Summary Get latest statistics
// @Description Returns today's statistics snapshot, computing it on first access
// @Tags statistics
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /statistics [get]
func (sc *StatisticsController) GetLatest(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	snap, err := sc.Service.GetLatest(c.Context(), userID)
	if err != nil {
		return sc.statsError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, snap)
}

// Refresh godoc
// @Summary Recompute today's statistics
// @Description Drops today's cached snapshot and recomputes it from the records
// @Tags statistics
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /statistics/refresh [post]
func (sc *StatisticsController) Refresh(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	snap, err := sc.Service.Refresh(c.Context(), userID)
	if err != nil {
		return sc.statsError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, snap)
}

// GetByDate godoc
// @Summary Get statistics for a date
// @Description Returns the stored snapshot for the given date; never recomputes
// @Tags statistics
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /statistics/date/{date} [get]
func (sc *StatisticsController) GetByDate(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
	}

	snap, err := sc.Service.GetByDate(c.Context(), userID, date)
	if err != nil {
		if errors.Is(err, stats.ErrSnapshotNotFound) {
			return utils.NotFound(c, "No statistics for that date")
		}
		return sc.statsError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, snap)
}

// GetMonthly godoc
// @Summary Get monthly statistics
// @Description Returns the stored snapshots of a calendar month
// @Tags statistics
// @Accept json
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /statistics/monthly/{year}/{month} [get]
func (sc *StatisticsController) GetMonthly(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return utils.BadRequest(c, "Invalid year")
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		return utils.BadRequest(c, "Invalid month")
	}

	snaps, err := sc.Service.GetMonthly(c.Context(), userID, year, time.Month(month))
	if err != nil {
		return sc.statsError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, snaps)
}

// GetYearly godoc
// @Summary Get yearly statistics
// @Description Returns the stored snapshots of a calendar year
// @Tags statistics
// @Accept json
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /statistics/yearly/{year} [get]
func (sc *StatisticsController) GetYearly(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return utils.BadRequest(c, "Invalid year")
	}

	snaps, err := sc.Service.GetYearly(c.Context(), userID, year)
	if err != nil {
		return sc.statsError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, snaps)
}

// statsError maps engine failures to responses. Source and store outages are
// retryable for the client, so they surface as 503.
func (sc *StatisticsController) statsError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, stats.ErrInvalidWindow):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, stats.ErrSourceUnavailable), errors.Is(err, stats.ErrStoreUnavailable):
		return utils.Error(c, fiber.StatusServiceUnavailable, err)
	default:
		return utils.InternalServerError(c, err.Error())
	}
}
