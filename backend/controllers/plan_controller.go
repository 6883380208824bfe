package controllers

import (
	"strconv"

	"macchain/backend/config"
	"macchain/backend/models"
	"macchain/backend/plan"
	"macchain/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PlanController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewPlanController(db *gorm.DB, cfg *config.Config) *PlanController {
	return &PlanController{DB: db, Cfg: cfg}
}

// GetToday godoc
// @Summary Get today's reading plan
// @Description Returns the plan day matching the current date
// @Tags plan
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /plan/today [get]
func (plc *PlanController) GetToday(c *fiber.Ctx) error {
	dayNumber := plan.DayFor(timeNow())

	var planDay models.ReadingPlan
	if err := plc.DB.Where("day_number = ?", dayNumber).First(&planDay).Error; err != nil {
		return utils.NotFound(c, "No reading plan for today")
	}

	return utils.Success(c, fiber.StatusOK, planDay)
}

// GetDay godoc
// @Summary Get a plan day
// @Description Returns the reading plan for a specific day number (1-365)
// @Tags plan
// @Accept json
// @Produce json
// @Param day path int true "Day number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /plan/day/{day} [get]
func (plc *PlanController) GetDay(c *fiber.Ctx) error {
	day, err := strconv.Atoi(c.Params("day"))
	if err != nil {
		return utils.BadRequest(c, "Invalid day number")
	}
	if err := plan.ValidateDay(day); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var planDay models.ReadingPlan
	if err := plc.DB.Where("day_number = ?", day).First(&planDay).Error; err != nil {
		return utils.NotFound(c, "No reading plan for that day")
	}

	return utils.Success(c, fiber.StatusOK, planDay)
}
