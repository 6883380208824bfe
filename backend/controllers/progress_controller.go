package controllers

import (
	"strings"
	"time"

	"macchain/backend/config"
	"macchain/backend/models"
	"macchain/backend/plan"
	"macchain/backend/stats"
	"macchain/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

type MarkReadingRequest struct {
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Completed bool   `json:"completed"`
}

// GetToday godoc
// @Summary Get today's progress
// @Description Returns the authenticated user's progress record for today, creating none
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/today [get]
func (pc *ProgressController) GetToday(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	today := stats.DateOnly(timeNow())

	var record models.ProgressRecord
	if err := pc.DB.Where("user_id = ? AND reading_date = ?", userID, today).First(&record).Error; err != nil {
		if !isNotFound(err) {
			return utils.InternalServerError(c, "Could not load progress")
		}
		// No reading yet today: an empty record, not an error
		return utils.Success(c, fiber.StatusOK, models.ProgressRecord{
			UserID:      userID,
			ReadingDate: today,
			DayNumber:   plan.DayFor(today),
			TotalCount:  models.ReadingsPerDay,
		})
	}

	return utils.Success(c, fiber.StatusOK, record)
}

// MarkReading godoc
// @Summary Mark a reading complete or incomplete
// @Description Toggles one reading item of today's plan and recomputes the day's percentage
// @Tags progress
// @Accept json
// @Produce json
// @Param input body MarkReadingRequest true "Reading completion state"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/reading [post]
func (pc *ProgressController) MarkReading(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req MarkReadingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	today := stats.DateOnly(timeNow())

	var record models.ProgressRecord
	if err := pc.DB.Where("user_id = ? AND reading_date = ?", userID, today).First(&record).Error; err != nil {
		if !isNotFound(err) {
			return utils.InternalServerError(c, "Could not load progress")
		}
		record = pc.defaultRecord(userID, today)
	}

	if req.Book != "" {
		if !markReadingItem(&record, req) {
			return utils.BadRequest(c, "Reading is not part of today's plan")
		}
	} else {
		// No item named: plain toggle, clamped to the day's totals
		record.MarkReading(req.Completed)
	}

	if err := pc.DB.Save(&record).Error; err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}

	return utils.Success(c, fiber.StatusOK, record)
}

// defaultRecord creates today's record from the plan on the first progress
// update of the day.
func (pc *ProgressController) defaultRecord(userID uint, today time.Time) models.ProgressRecord {
	dayNumber := plan.DayFor(today)

	record := models.ProgressRecord{
		UserID:      userID,
		ReadingDate: today,
		DayNumber:   dayNumber,
		TotalCount:  models.ReadingsPerDay,
	}

	var planDay models.ReadingPlan
	if err := pc.DB.Where("day_number = ?", dayNumber).First(&planDay).Error; err == nil {
		for _, r := range planDay.Readings {
			record.Readings = append(record.Readings, models.ReadingProgress{
				Book:    r.Book,
				Chapter: r.Chapter,
			})
		}
		if len(planDay.Readings) > 0 {
			record.TotalCount = len(planDay.Readings)
		}
	}

	return record
}

// markReadingItem flips the named item's state and recomputes the counts from
// the item list. Returns false when the item is not in the day's readings.
func markReadingItem(record *models.ProgressRecord, req MarkReadingRequest) bool {
	found := false
	completed := 0
	for i := range record.Readings {
		item := &record.Readings[i]
		if strings.EqualFold(item.Book, req.Book) && item.Chapter == req.Chapter {
			item.Completed = req.Completed
			found = true
		}
		if item.Completed {
			completed++
		}
	}
	if !found {
		return false
	}
	record.CompletedCount = completed
	record.RecalculatePercent()
	return true
}
