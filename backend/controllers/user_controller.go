package controllers

import (
	"macchain/backend/config"
	"macchain/backend/models"
	"macchain/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

type UpdateSettingsRequest struct {
	Theme               *string `json:"theme"`
	FontSize            *string `json:"fontSize"`
	Language            *string `json:"language"`
	Translation         *string `json:"translation"`
	ShowOriginalText    *bool   `json:"showOriginalText"`
	EmailNotifications  *bool   `json:"emailNotifications"`
	PushNotifications   *bool   `json:"pushNotifications"`
	ReadingReminderTime *string `json:"readingReminderTime"`
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns authenticated user's profile data
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	// Ответ без чувствительных данных
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"name":       user.Name,
		"created_at": user.CreatedAt,
	})
}

// GetSettings godoc
// @Summary Get user settings
// @Description Returns authenticated user's reading settings
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/settings [get]
func (uc *UserController) GetSettings(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var settings models.UserSettings
	if err := uc.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return utils.NotFound(c, "Settings not found")
	}

	return utils.Success(c, fiber.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Update user settings
// @Description Updates only the provided settings fields
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateSettingsRequest true "Settings update data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/settings [put]
func (uc *UserController) UpdateSettings(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var settings models.UserSettings
	if err := uc.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return utils.NotFound(c, "Settings not found")
	}

	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.FontSize != nil {
		settings.FontSize = *req.FontSize
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.Translation != nil {
		settings.Translation = *req.Translation
	}
	if req.ShowOriginalText != nil {
		settings.ShowOriginalText = *req.ShowOriginalText
	}
	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		settings.PushNotifications = *req.PushNotifications
	}
	if req.ReadingReminderTime != nil {
		settings.ReadingReminderTime = *req.ReadingReminderTime
	}

	if err := uc.DB.Save(&settings).Error; err != nil {
		return utils.InternalServerError(c, "Could not update settings")
	}

	return utils.Success(c, fiber.StatusOK, settings)
}
