package users

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wolf6905/CCG3/src/core/config"
	"github.com/wolf6905/CCG3/src/core/helpers"
	"github.com/wolf6905/CCG3/src/core/models"
	"github.com/wolf6905/CCG3/src/utils"
)

type Handler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewHandler(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{db: db, cfg: cfg}
}

// GetProfile returns the authenticated user's record without the password.
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", nil)
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "User not found", err)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch user profile", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "User profile retrieved successfully", user)
}

// UploadProfilePhoto stores an avatar in Supabase storage and records its URL.
func (h *Handler) UploadProfilePhoto(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", nil)
	}

	file, err := c.FormFile("profile_photo")
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "File upload failed", err)
	}

	fileName := uuid.New().String() + "-" + file.Filename
	filePath := fmt.Sprintf("profile-photos/%s", fileName)

	publicURL, _, err := utils.UploadToSupabaseStorage(h.cfg, file, filePath)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload file to storage", err)
	}

	if result := h.db.Model(&models.User{}).Where("id = ?", userID).Update("avatar_url", publicURL); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update profile photo metadata", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Profile photo updated successfully", fiber.Map{
		"avatar_url": publicURL,
	})
}
