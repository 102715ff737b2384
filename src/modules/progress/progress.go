package progress

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wolf6905/CCG3/src/core/helpers"
	"github.com/wolf6905/CCG3/src/core/models"
	"github.com/wolf6905/CCG3/src/modules/leaderboard"
)

// casAttempts bounds the optimistic-lock retry loop on progression writes.
const casAttempts = 3

var errVersionConflict = errors.New("user record was modified concurrently")

type Handler struct {
	db    *gorm.DB
	cache *leaderboard.Cache
}

func NewHandler(db *gorm.DB, cache *leaderboard.Cache) *Handler {
	return &Handler{db: db, cache: cache}
}

type updateProgressInput struct {
	Correct    bool   `json:"correct"`
	XPGained   int    `json:"xp_gained"`
	Difficulty string `json:"difficulty"`
}

type completeGuideInput struct {
	GuideTitle string `json:"guideTitle" validate:"required"`
}

// UpdateProgress applies one challenge outcome to the authenticated user.
func (h *Handler) UpdateProgress(c *fiber.Ctx) error {
	input := new(updateProgressInput)
	if err := c.BodyParser(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	userID, err := authedUserID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", err)
	}

	var updated models.User
	var newBadges []string
	err = h.saveWithRetry(userID, func(user models.User) (models.User, bool) {
		updated, newBadges = ApplyChallengeOutcome(user, input.Correct, input.XPGained)
		return updated, true
	})
	if err != nil {
		return h.saveError(c, err)
	}

	h.cache.Invalidate()

	return helpers.HandleSuccess(c, fiber.StatusOK, "Progress updated successfully", fiber.Map{
		"success":   true,
		"user":      updated,
		"newBadges": newBadges,
	})
}

// CompleteGuide records a guide completion. Duplicates succeed with
// success=false and grant nothing.
func (h *Handler) CompleteGuide(c *fiber.Ctx) error {
	input := new(completeGuideInput)
	if err := c.BodyParser(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "guideTitle is required", err)
	}

	userID, err := authedUserID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", err)
	}

	var updated models.User
	completed := false
	err = h.saveWithRetry(userID, func(user models.User) (models.User, bool) {
		updated, completed = ApplyGuideCompletion(user, input.GuideTitle)
		return updated, completed
	})
	if err != nil {
		return h.saveError(c, err)
	}

	if !completed {
		return helpers.HandleSuccess(c, fiber.StatusOK, "Guide already completed", fiber.Map{
			"success": false,
			"message": "Guide already completed",
		})
	}

	h.cache.Invalidate()

	return helpers.HandleSuccess(c, fiber.StatusOK, "Guide completed successfully", fiber.Map{
		"success": true,
		"user":    updated,
	})
}

// saveWithRetry loads the user, applies the transition and persists it with a
// compare-and-swap on the version column. A concurrent writer bumps the
// version and fails the swap; the transition is then re-applied to the fresh
// record, up to casAttempts times. A transition returning false is a no-op
// and nothing is written.
func (h *Handler) saveWithRetry(userID uuid.UUID, apply func(models.User) (models.User, bool)) error {
	for attempt := 0; attempt < casAttempts; attempt++ {
		var user models.User
		if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		updated, persist := apply(user)
		if !persist {
			return nil
		}

		result := h.db.Model(&models.User{}).
			Where("id = ? AND version = ?", user.ID, user.Version).
			Updates(map[string]interface{}{
				"xp":                  updated.XP,
				"level":               updated.Level,
				"total_score":         updated.TotalScore,
				"games_played":        updated.GamesPlayed,
				"consecutive_correct": updated.ConsecutiveCorrect,
				"difficulty_level":    updated.DifficultyLevel,
				"completed_guides":    updated.CompletedGuides,
				"badges":              updated.Badges,
				"version":             user.Version + 1,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 1 {
			return nil
		}
	}
	return errVersionConflict
}

func (h *Handler) saveError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusNotFound, "User not found", err)
	}
	if errors.Is(err, errVersionConflict) {
		return helpers.HandleError(c, fiber.StatusConflict, "Progress update conflicted, please retry", err)
	}
	return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to save progress", err)
}

func authedUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return uuid.Nil, errors.New("user_id missing from context")
	}
	return uuid.Parse(userID)
}
