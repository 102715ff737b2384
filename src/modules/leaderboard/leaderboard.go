package leaderboard

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wolf6905/CCG3/src/core/helpers"
	"github.com/wolf6905/CCG3/src/core/models"
)

const topLimit = 10

// Entry is one leaderboard row.
type Entry struct {
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Level    string `json:"level"`
}

// fallbackEntries is served when the store holds no accounts yet, so the
// board is never empty.
var fallbackEntries = []Entry{
	{Username: "Cyber King 👑", XP: 1250, Level: "Cyber Guardian"},
	{Username: "Security Pro 🛡️", XP: 980, Level: "Cyber Guardian"},
	{Username: "Scam Buster ⚔️", XP: 720, Level: "Cyber Guard"},
	{Username: "Digital Shield 🛡️", XP: 640, Level: "Cyber Guard"},
	{Username: "Byte Defender 🛡️", XP: 510, Level: "Defender"},
}

type Handler struct {
	db    *gorm.DB
	cache *Cache
}

func NewHandler(db *gorm.DB, cache *Cache) *Handler {
	return &Handler{db: db, cache: cache}
}

// GetLeaderboard returns the top accounts by XP, highest first.
func (h *Handler) GetLeaderboard(c *fiber.Ctx) error {
	if entries := h.cache.Get(); entries != nil {
		return helpers.HandleSuccess(c, fiber.StatusOK, "Leaderboard fetched successfully", entries)
	}

	var entries []Entry
	err := h.db.Model(&models.User{}).
		Select("username, xp, level").
		Order("xp DESC").
		Limit(topLimit).
		Scan(&entries).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch leaderboard", err)
	}

	if len(entries) == 0 {
		return helpers.HandleSuccess(c, fiber.StatusOK, "Leaderboard fetched successfully", fallbackEntries)
	}

	h.cache.Set(entries)

	return helpers.HandleSuccess(c, fiber.StatusOK, "Leaderboard fetched successfully", entries)
}
