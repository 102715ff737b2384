package chat

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wolf6905/CCG3/src/core/ai"
	"github.com/wolf6905/CCG3/src/core/config"
	"github.com/wolf6905/CCG3/src/core/helpers"
)

const chatSystemPrompt = `You are a helpful cybersecurity awareness assistant.
Respond in simple, non-technical language.
Provide prevention advice.
Suggest reporting to 1930 if applicable.
Encourage playing the cyber challenge.
Keep responses under 150 words.
Never provide instructions on committing fraud.
Always encourage reporting scams.
IMPORTANT: Do not use any markdown formatting like bold (**) or italics (*). Return plain text only.`

// Canned replies for the fail-soft policy: chat never surfaces an error to
// the caller.
const (
	replyNotConfigured = "I'm sorry, the AI assistant is not configured. Please set the OPENROUTER_API_KEY."
	replyUnavailable   = "I'm having trouble connecting to my brain right now. Please try again later."
	replyEmpty         = "I'm sorry, I couldn't process that request."
)

type Handler struct {
	ai        *ai.Client
	jwtSecret string
}

func NewHandler(client *ai.Client, cfg *config.Config) *Handler {
	return &Handler{ai: client, jwtSecret: cfg.JWTSecret}
}

type chatInput struct {
	Message string `json:"message" validate:"required"`
}

// Chat forwards the user's question to the assistant and replies with plain
// text. Provider failures become apologies, never errors.
func (h *Handler) Chat(c *fiber.Ctx) error {
	input := new(chatInput)
	if err := c.BodyParser(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "message is required", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Chat response generated", fiber.Map{
		"response": h.reply(input.Message),
	})
}

// reply returns the assistant's answer, or a canned apology on any failure.
func (h *Handler) reply(message string) string {
	content, err := h.ai.Complete(ai.ChatModel, chatSystemPrompt, message, false)
	if errors.Is(err, ai.ErrNoAPIKey) {
		return replyNotConfigured
	}
	if err != nil {
		return replyUnavailable
	}
	if content == "" {
		return replyEmpty
	}
	return content
}
