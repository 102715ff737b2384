package challenges

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/gofiber/fiber/v2"

	"github.com/wolf6905/CCG3/src/core/ai"
	"github.com/wolf6905/CCG3/src/core/helpers"
	"github.com/wolf6905/CCG3/src/core/models"
)

// challengeShapes are the generated challenge variants, picked uniformly.
var challengeShapes = []string{
	models.ChallengeScenario,
	models.ChallengeEmail,
	models.ChallengeLink,
}

// topics is the fixed scam-topic catalog, picked uniformly per challenge.
var topics = []string{
	"UPI payment link scam",
	"Fake bank KYC update call",
	"Digital Arrest (fake police/CBI call)",
	"Work from home / Part-time job fraud",
	"Fake electricity bill payment SMS",
	"SIM swap fraud",
	"OLX/Marketplace QR code scam",
	"Fake courier/parcel delivery issue",
	"Social media account hijacking",
	"Investment/Stock market tips scam",
}

const questionSystemPrompt = `You are a cybersecurity expert. Generate a unique, highly realistic cybersecurity challenge for a user in India.

Challenge Types:
1. 'scenario': A text-based story where the user must decide what to do.
2. 'email': A phishing email simulation. 'data' should be an object with { from, subject, body }.
3. 'link': A malicious link identification task. 'data' should be a string (the URL).

Avoid generic templates. Use specific details like app names, common Indian names, or realistic dialogue.`

const questionUserPrompt = `Generate a '%s' challenge focusing on: %s.
Difficulty: %s.
The response must be a JSON object with these keys:
- type (string: 'scenario', 'email', or 'link')
- title (string: short title)
- description (string: instructions for the user)
- data (the content based on type)
- options (array of 4 strings)
- correctAnswer (string, must match one of the options exactly)
- explanation (string)
- difficulty (string: Easy, Medium, or Hard).

Ensure the challenge is different from common textbook examples.`

type Handler struct {
	ai *ai.Client
}

func NewHandler(client *ai.Client) *Handler {
	return &Handler{ai: client}
}

// GenerateQuestion serves one freshly generated challenge.
func (h *Handler) GenerateQuestion(c *fiber.Ctx) error {
	difficulty := c.Query("difficulty", models.DifficultyEasy)

	challenge, err := h.Generate(difficulty)
	if err != nil {
		if errors.Is(err, ai.ErrNoAPIKey) {
			return helpers.HandleError(c, fiber.StatusServiceUnavailable, "Challenge generation is not configured", err)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to generate question", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Question generated successfully", challenge)
}

// Generate asks the completion provider for one challenge of the requested
// difficulty, with a random shape and topic.
func (h *Handler) Generate(difficulty string) (*models.Challenge, error) {
	shape := challengeShapes[rand.Intn(len(challengeShapes))]
	topic := topics[rand.Intn(len(topics))]

	userPrompt := fmt.Sprintf(questionUserPrompt, shape, topic, difficulty)
	content, err := h.ai.Complete(ai.QuestionModel, questionSystemPrompt, userPrompt, true)
	if err != nil {
		return nil, err
	}

	challenge := new(models.Challenge)
	if err := json.Unmarshal([]byte(content), challenge); err != nil {
		return nil, fmt.Errorf("parse generated challenge: %w", err)
	}
	if err := challenge.Validate(); err != nil {
		return nil, fmt.Errorf("generated challenge rejected: %w", err)
	}

	return challenge, nil
}
