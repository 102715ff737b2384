package models

import (
	"encoding/json"
	"fmt"
)

// Challenge shapes.
const (
	ChallengeScenario = "scenario"
	ChallengeEmail    = "email"
	ChallengeLink     = "link"
)

// EmailPayload is the simulated phishing email carried by an email challenge.
type EmailPayload struct {
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Challenge is one generated scam-recognition question. It is ephemeral:
// generated per request and never persisted. The payload is a tagged variant
// keyed by Type — exactly one of Scenario, Email or Link is set.
type Challenge struct {
	Type          string
	Title         string
	Description   string
	Scenario      string
	Email         *EmailPayload
	Link          string
	Options       []string
	CorrectAnswer string
	Explanation   string
	Difficulty    string
}

// challengeWire is the JSON shape exchanged with both the completion provider
// and the client: the payload travels under a single "data" key.
type challengeWire struct {
	Type          string          `json:"type"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Data          json.RawMessage `json:"data"`
	Options       []string        `json:"options"`
	CorrectAnswer string          `json:"correctAnswer"`
	Explanation   string          `json:"explanation"`
	Difficulty    string          `json:"difficulty"`
}

func (ch Challenge) MarshalJSON() ([]byte, error) {
	wire := challengeWire{
		Type:          ch.Type,
		Title:         ch.Title,
		Description:   ch.Description,
		Options:       ch.Options,
		CorrectAnswer: ch.CorrectAnswer,
		Explanation:   ch.Explanation,
		Difficulty:    ch.Difficulty,
	}

	var payload interface{}
	switch ch.Type {
	case ChallengeEmail:
		payload = ch.Email
	case ChallengeLink:
		payload = ch.Link
	default:
		payload = ch.Scenario
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	wire.Data = data

	return json.Marshal(wire)
}

func (ch *Challenge) UnmarshalJSON(raw []byte) error {
	var wire challengeWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return err
	}

	ch.Type = wire.Type
	ch.Title = wire.Title
	ch.Description = wire.Description
	ch.Options = wire.Options
	ch.CorrectAnswer = wire.CorrectAnswer
	ch.Explanation = wire.Explanation
	ch.Difficulty = wire.Difficulty
	ch.Scenario = ""
	ch.Email = nil
	ch.Link = ""

	if len(wire.Data) == 0 {
		return nil
	}

	switch wire.Type {
	case ChallengeEmail:
		email := new(EmailPayload)
		if err := json.Unmarshal(wire.Data, email); err != nil {
			return fmt.Errorf("email challenge data: %w", err)
		}
		ch.Email = email
	case ChallengeLink:
		if err := json.Unmarshal(wire.Data, &ch.Link); err != nil {
			return fmt.Errorf("link challenge data: %w", err)
		}
	default:
		// Scenario payload is the narrative text; tolerate a quoted string or
		// raw text from the provider.
		if err := json.Unmarshal(wire.Data, &ch.Scenario); err != nil {
			ch.Scenario = string(wire.Data)
		}
	}

	return nil
}

// Validate checks the generated challenge before it is served: known shape,
// required text fields, exactly four options and a correct answer that
// literally matches one of them.
func (ch *Challenge) Validate() error {
	switch ch.Type {
	case ChallengeScenario, ChallengeEmail, ChallengeLink:
	default:
		return fmt.Errorf("unknown challenge type %q", ch.Type)
	}

	if ch.Title == "" || ch.Description == "" || ch.Explanation == "" {
		return fmt.Errorf("challenge is missing required fields")
	}

	if len(ch.Options) != 4 {
		return fmt.Errorf("challenge must have exactly 4 options, got %d", len(ch.Options))
	}

	for _, option := range ch.Options {
		if option == ch.CorrectAnswer {
			return nil
		}
	}
	return fmt.Errorf("correct answer does not match any option")
}
