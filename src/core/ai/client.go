package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Models served through OpenRouter.
const (
	QuestionModel = "arcee-ai/trinity-large-preview:free"
	ChatModel     = "stepfun/step-3.5-flash:free"
)

const defaultBaseURL = "https://openrouter.ai/api/v1/chat/completions"

// ErrNoAPIKey is returned when no provider credential is configured.
var ErrNoAPIKey = errors.New("OPENROUTER_API_KEY is not set")

// UpstreamError reports a non-success response from the completion provider.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("OpenRouter API error (status %d): %s", e.Status, e.Body)
}

// Client is a thin client for the OpenRouter chat-completion API. Calls block
// until the provider responds or the connection fails; there is no retry.
type Client struct {
	APIKey     string
	AppURL     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string, appURL string) *Client {
	return &Client{
		APIKey:     apiKey,
		AppURL:     appURL,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete submits one system+user exchange and returns the assistant text.
// When jsonMode is set the provider is asked for a strict JSON object reply.
func (c *Client) Complete(model string, systemPrompt string, userPrompt string, jsonMode bool) (string, error) {
	if c.APIKey == "" {
		return "", ErrNoAPIKey
	}

	reqBody := completionRequest{
		Model: model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}
	if jsonMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", c.AppURL)
	req.Header.Set("X-Title", "Cyber Awareness App")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", &UpstreamError{Status: resp.StatusCode, Body: "unparsable completion response"}
	}
	if len(completion.Choices) == 0 {
		return "", &UpstreamError{Status: resp.StatusCode, Body: "completion response has no choices"}
	}

	return completion.Choices[0].Message.Content, nil
}
