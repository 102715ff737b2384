package challenges

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wolf6905/CCG3/src/core/ai"
	"github.com/wolf6905/CCG3/src/core/models"
)

// completionServer returns an httptest server answering like the OpenRouter
// chat-completion endpoint with the given message content.
func completionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer credential, got %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":"upstream failure"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
}

func testClient(server *httptest.Server) *ai.Client {
	client := ai.NewClient("test-key", "http://localhost:3000")
	client.BaseURL = server.URL
	return client
}

func TestGenerateParsesChallenge(t *testing.T) {
	challengeJSON := `{"type":"link","title":"Spot the fake","description":"Check the URL","data":"http://secure-login-sbi.xyz","options":["a","b","c","d"],"correctAnswer":"b","explanation":"Fake domain","difficulty":"Medium"}`
	server := completionServer(t, http.StatusOK, challengeJSON)
	defer server.Close()

	h := NewHandler(testClient(server))
	challenge, err := h.Generate(models.DifficultyMedium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if challenge.Type != models.ChallengeLink {
		t.Errorf("Type = %q, want link", challenge.Type)
	}
	if challenge.Link != "http://secure-login-sbi.xyz" {
		t.Errorf("Link = %q", challenge.Link)
	}
	if len(challenge.Options) != 4 {
		t.Errorf("got %d options, want 4", len(challenge.Options))
	}
}

func TestGenerateNoCredential(t *testing.T) {
	h := NewHandler(ai.NewClient("", "http://localhost:3000"))

	_, err := h.Generate(models.DifficultyEasy)
	if !errors.Is(err, ai.ErrNoAPIKey) {
		t.Errorf("err = %v, want ErrNoAPIKey", err)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	server := completionServer(t, http.StatusBadGateway, "")
	defer server.Close()

	h := NewHandler(testClient(server))
	_, err := h.Generate(models.DifficultyEasy)

	var upstream *ai.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if upstream.Status != http.StatusBadGateway {
		t.Errorf("Status = %d, want 502", upstream.Status)
	}
}

func TestGenerateRejectsMalformedContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "Sure! Here is your challenge:"},
		{name: "wrong option count", content: `{"type":"link","title":"t","description":"d","data":"u","options":["a","b"],"correctAnswer":"a","explanation":"e","difficulty":"Easy"}`},
		{name: "answer outside options", content: `{"type":"link","title":"t","description":"d","data":"u","options":["a","b","c","d"],"correctAnswer":"z","explanation":"e","difficulty":"Easy"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := completionServer(t, http.StatusOK, tt.content)
			defer server.Close()

			h := NewHandler(testClient(server))
			if _, err := h.Generate(models.DifficultyEasy); err == nil {
				t.Error("Generate accepted malformed provider output")
			}
		})
	}
}
