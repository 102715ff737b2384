package models

import (
	"encoding/json"
	"testing"
)

func TestChallengeUnmarshalPayloads(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, ch Challenge)
	}{
		{
			name: "email challenge carries a structured payload",
			raw:  `{"type":"email","title":"KYC Update","description":"Read the email","data":{"from":"support@hdfc-verify.net","subject":"Urgent KYC","body":"Click here"},"options":["a","b","c","d"],"correctAnswer":"a","explanation":"x","difficulty":"Easy"}`,
			check: func(t *testing.T, ch Challenge) {
				if ch.Email == nil {
					t.Fatal("email payload not decoded")
				}
				if ch.Email.From != "support@hdfc-verify.net" {
					t.Errorf("From = %q", ch.Email.From)
				}
				if ch.Scenario != "" || ch.Link != "" {
					t.Error("other payload arms should be empty")
				}
			},
		},
		{
			name: "link challenge carries a URL string",
			raw:  `{"type":"link","title":"Spot the fake","description":"Check the URL","data":"http://secure-login-sbi.xyz/verify","options":["a","b","c","d"],"correctAnswer":"b","explanation":"x","difficulty":"Medium"}`,
			check: func(t *testing.T, ch Challenge) {
				if ch.Link != "http://secure-login-sbi.xyz/verify" {
					t.Errorf("Link = %q", ch.Link)
				}
				if ch.Email != nil || ch.Scenario != "" {
					t.Error("other payload arms should be empty")
				}
			},
		},
		{
			name: "scenario challenge carries narrative text",
			raw:  `{"type":"scenario","title":"The call","description":"Decide what to do","data":"You get a call claiming to be from the CBI.","options":["a","b","c","d"],"correctAnswer":"c","explanation":"x","difficulty":"Hard"}`,
			check: func(t *testing.T, ch Challenge) {
				if ch.Scenario != "You get a call claiming to be from the CBI." {
					t.Errorf("Scenario = %q", ch.Scenario)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ch Challenge
			if err := json.Unmarshal([]byte(tt.raw), &ch); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if err := ch.Validate(); err != nil {
				t.Fatalf("validate: %v", err)
			}
			tt.check(t, ch)
		})
	}
}

func TestChallengeMarshalRoundTrip(t *testing.T) {
	ch := Challenge{
		Type:        ChallengeEmail,
		Title:       "KYC Update",
		Description: "Read the email",
		Email: &EmailPayload{
			From:    "support@hdfc-verify.net",
			Subject: "Urgent KYC",
			Body:    "Click here",
		},
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "a",
		Explanation:   "x",
		Difficulty:    DifficultyEasy,
	}

	raw, err := json.Marshal(ch)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Challenge
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Email == nil || decoded.Email.Subject != "Urgent KYC" {
		t.Errorf("payload lost in round trip: %+v", decoded)
	}
}

func TestChallengeValidate(t *testing.T) {
	valid := Challenge{
		Type:          ChallengeLink,
		Title:         "t",
		Description:   "d",
		Link:          "http://example.com",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "a",
		Explanation:   "e",
		Difficulty:    DifficultyEasy,
	}

	tests := []struct {
		name    string
		mutate  func(ch *Challenge)
		wantErr bool
	}{
		{name: "valid", mutate: func(ch *Challenge) {}, wantErr: false},
		{name: "unknown type", mutate: func(ch *Challenge) { ch.Type = "quiz" }, wantErr: true},
		{name: "missing title", mutate: func(ch *Challenge) { ch.Title = "" }, wantErr: true},
		{name: "three options", mutate: func(ch *Challenge) { ch.Options = ch.Options[:3] }, wantErr: true},
		{name: "five options", mutate: func(ch *Challenge) { ch.Options = append(ch.Options, "e") }, wantErr: true},
		{name: "answer not in options", mutate: func(ch *Challenge) { ch.CorrectAnswer = "z" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := valid
			ch.Options = append([]string{}, valid.Options...)
			tt.mutate(&ch)
			err := ch.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
