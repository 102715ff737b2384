package models

// GuideQuiz is the knowledge check attached to a security guide.
type GuideQuiz struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Guide is one static security-awareness guide. Guides are served read-only
// from a fixed catalog; only their completion is recorded on the user.
type Guide struct {
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Difficulty    string    `json:"difficulty"`
	EstimatedTime string    `json:"estimatedTime"`
	Content       string    `json:"content"`
	Tips          []string  `json:"tips"`
	Quiz          GuideQuiz `json:"quiz"`
}
