package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Difficulty levels served to the challenge generator. Escalation only ever
// moves forward: Easy -> Medium -> Hard.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Level labels derived from XP.
const (
	LevelRookie   = "Rookie 🌱"
	LevelDefender = "Defender 🛡️"
	LevelGuard    = "Cyber Guard ⚔️"
	LevelGuardian = "Cyber Guardian 🛡️"
)

// User is the persisted account and progression record. Password never leaves
// storage; Version backs the optimistic-lock update on progression writes.
type User struct {
	ID                 uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	Username           string         `gorm:"column:username;type:text;unique;not null" json:"username"`
	Password           string         `gorm:"column:password;type:text;not null" json:"-"`
	XP                 int            `gorm:"column:xp;type:int;not null;default:0" json:"xp"`
	Level              string         `gorm:"column:level;type:text;not null" json:"level"`
	TotalScore         int            `gorm:"column:total_score;type:int;not null;default:0" json:"total_score"`
	GamesPlayed        int            `gorm:"column:games_played;type:int;not null;default:0" json:"games_played"`
	ConsecutiveCorrect int            `gorm:"column:consecutive_correct;type:int;not null;default:0" json:"consecutive_correct"`
	DifficultyLevel    string         `gorm:"column:difficulty_level;type:text;not null" json:"difficulty_level"`
	CompletedGuides    pq.StringArray `gorm:"column:completed_guides;type:text[]" json:"completed_guides"`
	Badges             pq.StringArray `gorm:"column:badges;type:text[]" json:"badges"`
	AvatarURL          string         `gorm:"column:avatar_url;type:text;not null;default:''" json:"avatar_url"`
	Version            int            `gorm:"column:version;type:int;not null;default:0" json:"-"`
	CreatedAt          time.Time      `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// NewUser returns a fresh account record with the starting progression state.
func NewUser(username string, hashedPassword string) User {
	return User{
		ID:              uuid.New(),
		Username:        username,
		Password:        hashedPassword,
		Level:           LevelRookie,
		DifficultyLevel: DifficultyEasy,
		CompletedGuides: pq.StringArray{},
		Badges:          pq.StringArray{},
	}
}
