package authentication

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/wolf6905/CCG3/src/core/models"
)

func TestIssueToken(t *testing.T) {
	secret := "test-secret"
	user := models.NewUser("alice", "hashed")

	tokenString, err := IssueToken(&user, secret)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse issued token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if claims["sub"] != user.ID.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], user.ID)
	}
	if claims["username"] != "alice" {
		t.Errorf("username = %v, want alice", claims["username"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("GetExpirationTime: %v", err)
	}
	ttl := time.Until(exp.Time)
	if ttl <= 23*time.Hour || ttl > 24*time.Hour {
		t.Errorf("token ttl = %v, want about 24h", ttl)
	}
}

func TestIssueTokenRejectedWithWrongSecret(t *testing.T) {
	user := models.NewUser("alice", "hashed")

	tokenString, err := IssueToken(&user, "right-secret")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	_, err = jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil {
		t.Error("token verified with the wrong secret")
	}
}

func TestNewUserDefaults(t *testing.T) {
	user := models.NewUser("bob", "hashed")

	if user.XP != 0 || user.TotalScore != 0 || user.GamesPlayed != 0 || user.ConsecutiveCorrect != 0 {
		t.Errorf("numeric fields not zeroed: %+v", user)
	}
	if user.Level != models.LevelRookie {
		t.Errorf("Level = %q, want %q", user.Level, models.LevelRookie)
	}
	if user.DifficultyLevel != models.DifficultyEasy {
		t.Errorf("DifficultyLevel = %q, want %q", user.DifficultyLevel, models.DifficultyEasy)
	}
	if len(user.CompletedGuides) != 0 || len(user.Badges) != 0 {
		t.Errorf("guide/badge sets not empty: %+v", user)
	}
}

// A registration losing the race on the unique index must be reported as a
// taken username, so the create error has to be recognizable even wrapped.
func TestDuplicateUsernameDetection(t *testing.T) {
	if !duplicateUsername(gorm.ErrDuplicatedKey) {
		t.Error("duplicated-key error not detected")
	}
	if !duplicateUsername(fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey)) {
		t.Error("wrapped duplicated-key error not detected")
	}
	if duplicateUsername(errors.New("connection reset")) {
		t.Error("unrelated error reported as duplicate username")
	}
	if duplicateUsername(nil) {
		t.Error("nil error reported as duplicate username")
	}
}
