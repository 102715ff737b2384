package progress

import (
	"github.com/lib/pq"

	"github.com/wolf6905/CCG3/src/core/models"
)

// Badge names. A badge is granted once and never revoked.
const (
	BadgeFirstSteps   = "First Steps"
	BadgeCentury      = "Century"
	BadgeCyberScout   = "Cyber Scout"
	BadgeQuickThinker = "Quick Thinker"
	BadgeTripleThreat = "Triple Threat"
)

// GuideReward is the XP and score granted for completing a guide.
const GuideReward = 15

// streakToEscalate is the consecutive-correct count that bumps the
// difficulty one step and resets the counter.
const streakToEscalate = 3

// LevelForXP maps XP to its level label. Thresholds are evaluated
// high-to-low, first match wins.
func LevelForXP(xp int) string {
	switch {
	case xp >= 600:
		return models.LevelGuardian
	case xp >= 300:
		return models.LevelGuard
	case xp >= 100:
		return models.LevelDefender
	default:
		return models.LevelRookie
	}
}

// ApplyGuideCompletion records a guide completion on the user. Completing the
// same guide twice is a no-op: ok is false and the record is unchanged.
func ApplyGuideCompletion(user models.User, guideTitle string) (models.User, bool) {
	if contains(user.CompletedGuides, guideTitle) {
		return user, false
	}

	user.CompletedGuides = appendCopy(user.CompletedGuides, guideTitle)
	user.XP += GuideReward
	user.TotalScore += GuideReward
	user.Level = LevelForXP(user.XP)
	return user, true
}

// ApplyChallengeOutcome advances the user's progression for one answered
// challenge and returns the badges newly unlocked by this call. The input
// record is not mutated.
func ApplyChallengeOutcome(user models.User, correct bool, magnitude int) (models.User, []string) {
	delta := magnitude
	if delta < 0 {
		delta = -delta
	}
	signed := delta
	if !correct {
		signed = -delta
	}

	user.XP += signed
	if user.XP < 0 {
		user.XP = 0
	}
	if signed > 0 {
		user.TotalScore += signed
	}
	user.GamesPlayed++

	if correct {
		user.ConsecutiveCorrect++
	} else {
		user.ConsecutiveCorrect = 0
	}

	// The streak badge below must see the streak before the escalation reset.
	streak := user.ConsecutiveCorrect
	if streak >= streakToEscalate {
		switch user.DifficultyLevel {
		case models.DifficultyEasy:
			user.DifficultyLevel = models.DifficultyMedium
		case models.DifficultyMedium:
			user.DifficultyLevel = models.DifficultyHard
		}
		user.ConsecutiveCorrect = 0
	}

	user.Level = LevelForXP(user.XP)

	newBadges := []string{}
	grant := func(name string) {
		if !contains(user.Badges, name) {
			user.Badges = appendCopy(user.Badges, name)
			newBadges = append(newBadges, name)
		}
	}

	if user.GamesPlayed >= 1 {
		grant(BadgeFirstSteps)
	}
	if user.TotalScore >= 100 {
		grant(BadgeCentury)
	}
	if user.XP >= 50 {
		grant(BadgeCyberScout)
	}
	if correct && delta >= 30 {
		grant(BadgeQuickThinker)
	}
	if streak >= streakToEscalate {
		grant(BadgeTripleThreat)
	}

	return user, newBadges
}

func contains(values pq.StringArray, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

// appendCopy appends to a fresh slice so the caller's record is never
// mutated through a shared backing array.
func appendCopy(values pq.StringArray, extra string) pq.StringArray {
	out := make(pq.StringArray, 0, len(values)+1)
	out = append(out, values...)
	return append(out, extra)
}
