package services

import (
	"time"

	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

type badgeRule struct {
	badgeID string
	met     func(p *model.UserProgress) bool
}

// badgeRules are evaluated in order; simultaneous grants keep this order.
var badgeRules = []badgeRule{
	{
		badgeID: shared.BadgeFirstSteps,
		met:     func(p *model.UserProgress) bool { return p.CorrectAnswers >= 1 },
	},
	{
		badgeID: shared.BadgeStreakMaster,
		met:     func(p *model.UserProgress) bool { return p.Streak >= 7 },
	},
	{
		badgeID: shared.BadgeSecurityExpert,
		met: func(p *model.UserProgress) bool {
			return p.CategoriesProgress[shared.CategorySecurity].Mastered
		},
	},
}

// evaluateBadges appends every newly earned badge to progress and returns
// them. Badges already held and badges absent from catalog are skipped.
func evaluateBadges(progress *model.UserProgress, catalog map[string]model.Badge, now time.Time) []model.Badge {
	earned := []model.Badge{}
	for _, rule := range badgeRules {
		if progress.HasBadge(rule.badgeID) || !rule.met(progress) {
			continue
		}
		badge, ok := catalog[rule.badgeID]
		if !ok {
			continue
		}
		granted := badge.Unlock(now)
		progress.Badges = append(progress.Badges, granted)
		earned = append(earned, granted)
	}
	return earned
}
