package model

import "time"

// UserProgress is the persisted gamification record of the single learner.
type UserProgress struct {
	TotalXP            int                         `json:"total_xp"`
	Level              int                         `json:"level"`
	Streak             int                         `json:"streak"`
	LongestStreak      int                         `json:"longest_streak"`
	QuestionsAnswered  int                         `json:"questions_answered"`
	CorrectAnswers     int                         `json:"correct_answers"`
	Accuracy           int                         `json:"accuracy"`
	CategoriesProgress map[string]CategoryProgress `json:"categories_progress"`
	Badges             []Badge                     `json:"badges"`
	LastStudyDate      string                      `json:"last_study_date"`
}

type CategoryProgress struct {
	QuestionsAnswered int  `json:"questions_answered"`
	CorrectAnswers    int  `json:"correct_answers"`
	Accuracy          int  `json:"accuracy"`
	XPEarned          int  `json:"xp_earned"`
	Mastered          bool `json:"mastered"`
}

// Badge is both a catalog entry and, once UnlockedAt is set, a granted award.
type Badge struct {
	ID          string          `json:"id" validate:"required"`
	Name        LocalizedString `json:"name"`
	Description LocalizedString `json:"description"`
	Icon        string          `json:"icon" validate:"required"`
	Rarity      string          `json:"rarity" validate:"required,rarity"`
	UnlockedAt  *time.Time      `json:"unlocked_at,omitempty"`
}

// Unlock returns a copy of the badge stamped with the grant time.
func (b Badge) Unlock(at time.Time) Badge {
	b.UnlockedAt = &at
	return b
}

// NewUserProgress returns the default record with a zeroed entry per category.
func NewUserProgress(categories []string) *UserProgress {
	progress := &UserProgress{
		Level:              1,
		CategoriesProgress: make(map[string]CategoryProgress, len(categories)),
		Badges:             []Badge{},
	}
	for _, category := range categories {
		progress.CategoriesProgress[category] = CategoryProgress{}
	}
	return progress
}

func (p *UserProgress) HasBadge(id string) bool {
	for _, badge := range p.Badges {
		if badge.ID == id {
			return true
		}
	}
	return false
}

// RecentBadges returns up to n of the most recently unlocked badges.
func (p *UserProgress) RecentBadges(n int) []Badge {
	if n <= 0 || len(p.Badges) == 0 {
		return []Badge{}
	}
	start := len(p.Badges) - n
	if start < 0 {
		start = 0
	}
	recent := make([]Badge, len(p.Badges)-start)
	copy(recent, p.Badges[start:])
	return recent
}
