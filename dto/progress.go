package dto

import "github.com/lac-hong-legacy/sdr_trainer/model"

type RecordAnswerRequest struct {
	Points    int    `json:"points" validate:"gte=0"`
	Category  string `json:"category" validate:"required,category"`
	IsCorrect *bool  `json:"is_correct" validate:"required"`
}

type RecordAnswerResponse struct {
	LeveledUp    bool          `json:"leveled_up"`
	EarnedBadges []model.Badge `json:"earned_badges"`
}

// ProgressSummaryResponse is the dashboard view of the learner's progress.
type ProgressSummaryResponse struct {
	Progress       *model.UserProgress `json:"progress"`
	CurrentLevelXP int                 `json:"current_level_xp"`
	XPToNextLevel  int                 `json:"xp_to_next_level"`
	RecentBadges   []model.Badge       `json:"recent_badges"`
}
