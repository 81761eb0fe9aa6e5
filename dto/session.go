package dto

import (
	"time"

	"github.com/lac-hong-legacy/sdr_trainer/model"
)

type StartSessionRequest struct {
	Mode       string `json:"mode" validate:"required,study_mode"`
	Category   string `json:"category,omitempty" validate:"omitempty,category"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,difficulty"`
}

type SubmitAnswerRequest struct {
	Answer   *model.Answer `json:"answer" validate:"required"`
	Language string        `json:"language,omitempty" validate:"omitempty,oneof=en ja"`
}

type SubmitAnswerResponse struct {
	IsCorrect        bool          `json:"is_correct"`
	CorrectAnswer    model.Answer  `json:"correct_answer"`
	Explanation      string        `json:"explanation"`
	UseCase          string        `json:"use_case"`
	CustomerScenario string        `json:"customer_scenario,omitempty"`
	PointsAwarded    int           `json:"points_awarded"`
	LeveledUp        bool          `json:"leveled_up"`
	EarnedBadges     []model.Badge `json:"earned_badges"`
	SessionCompleted bool          `json:"session_completed"`
	NextIndex        int           `json:"next_index"`
}

type SessionSummaryResponse struct {
	SessionID      string        `json:"session_id"`
	Mode           string        `json:"mode"`
	TotalQuestions int           `json:"total_questions"`
	Answered       int           `json:"answered"`
	CorrectCount   int           `json:"correct_count"`
	Score          int           `json:"score"`
	XPEarned       int           `json:"xp_earned"`
	Accuracy       int           `json:"accuracy"`
	Completed      bool          `json:"completed"`
	Duration       time.Duration `json:"duration_ns"`
}
