package dto

import "github.com/lac-hong-legacy/sdr_trainer/model"

type RecordMissRequest struct {
	QuestionID      string        `json:"question_id" validate:"required"`
	IncorrectAnswer *model.Answer `json:"incorrect_answer" validate:"required"`
}

type MarkReviewedRequest struct {
	WasCorrect *bool `json:"was_correct" validate:"required"`
}

type ReviewStatsResponse struct {
	TotalMissed        int     `json:"total_missed"`
	DueForReview       int     `json:"due_for_review"`
	AverageMissedCount float64 `json:"average_missed_count"`
}
