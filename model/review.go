package model

import "time"

// MissedQuestion tracks a question the learner got wrong and when it is due
// for another attempt.
type MissedQuestion struct {
	QuestionID      string    `json:"question_id"`
	IncorrectAnswer Answer    `json:"incorrect_answer"`
	MissedCount     int       `json:"missed_count"`
	LastMissed      time.Time `json:"last_missed"`
	NextReviewDate  time.Time `json:"next_review_date"`
}

func (m MissedQuestion) IsDue(now time.Time) bool {
	return !m.NextReviewDate.After(now)
}
