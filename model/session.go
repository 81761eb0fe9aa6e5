package model

import "time"

// QuizSession is transient; it lives only as long as the process.
type QuizSession struct {
	ID                   string     `json:"id"`
	Mode                 string     `json:"mode"`
	Questions            []Question `json:"questions"`
	CurrentQuestionIndex int        `json:"current_question_index"`
	Answers              []*Answer  `json:"answers"`
	StartTime            time.Time  `json:"start_time"`
	EndTime              *time.Time `json:"end_time,omitempty"`
	Score                int        `json:"score"`
	XPEarned             int        `json:"xp_earned"`
	CorrectCount         int        `json:"correct_count"`
}

func (s *QuizSession) Completed() bool {
	return s.EndTime != nil
}

func (s *QuizSession) CurrentQuestion() (*Question, bool) {
	if s.Completed() || s.CurrentQuestionIndex >= len(s.Questions) {
		return nil, false
	}
	return &s.Questions[s.CurrentQuestionIndex], true
}
