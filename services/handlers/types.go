package handlers

import (
	"context"
	"time"

	"github.com/lac-hong-legacy/sdr_trainer/dto"
	"github.com/lac-hong-legacy/sdr_trainer/model"
)

type ContentServiceInterface interface {
	Questions(filter dto.QuestionFilter) []model.Question
	Question(id string) (*model.Question, error)
	Badges() []model.Badge
}

type ProgressServiceInterface interface {
	Summary(ctx context.Context) (*dto.ProgressSummaryResponse, error)
	RecordAnswer(ctx context.Context, points int, category string, isCorrect bool) (*dto.RecordAnswerResponse, error)
	Reset(ctx context.Context) (*model.UserProgress, error)
}

type ReviewServiceInterface interface {
	Now() time.Time
	List(ctx context.Context) ([]model.MissedQuestion, error)
	QuestionsDueForReview(ctx context.Context, now time.Time) ([]model.MissedQuestion, error)
	Stats(ctx context.Context, now time.Time) (*dto.ReviewStatsResponse, error)
	RecordMiss(ctx context.Context, questionID string, incorrectAnswer model.Answer) (*model.MissedQuestion, error)
	MarkReviewed(ctx context.Context, questionID string, wasCorrect bool) error
	Remove(ctx context.Context, questionID string) error
}

type SessionServiceInterface interface {
	StartSession(ctx context.Context, mode, category, difficulty string) (*model.QuizSession, error)
	Session(sessionID string) (*model.QuizSession, error)
	SubmitAnswer(ctx context.Context, sessionID string, answer model.Answer, lang string) (*dto.SubmitAnswerResponse, error)
	Summary(sessionID string) (*dto.SessionSummaryResponse, error)
}
