package services

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/sdr_trainer/dto"
	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
	log "github.com/sirupsen/logrus"
)

const REVIEW_SVC = "review_svc"

// ReviewIntervalDays is the spacing between reviews, indexed by
// missedCount-1 and capped at the last entry.
var ReviewIntervalDays = []int{1, 3, 7, 14, 30}

var ErrMissedQuestionNotFound = errors.New("missed question not found")

// ReviewService schedules missed questions for spaced repetition.
type ReviewService struct {
	appContext.DefaultService

	store    Store
	now      func() time.Time
	recorder QuizRecorder

	mu sync.Mutex
}

func (svc *ReviewService) Id() string {
	return REVIEW_SVC
}

func (svc *ReviewService) Configure(ctx *appContext.Context) error {
	svc.now = time.Now
	svc.recorder = noopRecorder{}
	return svc.DefaultService.Configure(ctx)
}

func (svc *ReviewService) Start() error {
	svc.store = svc.Service(STORE_SVC).(Store)
	if m, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok && m != nil {
		svc.recorder = m
	}
	return nil
}

// NewReviewService builds a scheduler outside the service container.
// A nil now uses the wall clock.
func NewReviewService(store Store, now func() time.Time) *ReviewService {
	if now == nil {
		now = time.Now
	}
	return &ReviewService{store: store, now: now, recorder: noopRecorder{}}
}

// ScheduleOffset returns how far after a miss the question is due again.
func ScheduleOffset(missedCount int) time.Duration {
	return time.Duration(reviewIntervalDays(missedCount)) * 24 * time.Hour
}

func reviewIntervalDays(missedCount int) int {
	idx := missedCount - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(ReviewIntervalDays)-1 {
		idx = len(ReviewIntervalDays) - 1
	}
	return ReviewIntervalDays[idx]
}

// RecordMiss creates or bumps the record for questionID.
func (svc *ReviewService) RecordMiss(ctx context.Context, questionID string, incorrectAnswer model.Answer) (*model.MissedQuestion, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.recordMiss(ctx, questionID, incorrectAnswer)
}

func (svc *ReviewService) recordMiss(ctx context.Context, questionID string, incorrectAnswer model.Answer) (*model.MissedQuestion, error) {
	missed, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	now := svc.now()

	idx := indexOfMissed(missed, questionID)
	if idx < 0 {
		missed = append(missed, model.MissedQuestion{QuestionID: questionID})
		idx = len(missed) - 1
	}
	record := &missed[idx]
	record.MissedCount++
	record.IncorrectAnswer = incorrectAnswer
	record.LastMissed = now
	record.NextReviewDate = now.AddDate(0, 0, reviewIntervalDays(record.MissedCount))

	if err := svc.save(ctx, missed); err != nil {
		return nil, err
	}
	svc.recorder.MissRecorded()

	log.WithFields(log.Fields{
		"question_id":  questionID,
		"missed_count": record.MissedCount,
		"next_review":  record.NextReviewDate.Format(time.RFC3339),
	}).Debug("Missed question scheduled")

	out := *record
	return &out, nil
}

// QuestionsDueForReview returns the records due at or before now, in
// stored order.
func (svc *ReviewService) QuestionsDueForReview(ctx context.Context, now time.Time) ([]model.MissedQuestion, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	missed, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	due := []model.MissedQuestion{}
	for _, m := range missed {
		if m.IsDue(now) {
			due = append(due, m)
		}
	}
	return due, nil
}

// MarkReviewed removes the record on a correct review. An incorrect review
// counts as another miss with a placeholder answer.
func (svc *ReviewService) MarkReviewed(ctx context.Context, questionID string, wasCorrect bool) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if !wasCorrect {
		_, err := svc.recordMiss(ctx, questionID, model.PlaceholderAnswer())
		return err
	}

	missed, err := svc.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOfMissed(missed, questionID)
	if idx < 0 {
		return nil
	}
	if err := svc.save(ctx, append(missed[:idx], missed[idx+1:]...)); err != nil {
		return err
	}
	svc.recorder.ReviewGraduated()
	return nil
}

func (svc *ReviewService) Stats(ctx context.Context, now time.Time) (*dto.ReviewStatsResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	missed, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.ReviewStatsResponse{TotalMissed: len(missed)}
	if len(missed) == 0 {
		return stats, nil
	}

	total := 0
	for _, m := range missed {
		total += m.MissedCount
		if m.IsDue(now) {
			stats.DueForReview++
		}
	}
	stats.AverageMissedCount = math.Round(float64(total)/float64(len(missed))*10) / 10
	return stats, nil
}

// List returns every outstanding record.
func (svc *ReviewService) List(ctx context.Context) ([]model.MissedQuestion, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.load(ctx)
}

// Remove drops a record without reviewing it.
func (svc *ReviewService) Remove(ctx context.Context, questionID string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	missed, err := svc.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOfMissed(missed, questionID)
	if idx < 0 {
		return shared.NewNotFoundError(ErrMissedQuestionNotFound, "Missed question not found")
	}
	return svc.save(ctx, append(missed[:idx], missed[idx+1:]...))
}

// Now reads the scheduler's clock.
func (svc *ReviewService) Now() time.Time {
	return svc.now()
}

func (svc *ReviewService) load(ctx context.Context) ([]model.MissedQuestion, error) {
	var missed []model.MissedQuestion
	found, err := loadRecord(ctx, svc.store, shared.MissedStoreKey, &missed)
	if err != nil {
		return nil, svc.storeError(err)
	}
	if !found || missed == nil {
		return []model.MissedQuestion{}, nil
	}
	return missed, nil
}

func (svc *ReviewService) save(ctx context.Context, missed []model.MissedQuestion) error {
	if err := saveRecord(ctx, svc.store, shared.MissedStoreKey, missed); err != nil {
		return svc.storeError(err)
	}
	return nil
}

func (svc *ReviewService) storeError(err error) error {
	log.WithError(err).Error("Review store failure")
	return shared.NewInternalError(err, "Failed to persist review queue")
}

func indexOfMissed(missed []model.MissedQuestion, questionID string) int {
	for i, m := range missed {
		if m.QuestionID == questionID {
			return i
		}
	}
	return -1
}
