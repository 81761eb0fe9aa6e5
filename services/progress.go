package services

import (
	"context"
	"math"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/sdr_trainer/dto"
	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
	log "github.com/sirupsen/logrus"
)

const (
	PROGRESS_SVC = "progress_svc"

	XPPerLevel = 1000

	masteryAccuracy  = 90
	masteryQuestions = 5

	studyDateLayout = "2006-01-02"
)

// ProgressService is the gamification engine: XP, level, streak, accuracy,
// category mastery and badges.
type ProgressService struct {
	appContext.DefaultService

	store    Store
	badges   map[string]model.Badge
	now      func() time.Time
	recorder QuizRecorder

	mu sync.Mutex
}

func (svc *ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Configure(ctx *appContext.Context) error {
	svc.now = time.Now
	svc.recorder = noopRecorder{}
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressService) Start() error {
	svc.store = svc.Service(STORE_SVC).(Store)
	svc.badges = svc.Service(CONTENT_SVC).(*ContentService).BadgeCatalog()
	if m, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok && m != nil {
		svc.recorder = m
	}
	return nil
}

// NewProgressService builds an engine outside the service container.
// A nil now uses the wall clock.
func NewProgressService(store Store, badges map[string]model.Badge, now func() time.Time) *ProgressService {
	if now == nil {
		now = time.Now
	}
	return &ProgressService{
		store:    store,
		badges:   badges,
		now:      now,
		recorder: noopRecorder{},
	}
}

// Progress returns the stored snapshot, or the default record when nothing
// usable is stored.
func (svc *ProgressService) Progress(ctx context.Context) (*model.UserProgress, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.load(ctx)
}

// RecordAnswer applies one answered question to the learner's progress and
// persists the result in a single write.
func (svc *ProgressService) RecordAnswer(ctx context.Context, points int, category string, isCorrect bool) (*dto.RecordAnswerResponse, error) {
	if points < 0 {
		points = 0
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	progress, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	now := svc.now()
	previousLevel := progress.Level

	progress.QuestionsAnswered++
	cat := progress.CategoriesProgress[category]
	cat.QuestionsAnswered++
	if isCorrect {
		progress.TotalXP += points
		progress.CorrectAnswers++
		cat.XPEarned += points
		cat.CorrectAnswers++
	}

	progress.Accuracy = accuracyPercent(progress.CorrectAnswers, progress.QuestionsAnswered)
	cat.Accuracy = accuracyPercent(cat.CorrectAnswers, cat.QuestionsAnswered)
	cat.Mastered = cat.Accuracy >= masteryAccuracy && cat.QuestionsAnswered >= masteryQuestions
	progress.CategoriesProgress[category] = cat

	progress.Level = levelForXP(progress.TotalXP)
	leveledUp := progress.Level > previousLevel

	updateStreak(progress, now)

	earned := evaluateBadges(progress, svc.badges, now)

	if err := saveRecord(ctx, svc.store, shared.ProgressStoreKey, progress); err != nil {
		return nil, svc.storeError(err)
	}

	svc.recorder.AnswerRecorded(category, isCorrect)
	if leveledUp {
		svc.recorder.LevelUp()
		log.WithFields(log.Fields{"level": progress.Level, "total_xp": progress.TotalXP}).Info("Level up")
	}
	for _, b := range earned {
		svc.recorder.BadgeUnlocked(b.ID)
		log.WithField("badge", b.ID).Info("Badge unlocked")
	}

	return &dto.RecordAnswerResponse{
		LeveledUp:    leveledUp,
		EarnedBadges: earned,
	}, nil
}

// Reset replaces the stored snapshot with the default record.
func (svc *ProgressService) Reset(ctx context.Context) (*model.UserProgress, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	progress := model.NewUserProgress(shared.Categories)
	if err := saveRecord(ctx, svc.store, shared.ProgressStoreKey, progress); err != nil {
		return nil, svc.storeError(err)
	}
	return progress, nil
}

func (svc *ProgressService) Summary(ctx context.Context) (*dto.ProgressSummaryResponse, error) {
	progress, err := svc.Progress(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProgressSummaryResponse{
		Progress:       progress,
		CurrentLevelXP: progress.TotalXP - (progress.Level-1)*XPPerLevel,
		XPToNextLevel:  progress.Level*XPPerLevel - progress.TotalXP,
		RecentBadges:   progress.RecentBadges(3),
	}, nil
}

func (svc *ProgressService) load(ctx context.Context) (*model.UserProgress, error) {
	progress := &model.UserProgress{}
	found, err := loadRecord(ctx, svc.store, shared.ProgressStoreKey, progress)
	if err != nil {
		return nil, svc.storeError(err)
	}
	if !found {
		return model.NewUserProgress(shared.Categories), nil
	}

	if progress.CategoriesProgress == nil {
		progress.CategoriesProgress = make(map[string]model.CategoryProgress, len(shared.Categories))
	}
	for _, category := range shared.Categories {
		if _, ok := progress.CategoriesProgress[category]; !ok {
			progress.CategoriesProgress[category] = model.CategoryProgress{}
		}
	}
	if progress.Badges == nil {
		progress.Badges = []model.Badge{}
	}
	if progress.Level < 1 {
		progress.Level = levelForXP(progress.TotalXP)
	}
	return progress, nil
}

func (svc *ProgressService) storeError(err error) error {
	log.WithError(err).Error("Progress store failure")
	return shared.NewInternalError(err, "Failed to persist progress")
}

// updateStreak compares calendar dates in now's location.
func updateStreak(progress *model.UserProgress, now time.Time) {
	today := now.Format(studyDateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(studyDateLayout)

	switch progress.LastStudyDate {
	case today:
	case yesterday:
		progress.Streak++
	default:
		progress.Streak = 1
	}

	if progress.Streak > progress.LongestStreak {
		progress.LongestStreak = progress.Streak
	}
	progress.LastStudyDate = today
}

func accuracyPercent(correct, answered int) int {
	if answered <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(answered) * 100))
}

func levelForXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/XPPerLevel + 1
}
