package services

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/google/uuid"
	"github.com/lac-hong-legacy/sdr_trainer/dto"
	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
	log "github.com/sirupsen/logrus"
)

const SESSION_SVC = "session_svc"

const (
	quickReviewLimit = 5
	deepDiveLimit    = 10
)

var (
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionCompleted     = errors.New("session already completed")
)

// SessionService assembles quiz sessions from the catalog and the review
// queue, and routes each answer to the progress and review engines.
type SessionService struct {
	appContext.DefaultService

	content  *ContentService
	progress *ProgressService
	review   *ReviewService
	recorder QuizRecorder

	now     func() time.Time
	shuffle func([]model.Question)

	mu       sync.Mutex
	sessions map[string]*model.QuizSession
}

func (svc *SessionService) Id() string {
	return SESSION_SVC
}

func (svc *SessionService) Configure(ctx *appContext.Context) error {
	svc.now = time.Now
	svc.shuffle = shuffleQuestions
	svc.recorder = noopRecorder{}
	svc.sessions = make(map[string]*model.QuizSession)
	return svc.DefaultService.Configure(ctx)
}

func (svc *SessionService) Start() error {
	svc.content = svc.Service(CONTENT_SVC).(*ContentService)
	svc.progress = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.review = svc.Service(REVIEW_SVC).(*ReviewService)
	if m, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok && m != nil {
		svc.recorder = m
	}
	return nil
}

// NewSessionService wires the assembler directly. Nil now and shuffle fall
// back to the wall clock and a uniform shuffle.
func NewSessionService(content *ContentService, progress *ProgressService, review *ReviewService, now func() time.Time, shuffle func([]model.Question)) *SessionService {
	if now == nil {
		now = time.Now
	}
	if shuffle == nil {
		shuffle = shuffleQuestions
	}
	return &SessionService{
		content:  content,
		progress: progress,
		review:   review,
		recorder: noopRecorder{},
		now:      now,
		shuffle:  shuffle,
		sessions: make(map[string]*model.QuizSession),
	}
}

func shuffleQuestions(questions []model.Question) {
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}

// StartSession builds and registers a new session. No session is created
// when the selection is empty.
func (svc *SessionService) StartSession(ctx context.Context, mode, category, difficulty string) (*model.QuizSession, error) {
	if !shared.IsStudyMode(mode) {
		return nil, shared.NewBadRequestError(nil, "Unknown study mode")
	}

	now := svc.now()
	pool, err := svc.pool(ctx, mode, now)
	if err != nil {
		return nil, err
	}

	if mode == shared.ModeChallenge {
		difficulty = shared.DifficultyAdvanced
	}

	questions := make([]model.Question, 0, len(pool))
	for _, q := range pool {
		if category != "" && q.Category != category {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		questions = append(questions, q)
	}

	svc.shuffle(questions)
	if limit := sessionLimit(mode); limit > 0 && len(questions) > limit {
		questions = questions[:limit]
	}

	if len(questions) == 0 {
		return nil, shared.NewNotFoundError(ErrNoQuestionsAvailable, "No questions available for this selection")
	}

	session := &model.QuizSession{
		ID:        uuid.NewString(),
		Mode:      mode,
		Questions: questions,
		Answers:   make([]*model.Answer, len(questions)),
		StartTime: now,
	}

	svc.mu.Lock()
	svc.sessions[session.ID] = session
	svc.mu.Unlock()

	svc.recorder.SessionStarted(mode)
	log.WithFields(log.Fields{
		"session_id": session.ID,
		"mode":       mode,
		"questions":  len(questions),
	}).Info("Quiz session started")

	return snapshotSession(session), nil
}

func (svc *SessionService) pool(ctx context.Context, mode string, now time.Time) ([]model.Question, error) {
	all := svc.content.Questions(dto.QuestionFilter{})
	if mode != shared.ModeMissedQuestions {
		return all, nil
	}

	due, err := svc.review.QuestionsDueForReview(ctx, now)
	if err != nil {
		return nil, err
	}
	dueIDs := make(map[string]struct{}, len(due))
	for _, m := range due {
		dueIDs[m.QuestionID] = struct{}{}
	}

	pool := make([]model.Question, 0, len(due))
	for _, q := range all {
		if _, ok := dueIDs[q.ID]; ok {
			pool = append(pool, q)
		}
	}
	return pool, nil
}

func sessionLimit(mode string) int {
	switch mode {
	case shared.ModeQuickReview:
		return quickReviewLimit
	case shared.ModeDeepDive:
		return deepDiveLimit
	}
	return 0
}

// SubmitAnswer grades the answer to the session's current question.
func (svc *SessionService) SubmitAnswer(ctx context.Context, sessionID string, answer model.Answer, lang string) (*dto.SubmitAnswerResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	session, ok := svc.sessions[sessionID]
	if !ok {
		return nil, shared.NewNotFoundError(ErrSessionNotFound, "Session not found")
	}
	question, ok := session.CurrentQuestion()
	if !ok {
		return nil, shared.NewConflictError(ErrSessionCompleted, "Session already completed")
	}

	// Answers[idx] is set once the review step has run for the slot. A retry
	// reuses that answer and only repeats the progress write.
	idx := session.CurrentQuestionIndex
	if recorded := session.Answers[idx]; recorded != nil {
		answer = *recorded
	}
	correct := question.IsCorrect(answer)

	if session.Answers[idx] == nil {
		if session.Mode == shared.ModeMissedQuestions {
			if err := svc.review.MarkReviewed(ctx, question.ID, correct); err != nil {
				return nil, err
			}
		} else if !correct {
			if _, err := svc.review.RecordMiss(ctx, question.ID, answer); err != nil {
				return nil, err
			}
		}
		given := answer
		session.Answers[idx] = &given
	}

	result, err := svc.progress.RecordAnswer(ctx, question.Points, question.Category, correct)
	if err != nil {
		log.WithError(err).WithField("session", sessionID).Warn("Answer reviewed but progress not saved")
		return nil, err
	}

	points := 0
	if correct {
		points = question.Points
		session.Score += points
		session.XPEarned += points
		session.CorrectCount++
	}
	session.CurrentQuestionIndex++
	if session.CurrentQuestionIndex >= len(session.Questions) {
		end := svc.now()
		session.EndTime = &end
	}

	response := &dto.SubmitAnswerResponse{
		IsCorrect:        correct,
		CorrectAnswer:    question.CorrectAnswer,
		Explanation:      question.Explanation.Get(lang),
		UseCase:          question.UseCase.Get(lang),
		PointsAwarded:    points,
		LeveledUp:        result.LeveledUp,
		EarnedBadges:     result.EarnedBadges,
		SessionCompleted: session.Completed(),
		NextIndex:        session.CurrentQuestionIndex,
	}
	if question.CustomerScenario != nil {
		response.CustomerScenario = question.CustomerScenario.Get(lang)
	}
	return response, nil
}

func (svc *SessionService) Session(sessionID string) (*model.QuizSession, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	session, ok := svc.sessions[sessionID]
	if !ok {
		return nil, shared.NewNotFoundError(ErrSessionNotFound, "Session not found")
	}
	return snapshotSession(session), nil
}

func (svc *SessionService) Summary(sessionID string) (*dto.SessionSummaryResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	session, ok := svc.sessions[sessionID]
	if !ok {
		return nil, shared.NewNotFoundError(ErrSessionNotFound, "Session not found")
	}

	end := svc.now()
	if session.EndTime != nil {
		end = *session.EndTime
	}

	accuracy := 0
	if n := len(session.Questions); n > 0 {
		accuracy = int(math.Round(float64(session.CorrectCount) / float64(n) * 100))
	}

	return &dto.SessionSummaryResponse{
		SessionID:      session.ID,
		Mode:           session.Mode,
		TotalQuestions: len(session.Questions),
		Answered:       session.CurrentQuestionIndex,
		CorrectCount:   session.CorrectCount,
		Score:          session.Score,
		XPEarned:       session.XPEarned,
		Accuracy:       accuracy,
		Completed:      session.Completed(),
		Duration:       end.Sub(session.StartTime),
	}, nil
}

// snapshotSession copies the mutable parts so callers never share state
// with the registry.
func snapshotSession(session *model.QuizSession) *model.QuizSession {
	out := *session
	out.Answers = make([]*model.Answer, len(session.Answers))
	copy(out.Answers, session.Answers)
	if session.EndTime != nil {
		end := *session.EndTime
		out.EndTime = &end
	}
	return &out
}
