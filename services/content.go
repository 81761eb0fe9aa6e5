// services/content.go
package services

import (
	"errors"
	"fmt"

	appContext "github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/sdr_trainer/dto"
	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/seed/seeders"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
	log "github.com/sirupsen/logrus"
)

// ContentService owns the static question and badge catalog.
type ContentService struct {
	appContext.DefaultService

	questions    []model.Question
	questionByID map[string]int
	badges       []model.Badge
	badgeByID    map[string]model.Badge
}

const CONTENT_SVC = "content_svc"

var ErrQuestionNotFound = errors.New("question not found")

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Configure(ctx *appContext.Context) error {
	if svc.questions == nil {
		if err := svc.load(seeders.NewQuestionSeeder().GetQuestions(), seeders.NewBadgeSeeder().GetBadges()); err != nil {
			return err
		}
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *ContentService) Start() error {
	log.WithFields(log.Fields{
		"questions": len(svc.questions),
		"badges":    len(svc.badges),
	}).Info("Catalog loaded")
	return nil
}

// NewContentService builds a catalog from explicit data.
func NewContentService(questions []model.Question, badges []model.Badge) (*ContentService, error) {
	svc := &ContentService{}
	if err := svc.load(questions, badges); err != nil {
		return nil, err
	}
	return svc, nil
}

func (svc *ContentService) load(questions []model.Question, badges []model.Badge) error {
	validate := dto.GetValidator()

	questionByID := make(map[string]int, len(questions))
	for i := range questions {
		q := &questions[i]
		if err := validate.Struct(q); err != nil {
			return fmt.Errorf("question %q: %w", q.ID, err)
		}
		if _, dup := questionByID[q.ID]; dup {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		if idx, ok := q.CorrectAnswer.Index(); ok && len(q.Options) > 0 {
			if idx < 0 || idx >= len(q.Options) {
				return fmt.Errorf("question %q: correct answer %d outside %d options", q.ID, idx, len(q.Options))
			}
		}
		questionByID[q.ID] = i
	}

	badgeByID := make(map[string]model.Badge, len(badges))
	for _, b := range badges {
		if err := validate.Struct(b); err != nil {
			return fmt.Errorf("badge %q: %w", b.ID, err)
		}
		if _, dup := badgeByID[b.ID]; dup {
			return fmt.Errorf("duplicate badge id %q", b.ID)
		}
		b.UnlockedAt = nil
		badgeByID[b.ID] = b
	}

	svc.questions = questions
	svc.questionByID = questionByID
	svc.badges = badges
	svc.badgeByID = badgeByID
	return nil
}

// Questions returns catalog questions matching filter, in catalog order.
func (svc *ContentService) Questions(filter dto.QuestionFilter) []model.Question {
	out := make([]model.Question, 0, len(svc.questions))
	for _, q := range svc.questions {
		if filter.Category != "" && q.Category != filter.Category {
			continue
		}
		if filter.Difficulty != "" && q.Difficulty != filter.Difficulty {
			continue
		}
		out = append(out, q)
	}
	return out
}

func (svc *ContentService) Question(id string) (*model.Question, error) {
	idx, ok := svc.questionByID[id]
	if !ok {
		return nil, shared.NewNotFoundError(ErrQuestionNotFound, "Question not found")
	}
	q := svc.questions[idx]
	return &q, nil
}

func (svc *ContentService) Badges() []model.Badge {
	out := make([]model.Badge, len(svc.badges))
	copy(out, svc.badges)
	return out
}

// BadgeCatalog returns the badge definitions keyed by id.
func (svc *ContentService) BadgeCatalog() map[string]model.Badge {
	out := make(map[string]model.Badge, len(svc.badgeByID))
	for id, b := range svc.badgeByID {
		out[id] = b
	}
	return out
}

func (svc *ContentService) Summary() dto.CatalogSummary {
	summary := dto.CatalogSummary{
		Questions:     len(svc.questions),
		Badges:        len(svc.badges),
		PerCategory:   make(map[string]int, len(shared.Categories)),
		PerDifficulty: make(map[string]int, len(shared.Difficulties)),
	}
	for _, q := range svc.questions {
		summary.PerCategory[q.Category]++
		summary.PerDifficulty[q.Difficulty]++
	}
	return summary
}
