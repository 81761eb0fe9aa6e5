package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/lac-hong-legacy/sdr_trainer/dto"
	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/seed/seeders"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

func TestContent_SeedCatalogIsValid(t *testing.T) {
	content := testContent(t)

	summary := content.Summary()
	if summary.Questions != 5 || summary.Badges != 4 {
		t.Fatalf("unexpected catalog size: %+v", summary)
	}
	if summary.PerDifficulty[shared.DifficultyAdvanced] != 1 {
		t.Fatalf("expected one advanced question, got %d", summary.PerDifficulty[shared.DifficultyAdvanced])
	}

	catalog := content.BadgeCatalog()
	for _, id := range []string{shared.BadgeFirstSteps, shared.BadgeStreakMaster, shared.BadgeSecurityExpert, shared.BadgePerfectScore} {
		b, ok := catalog[id]
		if !ok {
			t.Fatalf("badge %s missing", id)
		}
		if b.UnlockedAt != nil {
			t.Fatalf("catalog badge %s must not be unlocked", id)
		}
	}
}

func TestContent_QuestionsFilter(t *testing.T) {
	content := testContent(t)

	got := content.Questions(dto.QuestionFilter{Category: shared.CategorySecurity})
	if len(got) != 1 || got[0].ID != "github-advanced-security" {
		t.Fatalf("unexpected security questions: %+v", got)
	}
	got = content.Questions(dto.QuestionFilter{Category: shared.CategoryDevOps, Difficulty: shared.DifficultyAdvanced})
	if len(got) != 0 {
		t.Fatalf("expected no devops advanced questions, got %d", len(got))
	}
	if len(content.Questions(dto.QuestionFilter{})) != 5 {
		t.Fatalf("empty filter should return the whole catalog")
	}
}

func TestContent_QuestionLookup(t *testing.T) {
	content := testContent(t)

	q, err := content.Question("copilot-enterprise")
	if err != nil {
		t.Fatalf("Question: %v", err)
	}
	if q.Points != 150 || q.Category != shared.CategoryAIFeatures {
		t.Fatalf("unexpected question: %+v", q)
	}
	if _, err := content.Question("nope"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestContent_RejectsInvalidCatalog(t *testing.T) {
	badges := seeders.NewBadgeSeeder().GetBadges()

	dup := seeders.NewQuestionSeeder().GetQuestions()
	dup[1].ID = dup[0].ID
	if _, err := NewContentService(dup, badges); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}

	outOfRange := seeders.NewQuestionSeeder().GetQuestions()
	outOfRange[0].CorrectAnswer = model.IndexAnswer(7)
	if _, err := NewContentService(outOfRange, badges); err == nil {
		t.Fatalf("expected out of range answer to be rejected")
	}

	badCategory := seeders.NewQuestionSeeder().GetQuestions()
	badCategory[0].Category = "marketing"
	if _, err := NewContentService(badCategory, badges); err == nil {
		t.Fatalf("expected unknown category to be rejected")
	}

	badRarity := seeders.NewBadgeSeeder().GetBadges()
	badRarity[0].Rarity = "mythic"
	if _, err := NewContentService(seeders.NewQuestionSeeder().GetQuestions(), badRarity); err == nil {
		t.Fatalf("expected unknown rarity to be rejected")
	}
}
