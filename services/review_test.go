package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

func TestScheduleOffset(t *testing.T) {
	day := 24 * time.Hour
	cases := map[int]time.Duration{
		-1: 1 * day,
		0:  1 * day,
		1:  1 * day,
		2:  3 * day,
		3:  7 * day,
		4:  14 * day,
		5:  30 * day,
		6:  30 * day,
		40: 30 * day,
	}
	for count, want := range cases {
		if got := ScheduleOffset(count); got != want {
			t.Fatalf("ScheduleOffset(%d) = %v, want %v", count, got, want)
		}
	}
}

func TestRecordMiss_NewThenRepeat(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	svc := NewReviewService(NewMemoryStore(), clock.Now)

	first, err := svc.RecordMiss(ctx, "q1", model.IndexAnswer(3))
	if err != nil {
		t.Fatalf("RecordMiss: %v", err)
	}
	if first.MissedCount != 1 || !first.LastMissed.Equal(clock.Now()) {
		t.Fatalf("unexpected first miss: %+v", first)
	}
	if want := clock.Now().AddDate(0, 0, 1); !first.NextReviewDate.Equal(want) {
		t.Fatalf("next review = %v, want %v", first.NextReviewDate, want)
	}

	clock.AddDays(2)
	second, err := svc.RecordMiss(ctx, "q1", model.IndexAnswer(0))
	if err != nil {
		t.Fatalf("RecordMiss: %v", err)
	}
	if second.MissedCount != 2 || !second.IncorrectAnswer.Equal(model.IndexAnswer(0)) {
		t.Fatalf("unexpected repeat miss: %+v", second)
	}
	if want := clock.Now().AddDate(0, 0, 3); !second.NextReviewDate.Equal(want) {
		t.Fatalf("next review = %v, want %v", second.NextReviewDate, want)
	}

	all, _ := svc.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one record, got %d", len(all))
	}
}

func TestQuestionsDueForReview(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	svc := NewReviewService(NewMemoryStore(), clock.Now)

	start := clock.Now()
	svc.RecordMiss(ctx, "q1", model.IndexAnswer(1))
	svc.RecordMiss(ctx, "q2", model.IndexAnswer(1))
	svc.RecordMiss(ctx, "q2", model.IndexAnswer(2))

	due, err := svc.QuestionsDueForReview(ctx, start)
	if err != nil {
		t.Fatalf("QuestionsDueForReview: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("nothing should be due immediately, got %d", len(due))
	}

	due, _ = svc.QuestionsDueForReview(ctx, start.AddDate(0, 0, 1))
	if len(due) != 1 || due[0].QuestionID != "q1" {
		t.Fatalf("expected q1 due at its exact review time, got %+v", due)
	}

	due, _ = svc.QuestionsDueForReview(ctx, start.AddDate(0, 0, 3))
	if len(due) != 2 || due[0].QuestionID != "q1" || due[1].QuestionID != "q2" {
		t.Fatalf("expected both due in record order, got %+v", due)
	}
}

func TestMarkReviewed(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	svc := NewReviewService(NewMemoryStore(), clock.Now)

	svc.RecordMiss(ctx, "q1", model.IndexAnswer(1))
	svc.RecordMiss(ctx, "q2", model.IndexAnswer(1))
	before, _ := svc.List(ctx)

	clock.AddDays(1)
	if err := svc.MarkReviewed(ctx, "q2", false); err != nil {
		t.Fatalf("MarkReviewed(false): %v", err)
	}
	after, _ := svc.List(ctx)
	q2 := after[1]
	if q2.MissedCount != 2 {
		t.Fatalf("missed count = %d, want 2", q2.MissedCount)
	}
	if !q2.IncorrectAnswer.Equal(model.PlaceholderAnswer()) {
		t.Fatalf("expected placeholder answer, got %v", q2.IncorrectAnswer)
	}
	if !q2.NextReviewDate.After(before[1].NextReviewDate) {
		t.Fatalf("incorrect review should push the next review later")
	}

	if err := svc.MarkReviewed(ctx, "q1", true); err != nil {
		t.Fatalf("MarkReviewed(true): %v", err)
	}
	after, _ = svc.List(ctx)
	if len(after) != 1 || after[0].QuestionID != "q2" {
		t.Fatalf("correct review should remove q1, got %+v", after)
	}

	if err := svc.MarkReviewed(ctx, "unknown", true); err != nil {
		t.Fatalf("correct review of an untracked question should be a no-op: %v", err)
	}
}

func TestMarkReviewed_IncorrectOnUntrackedCreatesRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(NewMemoryStore(), newTestClock().Now)

	if err := svc.MarkReviewed(ctx, "q9", false); err != nil {
		t.Fatalf("MarkReviewed: %v", err)
	}
	all, _ := svc.List(ctx)
	if len(all) != 1 || all[0].MissedCount != 1 {
		t.Fatalf("expected a fresh record, got %+v", all)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	svc := NewReviewService(NewMemoryStore(), clock.Now)

	stats, err := svc.Stats(ctx, clock.Now())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalMissed != 0 || stats.DueForReview != 0 || stats.AverageMissedCount != 0 {
		t.Fatalf("empty stats = %+v", stats)
	}

	svc.RecordMiss(ctx, "q1", model.IndexAnswer(1))
	svc.RecordMiss(ctx, "q2", model.IndexAnswer(1))
	svc.RecordMiss(ctx, "q3", model.IndexAnswer(1))
	svc.RecordMiss(ctx, "q3", model.IndexAnswer(1))

	stats, _ = svc.Stats(ctx, clock.Now().AddDate(0, 0, 1))
	if stats.TotalMissed != 3 || stats.DueForReview != 2 || stats.AverageMissedCount != 1.3 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(NewMemoryStore(), newTestClock().Now)

	svc.RecordMiss(ctx, "q1", model.IndexAnswer(1))
	if err := svc.Remove(ctx, "q1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	err := svc.Remove(ctx, "q1")
	if !errors.Is(err, ErrMissedQuestionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if appErr, ok := shared.GetAppError(err); !ok || appErr.StatusCode != 404 {
		t.Fatalf("expected 404 AppError, got %v", err)
	}
}

func TestReview_CorruptBlobIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Set(ctx, shared.MissedStoreKey, `{"oops":`)
	svc := NewReviewService(store, newTestClock().Now)

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty queue, got %d", len(all))
	}
}

func TestReview_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	clock := newTestClock()

	NewReviewService(store, clock.Now).RecordMiss(ctx, "q1", model.TextAnswer("wrong"))

	all, err := NewReviewService(store, clock.Now).List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 || !all[0].IncorrectAnswer.Equal(model.TextAnswer("wrong")) {
		t.Fatalf("record not restored: %+v", all)
	}
	if !all[0].NextReviewDate.Equal(clock.Now().AddDate(0, 0, 1)) {
		t.Fatalf("next review date not restored: %v", all[0].NextReviewDate)
	}
}
