package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/sdr_trainer/dto"
	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/seed/seeders"
	"github.com/lac-hong-legacy/sdr_trainer/services"
	"github.com/lac-hong-legacy/sdr_trainer/services/handlers"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	now := func() time.Time { return time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC) }

	content, err := services.NewContentService(
		seeders.NewQuestionSeeder().GetQuestions(),
		seeders.NewBadgeSeeder().GetBadges(),
	)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	store := services.NewMemoryStore()
	progress := services.NewProgressService(store, content.BadgeCatalog(), now)
	review := services.NewReviewService(store, now)
	sessions := services.NewSessionService(content, progress, review, now, func([]model.Question) {})

	return handlers.NewApp(handlers.Services{
		Content:  content,
		Progress: progress,
		Review:   review,
		Session:  sessions,
	})
}

func do[T any](t *testing.T, app *fiber.App, method, path, body string) (int, envelope[T]) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out envelope[T]
	if err := shared.Unmarshal(raw, &out); err != nil {
		t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
	}
	return resp.StatusCode, out
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	status, body := do[string](t, app, http.MethodGet, "/ping", "")
	if status != http.StatusOK || body.Data != "pong" {
		t.Fatalf("ping = %d %+v", status, body)
	}
}

func TestQuestions(t *testing.T) {
	app := newTestApp(t)

	status, list := do[[]model.Question](t, app, http.MethodGet, "/api/v1/questions?category=security", "")
	if status != http.StatusOK || len(list.Data) != 1 || list.Data[0].ID != "github-advanced-security" {
		t.Fatalf("filtered questions = %d %+v", status, list.Data)
	}

	status, _ = do[any](t, app, http.MethodGet, "/api/v1/questions?category=marketing", "")
	if status != http.StatusBadRequest {
		t.Fatalf("unknown category status = %d", status)
	}

	status, one := do[model.Question](t, app, http.MethodGet, "/api/v1/questions/copilot-enterprise", "")
	if status != http.StatusOK || !one.Data.CorrectAnswer.Equal(model.IndexAnswer(1)) {
		t.Fatalf("question = %d %+v", status, one.Data)
	}

	status, missing := do[any](t, app, http.MethodGet, "/api/v1/questions/nope", "")
	if status != http.StatusNotFound || missing.Message != "Question not found" {
		t.Fatalf("missing question = %d %+v", status, missing)
	}

	status, badges := do[[]model.Badge](t, app, http.MethodGet, "/api/v1/badges", "")
	if status != http.StatusOK || len(badges.Data) != 4 {
		t.Fatalf("badges = %d %d", status, len(badges.Data))
	}
}

func TestProgressEndpoints(t *testing.T) {
	app := newTestApp(t)

	status, recorded := do[dto.RecordAnswerResponse](t, app, http.MethodPost, "/api/v1/progress/answers",
		`{"points":1000,"category":"devops","is_correct":true}`)
	if status != http.StatusOK || !recorded.Data.LeveledUp || len(recorded.Data.EarnedBadges) != 1 {
		t.Fatalf("record answer = %d %+v", status, recorded.Data)
	}

	status, _ = do[any](t, app, http.MethodPost, "/api/v1/progress/answers", `{"points":10,"category":"devops"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("missing is_correct status = %d", status)
	}

	status, summary := do[dto.ProgressSummaryResponse](t, app, http.MethodGet, "/api/v1/progress", "")
	if status != http.StatusOK || summary.Data.Progress.Level != 2 || summary.Data.XPToNextLevel != 1000 {
		t.Fatalf("summary = %d %+v", status, summary.Data)
	}

	status, reset := do[model.UserProgress](t, app, http.MethodDelete, "/api/v1/progress", "")
	if status != http.StatusOK || reset.Data.TotalXP != 0 {
		t.Fatalf("reset = %d %+v", status, reset.Data)
	}
}

func TestReviewEndpoints(t *testing.T) {
	app := newTestApp(t)

	status, missed := do[model.MissedQuestion](t, app, http.MethodPost, "/api/v1/review/misses",
		`{"question_id":"copilot-enterprise","incorrect_answer":3}`)
	if status != http.StatusCreated || missed.Data.MissedCount != 1 {
		t.Fatalf("record miss = %d %+v", status, missed.Data)
	}

	status, stats := do[dto.ReviewStatsResponse](t, app, http.MethodGet, "/api/v1/review/stats", "")
	if status != http.StatusOK || stats.Data.TotalMissed != 1 || stats.Data.DueForReview != 0 || stats.Data.AverageMissedCount != 1 {
		t.Fatalf("stats = %d %+v", status, stats.Data)
	}

	status, due := do[[]model.MissedQuestion](t, app, http.MethodGet, "/api/v1/review/due", "")
	if status != http.StatusOK || len(due.Data) != 0 {
		t.Fatalf("due = %d %+v", status, due.Data)
	}

	status, _ = do[any](t, app, http.MethodPost, "/api/v1/review/copilot-enterprise/reviewed", `{"was_correct":true}`)
	if status != http.StatusOK {
		t.Fatalf("mark reviewed = %d", status)
	}

	status, list := do[[]model.MissedQuestion](t, app, http.MethodGet, "/api/v1/review", "")
	if status != http.StatusOK || len(list.Data) != 0 {
		t.Fatalf("list = %d %+v", status, list.Data)
	}

	status, _ = do[any](t, app, http.MethodDelete, "/api/v1/review/copilot-enterprise", "")
	if status != http.StatusNotFound {
		t.Fatalf("remove missing = %d", status)
	}
}

func TestSessionEndpoints(t *testing.T) {
	app := newTestApp(t)

	status, started := do[model.QuizSession](t, app, http.MethodPost, "/api/v1/sessions", `{"mode":"challenge"}`)
	if status != http.StatusCreated || len(started.Data.Questions) != 1 {
		t.Fatalf("start = %d %+v", status, started.Data)
	}
	id := started.Data.ID

	status, answered := do[dto.SubmitAnswerResponse](t, app, http.MethodPost, "/api/v1/sessions/"+id+"/answers",
		`{"answer":2,"language":"en"}`)
	if status != http.StatusOK || !answered.Data.IsCorrect || !answered.Data.SessionCompleted || answered.Data.PointsAwarded != 200 {
		t.Fatalf("answer = %d %+v", status, answered.Data)
	}

	status, _ = do[any](t, app, http.MethodPost, "/api/v1/sessions/"+id+"/answers", `{"answer":2}`)
	if status != http.StatusConflict {
		t.Fatalf("answer after completion = %d", status)
	}

	status, summary := do[dto.SessionSummaryResponse](t, app, http.MethodGet, "/api/v1/sessions/"+id+"/summary", "")
	if status != http.StatusOK || summary.Data.Accuracy != 100 || summary.Data.Score != 200 {
		t.Fatalf("summary = %d %+v", status, summary.Data)
	}

	status, _ = do[any](t, app, http.MethodPost, "/api/v1/sessions", `{"mode":"quick-review","category":"migration"}`)
	if status != http.StatusNotFound {
		t.Fatalf("empty selection = %d", status)
	}

	status, _ = do[any](t, app, http.MethodPost, "/api/v1/sessions", `{"mode":"speed-run"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("unknown mode = %d", status)
	}

	status, _ = do[any](t, app, http.MethodGet, "/api/v1/sessions/does-not-exist", "")
	if status != http.StatusNotFound {
		t.Fatalf("unknown session = %d", status)
	}
}

func TestAnswerFieldRequired(t *testing.T) {
	app := newTestApp(t)

	status, started := do[model.QuizSession](t, app, http.MethodPost, "/api/v1/sessions",
		`{"mode":"deep-dive","category":"collaboration"}`)
	if status != http.StatusCreated || len(started.Data.Questions) != 1 ||
		started.Data.Questions[0].ID != "github-enterprise-collaboration" {
		t.Fatalf("start = %d %+v", status, started.Data)
	}
	id := started.Data.ID

	for _, body := range []string{`{}`, `{"language":"en"}`, `{"answer":null}`} {
		status, _ = do[any](t, app, http.MethodPost, "/api/v1/sessions/"+id+"/answers", body)
		if status != http.StatusBadRequest {
			t.Fatalf("submit %s = %d, want 400", body, status)
		}
	}

	status, _ = do[any](t, app, http.MethodPost, "/api/v1/review/misses", `{"question_id":"copilot-enterprise"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("record miss without answer = %d, want 400", status)
	}

	status, summary := do[dto.ProgressSummaryResponse](t, app, http.MethodGet, "/api/v1/progress", "")
	if status != http.StatusOK || summary.Data.Progress.QuestionsAnswered != 0 || summary.Data.Progress.TotalXP != 0 {
		t.Fatalf("progress after rejected answers = %d %+v", status, summary.Data.Progress)
	}

	status, list := do[[]model.MissedQuestion](t, app, http.MethodGet, "/api/v1/review", "")
	if status != http.StatusOK || len(list.Data) != 0 {
		t.Fatalf("review after rejected miss = %d %+v", status, list.Data)
	}

	status, answered := do[dto.SubmitAnswerResponse](t, app, http.MethodPost, "/api/v1/sessions/"+id+"/answers", `{"answer":0}`)
	if status != http.StatusOK || !answered.Data.IsCorrect || answered.Data.PointsAwarded != 175 {
		t.Fatalf("explicit answer = %d %+v", status, answered.Data)
	}
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	status, body := do[any](t, app, http.MethodGet, "/api/v2/anything", "")
	if status != http.StatusNotFound || body.Code != http.StatusNotFound {
		t.Fatalf("unknown route = %d %+v", status, body)
	}
}
