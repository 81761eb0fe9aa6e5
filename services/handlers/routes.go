package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
	log "github.com/sirupsen/logrus"
)

// Services bundles the engines the API exposes.
type Services struct {
	Content  ContentServiceInterface
	Progress ProgressServiceInterface
	Review   ReviewServiceInterface
	Session  SessionServiceInterface
}

// NewApp builds the fiber application with every route registered. The
// given middleware runs after panic recovery and before routing.
func NewApp(svcs Services, middleware ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "sdr_trainer",
		DisableStartupMessage: true,
		JSONEncoder:           shared.Marshal,
		JSONDecoder:           shared.Unmarshal,
		ErrorHandler:          ErrorHandler,
	})

	app.Use(recover.New())
	for _, m := range middleware {
		app.Use(m)
	}

	app.Get("/ping", ping)
	RegisterRoutes(app.Group("/api/v1"), svcs)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})
	return app
}

func RegisterRoutes(v1 fiber.Router, svcs Services) {
	v1.Get("/ping", ping)

	contentHandler := NewContentHandler(svcs.Content)
	v1.Get("/questions", contentHandler.GetQuestions)
	v1.Get("/questions/:id", contentHandler.GetQuestion)
	v1.Get("/badges", contentHandler.GetBadges)

	progressHandler := NewProgressHandler(svcs.Progress)
	progress := v1.Group("/progress")
	progress.Get("/", progressHandler.GetProgress)
	progress.Post("/answers", progressHandler.RecordAnswer)
	progress.Delete("/", progressHandler.ResetProgress)

	reviewHandler := NewReviewHandler(svcs.Review)
	review := v1.Group("/review")
	review.Get("/", reviewHandler.ListMissed)
	review.Get("/due", reviewHandler.GetDue)
	review.Get("/stats", reviewHandler.GetStats)
	review.Post("/misses", reviewHandler.RecordMiss)
	review.Post("/:questionId/reviewed", reviewHandler.MarkReviewed)
	review.Delete("/:questionId", reviewHandler.RemoveMissed)

	sessionHandler := NewSessionHandler(svcs.Session)
	sessions := v1.Group("/sessions")
	sessions.Post("/", sessionHandler.StartSession)
	sessions.Get("/:id", sessionHandler.GetSession)
	sessions.Post("/:id/answers", sessionHandler.SubmitAnswer)
	sessions.Get("/:id/summary", sessionHandler.GetSummary)
}

func ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

// ErrorHandler renders AppErrors with their status and message; anything
// else is a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			log.WithError(err).WithField("path", c.Path()).Error("Request failed")
		}
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).WithField("path", c.Path()).Error("Unhandled error")
	return shared.ResponseInternalError(c)
}
