package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/sdr_trainer/dto"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

type ProgressHandler struct {
	progressSvc ProgressServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
	}
}

// GetProgress returns the dashboard summary.
// GET /api/v1/progress
func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	summary, err := h.progressSvc.Summary(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", summary)
}

// RecordAnswer applies a single answered question outside of a session.
// POST /api/v1/progress/answers
func (h *ProgressHandler) RecordAnswer(c *fiber.Ctx) error {
	var req dto.RecordAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	result, err := h.progressSvc.RecordAnswer(c.UserContext(), req.Points, req.Category, *req.IsCorrect)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Answer recorded", result)
}

// DELETE /api/v1/progress
func (h *ProgressHandler) ResetProgress(c *fiber.Ctx) error {
	progress, err := h.progressSvc.Reset(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Progress reset", progress)
}
