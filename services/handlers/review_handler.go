package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/sdr_trainer/dto"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

type ReviewHandler struct {
	reviewSvc ReviewServiceInterface
}

func NewReviewHandler(reviewSvc ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewSvc: reviewSvc,
	}
}

// GET /api/v1/review
func (h *ReviewHandler) ListMissed(c *fiber.Ctx) error {
	missed, err := h.reviewSvc.List(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", missed)
}

// GetDue lists the missed questions due now.
// GET /api/v1/review/due
func (h *ReviewHandler) GetDue(c *fiber.Ctx) error {
	due, err := h.reviewSvc.QuestionsDueForReview(c.UserContext(), h.reviewSvc.Now())
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", due)
}

// GET /api/v1/review/stats
func (h *ReviewHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.reviewSvc.Stats(c.UserContext(), h.reviewSvc.Now())
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", stats)
}

// POST /api/v1/review/misses
func (h *ReviewHandler) RecordMiss(c *fiber.Ctx) error {
	var req dto.RecordMissRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	missed, err := h.reviewSvc.RecordMiss(c.UserContext(), req.QuestionID, *req.IncorrectAnswer)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Miss recorded", missed)
}

// POST /api/v1/review/:questionId/reviewed
func (h *ReviewHandler) MarkReviewed(c *fiber.Ctx) error {
	var req dto.MarkReviewedRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	if err := h.reviewSvc.MarkReviewed(c.UserContext(), c.Params("questionId"), *req.WasCorrect); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// DELETE /api/v1/review/:questionId
func (h *ReviewHandler) RemoveMissed(c *fiber.Ctx) error {
	if err := h.reviewSvc.Remove(c.UserContext(), c.Params("questionId")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}
