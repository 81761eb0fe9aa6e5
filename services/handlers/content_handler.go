package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/sdr_trainer/dto"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

type ContentHandler struct {
	contentSvc ContentServiceInterface
}

func NewContentHandler(contentSvc ContentServiceInterface) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

// GetQuestions lists catalog questions, optionally filtered by category
// and difficulty.
// GET /api/v1/questions
func (h *ContentHandler) GetQuestions(c *fiber.Ctx) error {
	var filter dto.QuestionFilter
	if err := c.QueryParser(&filter); err != nil {
		return shared.NewBadRequestError(err, "Invalid query parameters")
	}
	if err := dto.Validate(filter); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.contentSvc.Questions(filter))
}

// GET /api/v1/questions/:id
func (h *ContentHandler) GetQuestion(c *fiber.Ctx) error {
	question, err := h.contentSvc.Question(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", question)
}

// GET /api/v1/badges
func (h *ContentHandler) GetBadges(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.contentSvc.Badges())
}
