package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/sdr_trainer/dto"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

type SessionHandler struct {
	sessionSvc SessionServiceInterface
}

func NewSessionHandler(sessionSvc SessionServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessionSvc: sessionSvc,
	}
}

// StartSession assembles a new quiz for the requested study mode.
// POST /api/v1/sessions
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	session, err := h.sessionSvc.StartSession(c.UserContext(), req.Mode, req.Category, req.Difficulty)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Session started", session)
}

// GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.sessionSvc.Session(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", session)
}

// SubmitAnswer grades the answer to the session's current question.
// POST /api/v1/sessions/:id/answers
func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	result, err := h.sessionSvc.SubmitAnswer(c.UserContext(), c.Params("id"), *req.Answer, req.Language)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Answer submitted", result)
}

// GET /api/v1/sessions/:id/summary
func (h *SessionHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.sessionSvc.Summary(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", summary)
}
