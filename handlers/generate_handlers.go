package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"paceflow/blog-gateway/stream"
	"paceflow/blog-gateway/utils"
)

// GenerateRequest defines the expected request body for starting a
// generation session. Topic is required.
type GenerateRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// SessionSuccessResponse defines the structure for a successful response
// carrying a session snapshot.
type SessionSuccessResponse struct {
	Status string          `json:"status"`
	Data   stream.Snapshot `json:"data"`
}

// ErrorResponse defines a common structure for error responses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StartGeneration godoc
// @Summary Start a blog generation session
// @Description Begins streaming a new article for the given topic. Any in-flight session is cancelled.
// @Tags generate
// @Accept  json
// @Produce  json
// @Param   request body GenerateRequest true "Generation topic"
// @Success 202 {object} SessionSuccessResponse "Session started"
// @Failure 400 {object} ErrorResponse "Empty or missing topic"
// @Router /generate [post]
func (h *ApplicationHandler) StartGeneration(c *fiber.Ctx) error {
	req := new(GenerateRequest)
	if err := c.BodyParser(req); err != nil {
		log.Printf("Error parsing generate request: %v", err)
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse generate request JSON")
	}

	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(utils.FormatValidationErrors(err), "; "))
	}

	sess, err := h.Controller.Start(utils.SanitizeInput(req.Topic))
	if err != nil {
		if errors.Is(err, stream.ErrEmptyTopic) {
			return utils.RespondWithError(c, fiber.StatusBadRequest, "Please enter a topic.")
		}
		h.Logger.WithError(err).Error("Failed to start generation session")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not start generation")
	}

	return utils.RespondWithJSON(c, fiber.StatusAccepted, sess.Snapshot())
}

// GetCurrentSession godoc
// @Summary Get the current generation session
// @Description Returns a snapshot of the active session: state, progress messages, and the cosmetic completion ratio.
// @Tags generate
// @Produce  json
// @Success 200 {object} SessionSuccessResponse "Current session snapshot"
// @Router /generate/current [get]
func (h *ApplicationHandler) GetCurrentSession(c *fiber.Ctx) error {
	return utils.RespondWithJSON(c, fiber.StatusOK, h.Controller.Current())
}
