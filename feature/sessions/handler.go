package sessions

import (
	"errors"

	"product-builder/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for session maintenance.
type Handler struct {
	sweeper *Sweeper
}

// NewHandler creates a new HTTP handler.
func NewHandler(sweeper *Sweeper) *Handler {
	return &Handler{sweeper: sweeper}
}

// RegisterRoutes registers the session routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sessions")
	group.Post("/sweep", h.HandleSweep)
}

// HandleSweep clears expired session tokens.
// @Summary Sweep Session Tokens
// @Description Clears every session row whose timestamp is older than the configured TTL.
// @Tags sessions
// @Accept json
// @Produce json
// @Success 200 {object} sessions.SweepResult "Sweep Result"
// @Failure 404 {object} map[string]string "Nothing expired"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sessions/sweep [post]
func (h *Handler) HandleSweep(c *fiber.Ctx) error {
	l := logger.WithRayID(h.sweeper.logger, c)

	result, err := h.sweeper.Sweep(c.Context())
	if errors.Is(err, ErrNothingExpired) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Session sweep failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}
