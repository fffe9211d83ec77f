package handlers

import (
	"errors"
	"net/http"

	"corvaxlab/internal/game"
	"corvaxlab/internal/http/middleware"
	"corvaxlab/internal/logger"
	"corvaxlab/internal/repository"
	"corvaxlab/internal/service"

	"github.com/gin-gonic/gin"
)

// respondGameError maps service and rule errors onto the HTTP taxonomy:
// rule violations are 400 with a reason string, unknown entities are 404,
// anything unexpected is a 500.
func respondGameError(c *gin.Context, op string, err error) {
	var cooldown *game.CooldownError
	if errors.As(err, &cooldown) {
		middleware.GameOps.WithLabelValues(op, "cooldown").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "cooldown active",
			"remainingMs": cooldown.RemainingMs,
		})
		return
	}

	switch {
	case errors.Is(err, game.ErrInsufficientFunds),
		errors.Is(err, game.ErrMachineLimit),
		errors.Is(err, game.ErrPrereqNotMet),
		errors.Is(err, game.ErrNotUpgradable),
		errors.Is(err, game.ErrOutOfBounds),
		errors.Is(err, game.ErrCollision),
		errors.Is(err, game.ErrUnknownMachine),
		errors.Is(err, repository.ErrPetExists),
		errors.Is(err, service.ErrNoWallet),
		errors.Is(err, service.ErrBadForm),
		errors.Is(err, service.ErrUnknownSpecies):
		middleware.GameOps.WithLabelValues(op, "rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrMachineNotFound),
		errors.Is(err, service.ErrPetNotFound),
		errors.Is(err, repository.ErrNotFound):
		middleware.GameOps.WithLabelValues(op, "not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	default:
		middleware.GameOps.WithLabelValues(op, "error").Inc()
		logger.Error("unhandled game error", "operation", op, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
