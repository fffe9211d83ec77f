package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Creatures lists the player's on-ledger creatures, tools, spells and token
// balances. Gateway trouble shows up as an empty inventory, not an error.
func (h *Handler) Creatures(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	inv, err := h.CreatureService.Inventory(c.Request.Context(), userID)
	if err != nil {
		respondGameError(c, "creatures", err)
		return
	}
	c.JSON(http.StatusOK, inv)
}
