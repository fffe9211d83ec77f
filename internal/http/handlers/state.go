package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GameState returns the full player snapshot: balances, machines, pets,
// room-unlock status. Reading state also settles pending amplifier upkeep.
func (h *Handler) GameState(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	state, err := h.StateService.GameState(c.Request.Context(), userID)
	if err != nil {
		respondGameError(c, "gameState", err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type walletRequest struct {
	Address string `json:"address"`
}

// SaveWallet links a Radix account address to the player.
func (h *Handler) SaveWallet(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req walletRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	req.Address = strings.TrimSpace(req.Address)
	if !strings.HasPrefix(req.Address, "account_rdx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a Radix account address"})
		return
	}

	if err := h.StateService.SaveWallet(c.Request.Context(), userID, req.Address); err != nil {
		respondGameError(c, "saveWallet", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// RoomUnlockSeen records that the player dismissed the one-time room-2
// unlock notice.
func (h *Handler) RoomUnlockSeen(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.StateService.MarkRoomUnlockSeen(c.Request.Context(), userID); err != nil {
		respondGameError(c, "roomUnlockSeen", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}
