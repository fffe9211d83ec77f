package handlers

import (
	"net/http"

	"corvaxlab/internal/radix"

	"github.com/gin-gonic/gin"
)

// Manifest endpoints return a transaction text blob for the client wallet to
// sign; the server holds no keys and submits nothing itself.

func (h *Handler) MintEgg(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	manifest, err := h.CreatureService.MintEggManifest(c.Request.Context(), userID)
	if err != nil {
		respondGameError(c, "mintEgg", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manifest": manifest})
}

type statUpgradeRequest struct {
	CreatureID string `json:"creatureId" binding:"required"`
	Energy     int    `json:"energy"`
	Strength   int    `json:"strength"`
	Magic      int    `json:"magic"`
	Stamina    int    `json:"stamina"`
	Speed      int    `json:"speed"`
}

func (r *statUpgradeRequest) allocation() radix.StatAllocation {
	return radix.StatAllocation{
		Energy:   r.Energy,
		Strength: r.Strength,
		Magic:    r.Magic,
		Stamina:  r.Stamina,
		Speed:    r.Speed,
	}
}

func (h *Handler) UpgradeCreatureStats(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req statUpgradeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	manifest, err := h.CreatureService.UpgradeStatsManifest(c.Request.Context(), userID, req.CreatureID, req.allocation())
	if err != nil {
		respondGameError(c, "upgradeStats", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manifest": manifest})
}

type evolveRequest struct {
	CreatureID string `json:"creatureId" binding:"required"`
}

func (h *Handler) EvolveCreature(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req evolveRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	manifest, err := h.CreatureService.EvolveManifest(c.Request.Context(), userID, req.CreatureID)
	if err != nil {
		respondGameError(c, "evolve", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manifest": manifest})
}

func (h *Handler) LevelUpCreature(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req statUpgradeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	manifest, err := h.CreatureService.LevelUpManifest(c.Request.Context(), userID, req.CreatureID, req.allocation())
	if err != nil {
		respondGameError(c, "levelUp", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manifest": manifest})
}

type combineRequest struct {
	CreatureAID string `json:"creatureAId" binding:"required"`
	CreatureBID string `json:"creatureBId" binding:"required"`
}

func (h *Handler) CombineCreatures(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req combineRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	manifest, err := h.CreatureService.CombineManifest(c.Request.Context(), userID, req.CreatureAID, req.CreatureBID)
	if err != nil {
		respondGameError(c, "combine", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manifest": manifest})
}

func (h *Handler) BuyEnergy(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	manifest, err := h.CreatureService.BuyEnergyManifest(c.Request.Context(), userID)
	if err != nil {
		respondGameError(c, "buyEnergy", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manifest": manifest})
}

type txStatusRequest struct {
	IntentHash string `json:"intentHash" binding:"required"`
	Kind       string `json:"kind"`
}

// TxStatus polls a submitted transaction and applies local side effects once
// it commits (clearing provisional mints, crediting bought energy).
func (h *Handler) TxStatus(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req txStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	result, err := h.CreatureService.ConfirmTransaction(c.Request.Context(), userID, req.IntentHash, req.Kind)
	if err != nil {
		respondGameError(c, "txStatus", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
