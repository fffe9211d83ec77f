package handlers

import (
	"net/http"

	"corvaxlab/internal/http/middleware"
	"corvaxlab/internal/service"

	"github.com/gin-gonic/gin"
)

type buildRequest struct {
	Type string `json:"type" binding:"required"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Room int    `json:"room"`
}

func (h *Handler) BuildMachine(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req buildRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Room == 0 {
		req.Room = 1
	}

	m, balances, err := h.MachineService.Build(c.Request.Context(), userID, req.Type, req.X, req.Y, req.Room)
	if err != nil {
		respondGameError(c, "build", err)
		return
	}

	middleware.GameOps.WithLabelValues("build", "ok").Inc()
	h.notifyState(userID)
	c.JSON(http.StatusOK, gin.H{"machine": m, "resources": balances})
}

type moveRequest struct {
	MachineID int64 `json:"machineId" binding:"required"`
	X         int   `json:"x"`
	Y         int   `json:"y"`
	Room      int   `json:"room"`
}

func (h *Handler) MoveMachine(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req moveRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Room == 0 {
		req.Room = 1
	}

	balances, err := h.MachineService.Move(c.Request.Context(), userID, req.MachineID, req.X, req.Y, req.Room)
	if err != nil {
		respondGameError(c, "move", err)
		return
	}

	middleware.GameOps.WithLabelValues("move", "ok").Inc()
	h.notifyState(userID)
	c.JSON(http.StatusOK, gin.H{"moved": true, "resources": balances})
}

type upgradeRequest struct {
	MachineID int64 `json:"machineId" binding:"required"`
}

func (h *Handler) UpgradeMachine(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req upgradeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	level, balances, err := h.MachineService.Upgrade(c.Request.Context(), userID, req.MachineID)
	if err != nil {
		respondGameError(c, "upgrade", err)
		return
	}

	middleware.GameOps.WithLabelValues("upgrade", "ok").Inc()
	h.notifyState(userID)
	c.JSON(http.StatusOK, gin.H{"level": level, "resources": balances})
}

type activateRequest struct {
	MachineID int64 `json:"machineId" binding:"required"`
}

func (h *Handler) ActivateMachine(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req activateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	result, err := h.MachineService.Activate(c.Request.Context(), userID, req.MachineID)
	if err != nil {
		respondGameError(c, "activate", err)
		return
	}

	middleware.GameOps.WithLabelValues("activate", "ok").Inc()
	h.notifyState(userID)
	c.JSON(http.StatusOK, result)
}

type syncRequest struct {
	Machines []service.Placement `json:"machines" binding:"required"`
}

// SyncMachines applies a whole-layout update in one transaction.
func (h *Handler) SyncMachines(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req syncRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.MachineService.Sync(c.Request.Context(), userID, req.Machines); err != nil {
		respondGameError(c, "sync", err)
		return
	}

	middleware.GameOps.WithLabelValues("sync", "ok").Inc()
	h.notifyState(userID)
	c.JSON(http.StatusOK, gin.H{"synced": true})
}
