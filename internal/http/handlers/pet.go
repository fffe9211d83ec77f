package handlers

import (
	"net/http"

	"corvaxlab/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type buyPetRequest struct {
	X             int    `json:"x"`
	Y             int    `json:"y"`
	Room          int    `json:"room"`
	ParentMachine *int64 `json:"parentMachine"`
}

func (h *Handler) BuyPet(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req buyPetRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Room == 0 {
		req.Room = 1
	}

	pet, balances, err := h.PetService.Buy(c.Request.Context(), userID, req.X, req.Y, req.Room, req.ParentMachine)
	if err != nil {
		respondGameError(c, "buyPet", err)
		return
	}

	middleware.GameOps.WithLabelValues("buyPet", "ok").Inc()
	h.notifyState(userID)
	c.JSON(http.StatusOK, gin.H{"pet": pet, "resources": balances})
}

type movePetRequest struct {
	PetID int64 `json:"petId" binding:"required"`
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Room  int   `json:"room"`
}

func (h *Handler) MovePet(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req movePetRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Room == 0 {
		req.Room = 1
	}

	if err := h.PetService.Move(c.Request.Context(), userID, req.PetID, req.X, req.Y, req.Room); err != nil {
		respondGameError(c, "movePet", err)
		return
	}

	middleware.GameOps.WithLabelValues("movePet", "ok").Inc()
	h.notifyState(userID)
	c.JSON(http.StatusOK, gin.H{"moved": true})
}
