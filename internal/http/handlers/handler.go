package handlers

import (
	"corvaxlab/internal/config"
	"corvaxlab/internal/radix"
	"corvaxlab/internal/service"
	"corvaxlab/internal/ws"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB              *pgxpool.Pool
	Cfg             *config.Config
	Hub             *ws.Hub
	StateService    *service.StateService
	MachineService  *service.MachineService
	PetService      *service.PetService
	CreatureService *service.CreatureService
}

func NewHandler(db *pgxpool.Pool, cfg *config.Config, hub *ws.Hub) *Handler {
	gateway := radix.NewClient(cfg.GatewayURL)
	return &Handler{
		DB:              db,
		Cfg:             cfg,
		Hub:             hub,
		StateService:    service.NewStateService(db),
		MachineService:  service.NewMachineService(db, gateway, cfg.StrictFomoGate),
		PetService:      service.NewPetService(db),
		CreatureService: service.NewCreatureService(db, gateway),
	}
}

// notifyState nudges the player's open sockets to refetch state after a
// mutation commits.
func (h *Handler) notifyState(userID int64) {
	if h.Hub != nil {
		h.Hub.Notify(userID, ws.Event{Type: "stateChanged"})
	}
}

func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
