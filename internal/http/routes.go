package http

import (
	"os"
	"strconv"
	"time"

	"corvaxlab/internal/config"
	"corvaxlab/internal/http/handlers"
	"corvaxlab/internal/http/middleware"
	"corvaxlab/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	hub := ws.NewHub()
	h := handlers.NewHandler(db, cfg, hub)
	healthHandler := handlers.NewHealthHandler(db, version)

	// read limits from env, with safe defaults
	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}
	gameRateLimit := 120
	if v := os.Getenv("GAME_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			gameRateLimit = n
		}
	}
	gameRateWindow := time.Minute

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Telegram Login Widget redirect target
	r.GET("/callback", h.Callback)
	if cfg.DevMode {
		r.GET("/dev/login", h.DevLogin)
	}

	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))

	api.GET("/whoami", h.Whoami)
	api.POST("/logout", h.Logout)

	api.GET("/gameState", middleware.JWT(), h.GameState)

	// Per-user limiter for the mutation endpoints
	gameRL := middleware.GameRateLimit(gameRateLimit, gameRateWindow)

	machines := api.Group("/machines")
	machines.Use(middleware.JWT(), gameRL)
	{
		machines.POST("/build", h.BuildMachine)
		machines.POST("/move", h.MoveMachine)
		machines.POST("/upgrade", h.UpgradeMachine)
		machines.POST("/activate", h.ActivateMachine)
		machines.POST("/sync", h.SyncMachines)
	}

	pets := api.Group("/pets")
	pets.Use(middleware.JWT(), gameRL)
	{
		pets.POST("/buy", h.BuyPet)
		pets.POST("/move", h.MovePet)
	}

	account := api.Group("/account")
	account.Use(middleware.JWT())
	{
		account.POST("/wallet", h.SaveWallet)
		account.POST("/roomUnlockSeen", h.RoomUnlockSeen)
	}

	api.GET("/creatures", middleware.JWT(), h.Creatures)

	manifests := api.Group("/manifests")
	manifests.Use(middleware.JWT())
	{
		manifests.POST("/mintEgg", h.MintEgg)
		manifests.POST("/upgradeStats", h.UpgradeCreatureStats)
		manifests.POST("/evolve", h.EvolveCreature)
		manifests.POST("/levelUp", h.LevelUpCreature)
		manifests.POST("/combine", h.CombineCreatures)
		manifests.POST("/buyEnergy", h.BuyEnergy)
	}

	api.POST("/tx/status", middleware.JWT(), h.TxStatus)

	// State-push socket
	r.GET("/ws", ws.HandleWS(hub))

	// Frontend static files
	if cfg.FrontendDir != "" {
		r.StaticFS("/assets", gin.Dir(cfg.FrontendDir, false))
		r.NoRoute(func(c *gin.Context) {
			c.File(cfg.FrontendDir + "/index.html")
		})
	}
}
