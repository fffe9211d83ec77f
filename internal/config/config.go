package config

import (
	"os"
	"strconv"

	"corvaxlab/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	BotToken    string
	JWTSecret   string
	FrontendDir string
	FrontendURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Radix gateway
	GatewayURL string

	// When true the fomoHit build gate requires the full level checks
	// (max-level catLair/reactor, amplifier level 3+, incubator online).
	// When false only presence of the four machine types is required.
	StrictFomoGate bool

	LogLevel string
	LogJSON  bool
	DevMode  bool
}

// Load reads configuration from the environment (.env supported).
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		logger.Fatal("BOT_TOKEN is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	frontendDir := os.Getenv("FRONTEND_DIR")
	if frontendDir == "" {
		frontendDir = "./static"
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "https://cvxlab.net/"
	}

	gatewayURL := os.Getenv("RADIX_GATEWAY_URL")
	if gatewayURL == "" {
		gatewayURL = "https://mainnet.radixdlt.com"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	// strict unless explicitly disabled
	strictGate := os.Getenv("STRICT_FOMO_GATE") != "false"

	return &Config{
		AppPort:        port,
		DatabaseURL:    dbURL,
		BotToken:       botToken,
		JWTSecret:      jwtSecret,
		FrontendDir:    frontendDir,
		FrontendURL:    frontendURL,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		GatewayURL:     gatewayURL,
		StrictFomoGate: strictGate,
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogJSON:        os.Getenv("LOG_JSON") == "true",
		DevMode:        os.Getenv("DEV_MODE") == "true",
	}
}
