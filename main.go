package main

import (
	"embed"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/neetosena/monster-game/internal/engine"
	"github.com/neetosena/monster-game/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	port := flag.Int("port", envInt("PORT", 8080), "server port")
	flag.Parse()

	config := engine.GameConfig{
		GridSize:             envInt("GRID_SIZE", engine.DefaultConfig().GridSize),
		MaxRounds:            envInt("MAX_ROUNDS", engine.DefaultConfig().MaxRounds),
		EliminationThreshold: envInt("ELIMINATION_THRESHOLD", engine.DefaultConfig().EliminationThreshold),
	}
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid game configuration")
	}

	srv, err := server.New(*port, config, static)
	if err != nil {
		log.Fatal().Err(err).Msg("server setup failed")
	}
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", v).Msg("expected an integer")
	}
	return n
}
