package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bandhitl/prod-plan/internal/config"
	"github.com/bandhitl/prod-plan/internal/server"
	"github.com/bandhitl/prod-plan/internal/util"
)

var (
	port    = flag.Int("port", 0, "server port (overrides config.toml)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides config.toml)")
)

func main() {
	flag.Parse()

	// .env is optional; it carries OPENAI_API_KEY for local setups.
	_ = godotenv.Load()

	fmt.Println("==========================================")
	fmt.Println("  ProdPlan - Production Planning Analyzer")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	if cfg.Server.DevMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Listening on port %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("Opening browser: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("Could not open a browser automatically, visit: %s\n", url)
		}
	} else {
		fmt.Printf("Development mode: visit %s\n", url)
	}

	fmt.Println("\nPress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	if err := srv.Close(); err != nil {
		log.Warn().Err(err).Msg("shutdown cleanup failed")
	}
}
