// Package server wires the HTTP layer together: gin engine, CORS,
// API routes and the SQLite store.
package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bandhitl/prod-plan/internal/api"
	"github.com/bandhitl/prod-plan/internal/config"
	"github.com/bandhitl/prod-plan/internal/store"
)

// Server is the HTTP server.
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *api.Handler
}

// NewServer builds the server, opening the database under the
// configured data directory.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "prodplan.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		return nil, err
	}
	log.Info().Str("db", dbPath).Msg("database ready")

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		api:    api.NewHandler(sqliteStore, cfg),
	}
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	s.router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/api/status")
	})
}

// Run starts listening on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the database.
func (s *Server) Close() error {
	return s.store.Close()
}
