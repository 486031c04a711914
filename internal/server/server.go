package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	v1 "github.com/praneethkukunuru/recruitment-dashboard/internal/api/v1"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/config"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/session"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// uidCookie identifies a browser across requests; every user gets their own
// dashboard state and saved formulas.
const uidCookie = "dashboard_uid"

// Server HTTP server
type Server struct {
	router   *gin.Engine
	store    *store.Store
	sessions *session.Manager
	v1       *v1.Handler
}

// NewServer wires the store, session manager and API handler.
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if _, err := config.EnsureDataDir(cfg); err != nil {
		log.Printf("Could not create data directory: %v", err)
	}

	sqliteStore, err := store.New(config.DatabasePath(cfg))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sessions := session.NewManager()
	handler := v1.NewHandler(sqliteStore, sessions, cfg.Business.MonthHorizon, cfg.MaxUploadBytes())

	s := &Server{
		router:   gin.Default(),
		store:    sqliteStore,
		sessions: sessions,
		v1:       handler,
	}
	s.setupRoutes(devMode)
	return s
}

func (s *Server) setupRoutes(devMode bool) {
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

	s.router.Use(uidMiddleware())

	// V1 API routes
	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	if devMode {
		// Dev mode proxies page loads to the frontend dev server.
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
		return
	}

	// Embedded frontend
	sub, _ := fs.Sub(staticFiles, "dist")

	s.router.GET("/", func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})

	// SPA fallback
	s.router.NoRoute(func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// uidMiddleware assigns a persistent anonymous id per browser and exposes it
// to the handlers.
func uidMiddleware() gin.HandlerFunc {
	const yearSeconds = 365 * 24 * 60 * 60

	return func(c *gin.Context) {
		uid, err := c.Cookie(uidCookie)
		if err != nil || uid == "" {
			uid = uuid.New().String()
			c.SetCookie(uidCookie, uid, yearSeconds, "/", "", false, true)
		}
		c.Set(v1.UserIDKey, uid)
		c.Next()
	}
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the database.
func (s *Server) Close() error {
	return s.store.Close()
}
