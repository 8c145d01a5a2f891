package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"laptop-dashboard/models"
	"laptop-dashboard/services"
	"laptop-dashboard/utils"
)

// Server exposes the dashboard data over HTTP. The cleaned dataset is shared
// read-only across requests; every request recomputes its filtered view from
// scratch, so no locking is needed.
type Server struct {
	dataset  []*models.Listing
	meta     models.FilterMetadata
	insights *services.InsightService
	logger   *utils.Logger
}

// New builds a Server over the cleaned dataset. Filter metadata is derived
// once here since the dataset never changes within a process.
func New(dataset []*models.Listing, insights *services.InsightService, logger *utils.Logger) *Server {
	return &Server{
		dataset:  dataset,
		meta:     services.BuildFilterMetadata(dataset),
		insights: insights,
		logger:   logger,
	}
}

// Router assembles the gin engine with recovery, CORS and the API routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/healthz", s.Healthz)

	api := router.Group("/api/v1")
	api.GET("/filters", s.Filters)
	api.GET("/dashboard", s.Dashboard)

	return router
}

// Run starts the HTTP server on addr and blocks.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.logger.Info("[server] Listening on %s", addr)
	return srv.ListenAndServe()
}
