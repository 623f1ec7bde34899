package server

import (
	"station-server/confs"
	"station-server/db"
	"station-server/handlers"
	httpHandler "station-server/handlers/http"
	"station-server/repositories"
	"station-server/usecases"
	"station-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", httpHandler.TokenHeader}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	stationRepo := repositories.NewStationPgRepository(s.db)

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo, s.cfg.JWTSecret, s.cfg.TokenTTL)
	stationUseCase := usecases.NewStationUseCase(stationRepo)

	// Event feed hub and handler
	hub := ws.NewHub()
	eventHandler := handlers.NewEventHandler(hub)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	stationHandler := httpHandler.NewStationHandler(stationUseCase, eventHandler)

	authRequired := httpHandler.AuthRequired(s.cfg.JWTSecret)

	// Setup API routes
	api := s.app.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/user", authRequired, authHandler.CurrentUser)
		}

		// Station routes; reads are public, writes are owner-scoped
		stations := api.Group("/stations")
		{
			stations.GET("", stationHandler.ListStations)
			stations.GET("/:id", stationHandler.GetStation)
			stations.POST("", authRequired, stationHandler.CreateStation)
			stations.PUT("/:id", authRequired, stationHandler.UpdateStation)
			stations.DELETE("/:id", authRequired, stationHandler.DeleteStation)
		}
	}

	s.app.GET("/ws", eventHandler.HandleEventFeed)

	if err := s.app.Run(s.cfg.ListenAddr); err != nil {
		panic(err)
	}
}
