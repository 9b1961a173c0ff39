package server

import (
	"fmt"

	"github.com/farellandr/fyyur/config"
	"github.com/farellandr/fyyur/internal/flash"
	"github.com/farellandr/fyyur/internal/handlers"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/farellandr/fyyur/internal/queue"
	"github.com/farellandr/fyyur/internal/templates"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	var store flash.Store
	if rdb := config.NewRedisClient(cfg); rdb != nil {
		defer rdb.Close()
		store = flash.NewRedisStore(rdb, "fyyur:flash", cfg.SecureCookies())
	} else {
		store, err = flash.NewCookieStore(cfg.SessionSecret, cfg.SecureCookies())
		if err != nil {
			return fmt.Errorf("failed to initialize flash store: %v", err)
		}
	}

	r, err := NewRouter(db, store, config.NewPublisher(cfg))
	if err != nil {
		return err
	}
	return r.Run(":" + cfg.Port)
}

// NewRouter builds the engine with pages loaded and every route attached.
func NewRouter(db *gorm.DB, store flash.Store, publisher queue.Publisher) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(handlers.Recovered))

	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %v", err)
	}
	r.SetHTMLTemplate(tmpl)

	setupRoutes(r, db, store, publisher)
	return r, nil
}

func setupRoutes(r *gin.Engine, db *gorm.DB, store flash.Store, publisher queue.Publisher) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.PublisherMiddleware(publisher))
	r.Use(flash.Middleware(store))

	r.GET("/", handlers.Index)
	r.GET("/healthz", handlers.Health)

	venues := r.Group("/venues")
	{
		venues.GET("", handlers.ListVenues)
		venues.POST("/search", handlers.SearchVenues)
		venues.GET("/create", handlers.NewVenue)
		venues.POST("/create", handlers.CreateVenue)
		venues.GET("/:id", handlers.GetVenue)
		venues.DELETE("/:id", handlers.DeleteVenue)
		venues.GET("/:id/edit", handlers.EditVenue)
		venues.POST("/:id/edit", handlers.UpdateVenue)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", handlers.ListArtists)
		artists.POST("/search", handlers.SearchArtists)
		artists.GET("/create", handlers.NewArtist)
		artists.POST("/create", handlers.CreateArtist)
		artists.GET("/:id", handlers.GetArtist)
		artists.GET("/:id/edit", handlers.EditArtist)
		artists.POST("/:id/edit", handlers.UpdateArtist)
	}

	shows := r.Group("/shows")
	{
		shows.GET("", handlers.ListShows)
		shows.GET("/create", handlers.NewShow)
		shows.POST("/create", handlers.CreateShow)
	}

	r.NoRoute(handlers.NotFound)
}
