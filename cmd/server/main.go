package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swiperent/internal/config"
	"swiperent/internal/handler"
	"swiperent/internal/listings"
	"swiperent/internal/mailer"
	"swiperent/internal/middleware"
	"swiperent/internal/storage"
	"swiperent/internal/store"
	"swiperent/internal/workflow"
	"swiperent/pkg/database"
	"swiperent/pkg/jwtutil"
	"swiperent/pkg/logger"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Env); err != nil {
		panic(err)
	}
	log := logger.Get()
	defer log.Sync()

	if cfg.RapidAPI.Key == "" || cfg.RapidAPI.Host == "" {
		log.Fatal("missing required environment variables RAPID_API_KEY / RAPID_API_HOST")
	}

	db, err := database.Open(cfg.DBDSN, cfg.DBLogLevel)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	if cfg.AutoMigrate {
		database.Migrate(db, log.Sugar().Warnf)
	}

	// Support a lightweight migrate command: `./swiperent migrate` runs
	// AutoMigrate and exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		database.Migrate(db, log.Sugar().Warnf)
		log.Info("migration completed")
		return
	}

	uploads := storage.New(cfg.UploadBase)
	if err := uploads.EnsureBase(); err != nil {
		log.Fatal("failed to create upload base dir", zap.String("dir", cfg.UploadBase), zap.Error(err))
	}

	users := store.NewUserStore(db)
	profiles := store.NewProfileStore(db)
	documents := store.NewDocumentStore(db)
	apartments := store.NewApartmentStore(db)
	favorites := store.NewFavoriteStore(db)
	applications := store.NewApplicationStore(db)

	mail := mailer.New(cfg.Mail.APIKey, cfg.Mail.Sender)
	applyFlow := workflow.NewApplicationWorkflow(applications, apartments, profiles, documents, mail, log)

	srv := handler.New(handler.Deps{
		Config:       cfg,
		Log:          log,
		Tokens:       jwtutil.New(cfg.JWTSecret),
		Users:        users,
		Profiles:     profiles,
		Documents:    documents,
		Apartments:   apartments,
		Favorites:    favorites,
		Applications: applyFlow,
		Uploads:      uploads,
		Listings:     listings.NewClient(cfg.RapidAPI.Host, cfg.RapidAPI.Key),
	})

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	srv.RegisterRoutes(r)

	log.Info("server starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Env))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
