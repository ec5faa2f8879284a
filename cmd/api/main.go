// @title Neuro Site API
// @version 1.0
// @description Exercise library, clinic locations and page copy for the neurosurgery practice website.
// @contact.name Web Team
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"neuro-site/internal/adapter"
	"neuro-site/internal/adapter/source"
	"neuro-site/internal/cache"
	"neuro-site/internal/catalog"
	"neuro-site/internal/config"
	"neuro-site/internal/database"
	"neuro-site/internal/domain"
	"neuro-site/internal/handler"
	"neuro-site/internal/i18n"
	"neuro-site/internal/logger"
	"neuro-site/internal/middleware"
	"neuro-site/internal/repository"
	"neuro-site/internal/service"
	"neuro-site/internal/view"

	_ "neuro-site/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Static content needed before the first request.
	var (
		locations    domain.LocationSet
		translations *i18n.Catalog
		templates    *view.Templates
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		set, err := source.NewFileLocationSource(cfg.Locations.Path).FetchLocations(gctx)
		if err != nil {
			return fmt.Errorf("locations: %w", err)
		}
		locations = set
		return nil
	})
	g.Go(func() error {
		c, err := i18n.Load(cfg.I18n.Dir, cfg.I18n.DefaultLocale)
		if err != nil {
			return fmt.Errorf("translations: %w", err)
		}
		translations = c
		return nil
	})
	g.Go(func() error {
		t, err := view.Load(cfg.Assets.TemplateDir)
		if err != nil {
			return fmt.Errorf("templates: %w", err)
		}
		templates = t
		return nil
	})
	if err := g.Wait(); err != nil {
		appLogger.Fatal("Failed to load static content", zap.Error(err))
	}
	appLogger.Info("Static content loaded",
		zap.Int("locations", len(locations.Locations)),
		zap.Strings("locales", translations.Locales()),
	)

	var db *sqlx.DB
	if cfg.Catalog.Source == config.CatalogSourceDatabase {
		db, err = database.NewSQLXOracleDB(ctx, cfg.GetDSN())
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
	}

	var cacheAdapter domain.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			// The cache is optional; the catalog is fetched directly.
			appLogger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis")
		}
	}

	catalogSource := newCatalogSource(cfg, db, cacheAdapter)
	store := catalog.NewStore(catalogSource)
	go func() {
		fetchCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.FetchTimeout)
		defer cancel()
		store.Activate(fetchCtx)
	}()

	images := catalog.NewImageResolver("/images", cfg.Assets.FallbackImage)
	catalogService := service.NewCatalogService(store, images)
	locationService := service.NewLocationService(locations, images)

	var pinger handler.Pinger
	if db != nil {
		pinger = db
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,HEAD,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Accept-Language",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Catalog:      handler.NewCatalogHandler(catalogService),
		Locations:    handler.NewLocationHandler(locationService),
		Translations: handler.NewTranslationHandler(translations),
		Pages:        handler.NewPageHandler(catalogService, locationService, templates),
		Assets:       handler.NewAssetHandler(cfg.Assets.ImageDir, cfg.Assets.FallbackImage),
		Health:       handler.NewHealthHandler(catalogService, cacheAdapter, pinger),
		I18n:         translations,
	})

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("catalog_source", cfg.Catalog.Source),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

// newCatalogSource picks the configured origin of the exercise document and
// puts the cache in front of it when one is available.
func newCatalogSource(cfg *config.Config, db *sqlx.DB, c domain.Cache) domain.CatalogSource {
	var src domain.CatalogSource
	switch cfg.Catalog.Source {
	case config.CatalogSourceHTTP:
		src = source.NewHTTPSource(cfg.Catalog.URL, cfg.Catalog.FetchTimeout)
	case config.CatalogSourceDatabase:
		src = source.NewDatabaseSource(repository.NewCatalogDatabaseAdapter(db))
	default:
		src = source.NewFileSource(cfg.Catalog.Path)
	}
	if c != nil && cfg.Catalog.CacheTTL > 0 {
		return source.NewCachedSource(src, c, cfg.Catalog.CacheTTL)
	}
	return src
}
