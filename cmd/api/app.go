package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"celestial-chart/internal/artifact"
	"celestial-chart/internal/chart"
	"celestial-chart/internal/config"
	"celestial-chart/internal/i18n"
	"celestial-chart/internal/metrics"
	"celestial-chart/internal/observer"
	"celestial-chart/internal/providers/openmeteo"
	"celestial-chart/internal/providers/openstreetmap"
	"celestial-chart/internal/providers/sesame"
	"celestial-chart/internal/render"
	"celestial-chart/internal/sky"
	"celestial-chart/internal/timezone"
	"celestial-chart/internal/validation"
)

// App encapsulates application dependencies
type App struct {
	router       *gin.Engine
	logger       *slog.Logger
	cfg          *config.Config
	chartService *chart.Service
	store        *artifact.Store
	reaper       *artifact.Reaper
	translator   *i18n.Translator
	metrics      *metrics.Recorder

	observerService observer.Service
}

// services are the collaborators NewApp wires from configuration.
type services struct {
	timezones timezone.Service
	catalog   sky.Catalog
	geocoder  chart.Geocoder
	elevation observer.ElevationProvider
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	tz, err := timezone.NewService(logger)
	if err != nil {
		return nil, err
	}

	svc := services{timezones: tz}
	if cfg.Catalog.Enabled {
		svc.catalog = sesame.NewClientWithConfig(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
		logger.Info("deep-sky catalog enabled", "url", cfg.Catalog.BaseURL)
	}
	if cfg.Geocode.Enabled {
		svc.geocoder = openstreetmap.NewClientWithConfig(cfg.Geocode.BaseURL, cfg.Geocode.Timeout)
		logger.Info("reverse geocoding enabled", "url", cfg.Geocode.BaseURL)
	}
	if cfg.Elevation.Enabled {
		svc.elevation = openmeteo.NewElevationClientWithConfig(cfg.Elevation.BaseURL, cfg.Elevation.Timeout)
		logger.Info("elevation lookup enabled", "url", cfg.Elevation.BaseURL)
	}

	return newApp(cfg, logger, metrics.New(), svc)
}

func newApp(cfg *config.Config, logger *slog.Logger, recorder *metrics.Recorder, svc services) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	translator, err := i18n.NewTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), recorder.Middleware())

	opts := chart.Options{
		Samples:      cfg.Chart.Samples,
		ScaleSamples: cfg.Chart.ScaleSamples,
		Validation: validation.Options{
			DefaultHours: cfg.Chart.DefaultHours,
			MaxHours:     cfg.Chart.MaxHours,
			AllowDeepSky: svc.catalog != nil,
		},
		Render: render.Options{
			Width:  cfg.Chart.Width,
			Height: cfg.Chart.Height,
			DPI:    cfg.Chart.DPI,
		},
	}
	chartOpts := []chart.Option{chart.WithMetrics(recorder)}
	if svc.geocoder != nil {
		chartOpts = append(chartOpts, chart.WithGeocoder(svc.geocoder))
	}

	app := &App{
		router:     router,
		logger:     logger,
		cfg:        cfg,
		translator: translator,
		metrics:    recorder,
	}

	if cfg.Artifacts.Enabled {
		store, err := artifact.NewStore(cfg.Artifacts.Dir, logger)
		if err != nil {
			return nil, err
		}
		app.store = store
		app.reaper = artifact.NewReaper(store, cfg.Artifacts.Retention, cfg.Artifacts.ReapInterval, recorder, logger)
		chartOpts = append(chartOpts, chart.WithStore(store))
	}

	sampler := sky.NewSampler(svc.catalog, logger)
	app.chartService = chart.NewService(svc.timezones, sampler, opts, logger, chartOpts...)
	app.observerService = observer.NewObserverService(svc.timezones, svc.elevation, svc.geocoder, logger)

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized",
		"artifacts", cfg.Artifacts.Enabled,
		"deep_sky", svc.catalog != nil,
		"geocode", svc.geocoder != nil,
		"elevation", svc.elevation != nil,
	)

	return app, nil
}

// Start launches background jobs.
func (app *App) Start() error {
	if app.reaper == nil {
		return nil
	}
	return app.reaper.Start()
}

// Stop halts background jobs.
func (app *App) Stop() {
	if app.reaper != nil {
		app.reaper.Stop()
	}
}

// Handler returns the HTTP handler serving every route.
func (app *App) Handler() http.Handler {
	return app.router
}
