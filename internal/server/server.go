package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	"github.com/csakala/tableside/internal/export"
	"github.com/csakala/tableside/internal/factories"
	"github.com/csakala/tableside/internal/models"
	"github.com/csakala/tableside/internal/prefs"
	"github.com/csakala/tableside/internal/repositories"
	"github.com/csakala/tableside/internal/repositories/postgres"
	"github.com/csakala/tableside/internal/sink"
	"github.com/csakala/tableside/internal/store"
)

// App wires the state store to its collaborators and serves the HTTP API.
type App struct {
	config   *models.Config
	store    *store.Store
	exporter *export.Exporter
	pool     *pgxpool.Pool
}

func New(cfg *models.Config) (*App, error) {
	var preferences prefs.Store
	if cfg.RedisEnabled {
		redisPrefs, err := prefs.NewRedis(cfg.RedisAddr, cfg.RestaurantID)
		if err != nil {
			// Preferences are best-effort: fall back rather than refuse to start.
			log.Printf("Redis unavailable, preferences will not persist: %v", err)
			preferences = prefs.NewMemory()
		} else {
			preferences = redisPrefs
		}
	} else {
		preferences = prefs.NewMemory()
	}

	out, err := sink.ForConfig(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{config: cfg}

	var archive repositories.OrderArchive = repositories.NoopOrderArchive{}
	if cfg.PostgresEnabled {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("error connecting to database: %w", err)
		}
		app.pool = pool
		archive = postgres.NewOrderArchive(pool)
	}

	app.store = store.New(cfg, preferences, out, archive)
	if err := app.loadMenu(); err != nil {
		return nil, err
	}

	exporter, err := export.NewExporter(cfg)
	if err != nil {
		return nil, err
	}
	app.exporter = exporter

	return app, nil
}

// loadMenu prefers the Postgres catalog when available and falls back to the
// built-in default.
func (a *App) loadMenu() error {
	if a.pool != nil {
		repo := postgres.NewMenuItemRepository(a.pool)
		items, err := repo.GetAll(context.Background())
		if err != nil {
			return fmt.Errorf("error loading menu catalog: %w", err)
		}
		if len(items) > 0 {
			menu := make([]models.MenuItem, len(items))
			for i, item := range items {
				menu[i] = *item
			}
			a.store.SetMenu(menu)
			log.Printf("Loaded %d menu items from Postgres", len(menu))
			return nil
		}
	}
	a.store.SetMenu(factories.CatalogItems())
	log.Printf("Loaded default menu catalog")
	return nil
}

func (a *App) Run() error {
	handler := NewHandler(a.store, a.exporter, a.config)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	log.Printf("tableside serving %s on %s", a.config.RestaurantName, a.config.ListenAddr)
	defer a.store.Close()
	return http.ListenAndServe(a.config.ListenAddr, cors.Default().Handler(r))
}
