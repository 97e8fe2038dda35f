package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/DanteArceneaux/wegovy/internal/catalog"
	"github.com/DanteArceneaux/wegovy/internal/config"
	"github.com/DanteArceneaux/wegovy/internal/events"
	"github.com/DanteArceneaux/wegovy/internal/handlers"
	"github.com/DanteArceneaux/wegovy/internal/middleware"
	"github.com/DanteArceneaux/wegovy/internal/repository"
	"github.com/DanteArceneaux/wegovy/internal/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	router *chi.Mux
	config config.Config
	hub    *events.Hub
}

func New(database *sql.DB, cfg config.Config, content *catalog.Catalog) *Server {
	settingsRepo := repository.NewSettingsRepository(database)
	shotRepo := repository.NewShotRepository(database)
	weightRepo := repository.NewWeightRepository(database)
	logRepo := repository.NewDailyLogRepository(database)
	foodRepo := repository.NewFoodItemRepository(database)
	groceryRepo := repository.NewGroceryRepository(database)

	dayLogService := services.NewDayLogService(logRepo, foodRepo)
	summaryService := services.NewSummaryService(settingsRepo, shotRepo, weightRepo, logRepo)

	hub := events.NewHub()

	settingsHandler := handlers.NewSettingsHandler(settingsRepo, hub, cfg.UserID)
	shotHandler := handlers.NewShotHandler(shotRepo, hub, cfg.UserID)
	weightHandler := handlers.NewWeightHandler(weightRepo, hub, cfg.UserID)
	dayLogHandler := handlers.NewDayLogHandler(dayLogService, summaryService, hub, cfg.UserID)
	groceryHandler := handlers.NewGroceryHandler(groceryRepo, hub, cfg.UserID)
	catalogHandler := handlers.NewCatalogHandler(content)
	calendarHandler := handlers.NewCalendarHandler(shotRepo, cfg.FeedToken, cfg.UserID)

	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Get("/calendar.ics", calendarHandler.Feed)
	router.Get("/ws", hub.ServeWS)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireToken(cfg.APIToken))

		r.Get("/api/settings", settingsHandler.Get)
		r.Put("/api/settings", settingsHandler.Save)

		r.Get("/api/shots", shotHandler.List)
		r.Post("/api/shots", shotHandler.Create)
		r.Put("/api/shots/{id}", shotHandler.Update)
		r.Delete("/api/shots/{id}", shotHandler.Delete)

		r.Get("/api/weights", weightHandler.List)
		r.Post("/api/weights", weightHandler.Create)
		r.Delete("/api/weights/{id}", weightHandler.Delete)

		r.Get("/api/days/{date}", dayLogHandler.Day)
		r.Get("/api/days/{date}/summary", dayLogHandler.Summary)
		r.Post("/api/days/{date}/food", dayLogHandler.AddFood)
		r.Delete("/api/days/{date}/food/{id}", dayLogHandler.DeleteFood)
		r.Post("/api/days/{date}/water", dayLogHandler.AdjustWater)
		r.Put("/api/days/{date}/symptoms", dayLogHandler.SetSymptoms)
		r.Put("/api/days/{date}/notes", dayLogHandler.SetNotes)

		r.Get("/api/grocery", groceryHandler.Get)
		r.Post("/api/grocery/toggle", groceryHandler.Toggle)
		r.Post("/api/grocery/reset", groceryHandler.Reset)

		r.Get("/api/catalog/recipes", catalogHandler.Recipes)
		r.Get("/api/catalog/staples", catalogHandler.Staples)
	})

	return &Server{
		router: router,
		config: cfg,
		hub:    hub,
	}
}

func (server *Server) Start() error {
	go server.hub.Run()

	address := ":" + server.config.Port
	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, server.router)
}
