// internal/wire/wire.go
package wire

import (
	"net/http"

	"booking-widget/internal/adaptor"
	"booking-widget/internal/data/repository"
	"booking-widget/internal/store"
	"booking-widget/internal/usecase"
	"booking-widget/pkg/middleware"
	"booking-widget/pkg/utils"

	"github.com/VictoriaMetrics/metrics"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
	Store  *store.Store

	service *usecase.Service
}

// Close flushes background work. Call it after the server has stopped.
func (a *App) Close() {
	a.service.Close()
}

// Wiring builds the single booking store and everything that serves it.
// repo may be nil.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	st := store.New(logger)
	st.Subscribe(newMutationMetrics().observe)

	service := usecase.NewService(st, repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, logger),
		Store:   st,
		service: service,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w, "Method not allowed")
	})

	wireBooking(r, handler.Booking)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		metrics.WritePrometheus(w, false)
	})

	return r
}
