package wire

import (
	"net/http"

	"github.com/christine-ng23/bookstore-backend/internal/adaptor"
	"github.com/christine-ng23/bookstore-backend/internal/authcode"
	"github.com/christine-ng23/bookstore-backend/internal/data/repository"
	"github.com/christine-ng23/bookstore-backend/internal/usecase"
	"github.com/christine-ng23/bookstore-backend/pkg/middleware"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring assembles the resource server: services, handlers and routes.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireUser(r, handler.User, config, logger)
	wireBook(r, handler.Book, config, logger)
	wireOrder(r, handler.Order, handler.Proxy, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// AuthWiring assembles the authorization server, which exposes only the
// authorize and token endpoints.
func AuthWiring(repo *repository.Repository, codes authcode.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewAuthService(repo, codes, config, logger)
	handler := adaptor.NewAuthHandler(service, logger)

	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return &App{
		Router: r,
	}
}
