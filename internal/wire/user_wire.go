package wire

import (
	"github.com/christine-ng23/bookstore-backend/internal/adaptor"
	"github.com/christine-ng23/bookstore-backend/pkg/middleware"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Registration is open; an admin token upgrades it to role assignment
	r.With(middleware.OptionalAuthenticate(config.JWT.Secret, log)).
		Post("/users", userHandler.Register)

	// Account management is admin only
	admin := r.With(
		middleware.Authenticate(config.JWT.Secret, log),
		middleware.Admin(log),
	)
	admin.Get("/users", userHandler.ListUsers)
	admin.Put("/users/{id}", userHandler.UpdateUser)
	admin.Delete("/users/{id}", userHandler.DeleteUser)
}
