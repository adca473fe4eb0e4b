package wire

import (
	"github.com/christine-ng23/bookstore-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/authorize", authHandler.Authorize)
	r.Post("/token", authHandler.Token)
}
