package wire

import (
	"github.com/christine-ng23/bookstore-backend/internal/adaptor"
	"github.com/christine-ng23/bookstore-backend/pkg/middleware"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBook(
	r chi.Router,
	bookHandler *adaptor.BookHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// The catalog is readable without a token
	r.Get("/books", bookHandler.ListBooks)

	// Catalog management is admin only
	admin := r.With(
		middleware.Authenticate(config.JWT.Secret, log),
		middleware.Admin(log),
	)
	admin.Post("/books", bookHandler.CreateBook)
	admin.Put("/books/{id}", bookHandler.UpdateBook)
	admin.Delete("/books/{id}", bookHandler.DeleteBook)
}
