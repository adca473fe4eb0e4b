package wire

import (
	"github.com/christine-ng23/bookstore-backend/internal/adaptor"
	"github.com/christine-ng23/bookstore-backend/pkg/middleware"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	proxyHandler *adaptor.ProxyHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Every order route requires a valid token; the handlers scope results
	// by the caller's role.
	authed := r.With(middleware.Authenticate(config.JWT.Secret, log))
	authed.Get("/orders", orderHandler.ListOrders)
	authed.Post("/orders", orderHandler.CreateOrder)
	authed.Put("/orders/{id}/status", orderHandler.UpdateOrderStatus)

	// Token exchange proxy for browser clients, no token required
	r.Post("/auth/token", proxyHandler.ExchangeToken)
}
