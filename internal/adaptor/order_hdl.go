package adaptor

import (
	"net/http"

	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
	"github.com/christine-ng23/bookstore-backend/internal/dto/response"
	"github.com/christine-ng23/bookstore-backend/internal/usecase"
	"github.com/christine-ng23/bookstore-backend/pkg/apperr"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// CreateOrder handles POST /orders. The order always belongs to the caller.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseErrorMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	data, err := decodeJSONMap(r)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	rawItems, _ := data["items"].([]any)
	items := make([]map[string]any, 0, len(rawItems))
	for _, raw := range rawItems {
		item, ok := raw.(map[string]any)
		if !ok {
			utils.ResponseError(w, apperr.Validation("Each order item must be an object"))
			return
		}
		items = append(items, item)
	}

	order, err := h.service.Place(r.Context(), userID, items)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, response.OrderToResponse(order))
}

// ListOrders handles GET /orders. Admins see every order, everyone else only
// their own.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseErrorMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	orders, err := h.service.List(r.Context(), userID, role == string(entity.RoleAdmin))
	if err != nil {
		h.log.Error("Failed to list orders", zap.Error(err), zap.Int64("user_id", userID))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.OrdersToResponse(orders))
}

// UpdateOrderStatus handles PUT /orders/{id}.
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseErrorMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	orderID, ok := idParam(r)
	if !ok {
		utils.ResponseErrorMessage(w, http.StatusNotFound, "Not found")
		return
	}

	data, err := decodeJSONMap(r)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	raw, ok := data["status"]
	if !ok || utils.IsEmpty(raw) {
		utils.ResponseError(w, apperr.Validation("Missing required field: status"))
		return
	}
	status, ok := raw.(string)
	if !ok {
		utils.ResponseError(w, apperr.Validation("Field 'status' must be of type string"))
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, status, userID, role == string(entity.RoleAdmin))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.OrderToResponse(order))
}
