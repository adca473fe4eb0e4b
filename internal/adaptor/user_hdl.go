package adaptor

import (
	"net/http"

	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
	"github.com/christine-ng23/bookstore-backend/internal/dto/response"
	"github.com/christine-ng23/bookstore-backend/internal/usecase"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Register handles POST /users. The route is open, but a caller carrying an
// admin token may set the new account's role.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	data, err := decodeJSONMap(r)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())
	user, err := h.service.Register(r.Context(), data, role == string(entity.RoleAdmin))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, response.RegisterResponse{
		Message: "User registered successfully",
		User:    response.UserToResponse(user),
	})
}

// ListUsers handles GET /users (admin only).
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("Failed to list users", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.UsersToResponse(users))
}

// UpdateUser handles PUT /users/{id} (admin only).
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r)
	if !ok {
		utils.ResponseErrorMessage(w, http.StatusNotFound, "Not found")
		return
	}

	updates, err := decodeJSONMap(r)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	user, err := h.service.Update(r.Context(), userID, updates)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.UserToResponse(user))
}

// DeleteUser handles DELETE /users/{id} (admin only).
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r)
	if !ok {
		utils.ResponseErrorMessage(w, http.StatusNotFound, "Not found")
		return
	}

	user, err := h.service.Delete(r.Context(), userID)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.UserToResponse(user))
}
