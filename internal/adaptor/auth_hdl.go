package adaptor

import (
	"net/http"

	"github.com/christine-ng23/bookstore-backend/internal/dto/request"
	"github.com/christine-ng23/bookstore-backend/internal/usecase"
	"github.com/christine-ng23/bookstore-backend/pkg/apperr"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

// AuthHandler serves the authorization server endpoints. It is wired into
// its own router, separate from the resource handlers.
type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Authorize handles POST /authorize with form-encoded credentials.
func (h *AuthHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.ResponseError(w, apperr.Malformed("Request body must be form encoded"))
		return
	}

	req := &request.AuthorizeRequest{
		Username:    r.PostFormValue("username"),
		Password:    r.PostFormValue("password"),
		RedirectURI: r.PostFormValue("redirect_uri"),
	}

	resp, err := h.service.Authorize(r.Context(), req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp)
}

// Token handles POST /token, exchanging an authorization code for a JWT.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req request.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseError(w, err)
		return
	}

	resp, err := h.service.ExchangeToken(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp)
}
