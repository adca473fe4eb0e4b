package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/christine-ng23/bookstore-backend/internal/usecase"
	"github.com/christine-ng23/bookstore-backend/pkg/apperr"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	User  *UserHandler
	Book  *BookHandler
	Order *OrderHandler
	Proxy *ProxyHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		User:  NewUserHandler(service.User, log),
		Book:  NewBookHandler(service.Book, log),
		Order: NewOrderHandler(service.Order, log),
		Proxy: NewProxyHandler(config, log),
	}
}

// decodeJSONMap decodes a free-form JSON object body. A body that is not
// valid JSON is a malformed request; valid JSON that is not an object is a
// validation failure.
func decodeJSONMap(r *http.Request) (map[string]any, error) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, apperr.Validation("Request body must be a JSON object")
		}
		return nil, apperr.Malformed("Request body must be valid JSON")
	}
	return data, nil
}

// decodeJSON decodes a fixed-shape request DTO.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return apperr.Validationf("Field '%s' must be of type %s", typeErr.Field, typeErr.Type.String())
		}
		return apperr.Malformed("Request body must be valid JSON")
	}
	return nil
}

// idParam parses the {id} route parameter. Non-numeric ids behave like a
// missing resource rather than a bad request.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
