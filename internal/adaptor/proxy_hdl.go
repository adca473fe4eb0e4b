package adaptor

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/christine-ng23/bookstore-backend/pkg/apperr"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

// ProxyHandler forwards token exchanges to the authorization server so
// browser clients never see the client secret.
type ProxyHandler struct {
	config *utils.Config
	client *http.Client
	log    *zap.Logger
}

func NewProxyHandler(config *utils.Config, log *zap.Logger) *ProxyHandler {
	return &ProxyHandler{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log.With(zap.String("handler", "proxy")),
	}
}

// ExchangeToken handles POST /auth/token. The caller supplies only the
// authorization code; client credentials are injected server side.
func (h *ProxyHandler) ExchangeToken(w http.ResponseWriter, r *http.Request) {
	data, err := decodeJSONMap(r)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	raw, ok := data["code"]
	if !ok || utils.IsEmpty(raw) {
		utils.ResponseError(w, apperr.Validation("Missing required field: code"))
		return
	}
	code, ok := raw.(string)
	if !ok {
		utils.ResponseError(w, apperr.Validation("Field 'code' must be of type string"))
		return
	}

	payload := map[string]any{
		"client_id":     h.config.OAuth.ClientID,
		"client_secret": h.config.OAuth.ClientSecret,
		"code":          code,
	}
	if redirectURI, ok := utils.StringField(data, "redirect_uri"); ok {
		payload["redirect_uri"] = redirectURI
	}
	body, _ := json.Marshal(payload)

	upstream := h.config.OAuth.AuthServerURL + "/token"
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, upstream, bytes.NewReader(body))
	if err != nil {
		h.log.Error("Failed to build upstream request", zap.Error(err))
		utils.ResponseErrorMessage(w, http.StatusBadGateway, "Authorization server unavailable")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Error("Token exchange upstream failed", zap.Error(err), zap.String("upstream", upstream))
		utils.ResponseErrorMessage(w, http.StatusBadGateway, "Authorization server unavailable")
		return
	}
	defer resp.Body.Close()

	// Pass the authorization server's verdict through unchanged
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}
