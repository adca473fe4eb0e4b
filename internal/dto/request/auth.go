package request

// AuthorizeRequest carries the form fields of POST /authorize.
type AuthorizeRequest struct {
	Username    string `validate:"required"`
	Password    string `validate:"required"`
	RedirectURI string
}

// TokenRequest is the JSON body of POST /token.
type TokenRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
	Code         string `json:"code" validate:"required"`
	RedirectURI  string `json:"redirect_uri"`
}
