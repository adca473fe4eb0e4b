package response

// AuthorizeResponse returns the issued code plus the redirect URI with the
// code appended, simulating the redirect step as JSON.
type AuthorizeResponse struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	RedirectURI string `json:"redirect_uri"`
	Role        string `json:"role"`
}
