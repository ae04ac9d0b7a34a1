package types

// Token type discriminators. A refresh token can only mint a new access
// token; it never grants resource access itself.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenPair is the result of a successful registration or login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
