package types

// TokenClaims holds the claims carried by an admin session token.
type TokenClaims struct {
	Username string `json:"username"`
}
