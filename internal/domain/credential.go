package domain

// Credential is the access/refresh token pair issued by the token endpoint.
// An empty access token means "unauthenticated".
type Credential struct {
	AccessToken  string
	RefreshToken string
}

func (c Credential) IsZero() bool {
	return c.AccessToken == ""
}
