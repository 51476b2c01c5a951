package service

// Authenticator checks admin logins and the tokens they hand out.
type Authenticator interface {
	// Login returns a bearer token for a valid email/password pair.
	Login(email, password string) (string, error)
	// Authorize returns nil if token grants admin access.
	Authorize(token string) error
}

// StaticAuthenticator accepts exactly one credential pair and issues
// exactly one token. The token never expires and cannot be revoked.
type StaticAuthenticator struct {
	email    string
	password string
	token    string
}

// NewStaticAuthenticator constructs a StaticAuthenticator for the given
// credential pair and token.
func NewStaticAuthenticator(email, password, token string) *StaticAuthenticator {
	return &StaticAuthenticator{email: email, password: password, token: token}
}

// Login returns the static token when both fields match exactly.
// A wrong email and a wrong password are indistinguishable to the caller.
func (a *StaticAuthenticator) Login(email, password string) (string, error) {
	if email != a.email || password != a.password {
		return "", ErrInvalidCredentials
	}
	return a.token, nil
}

// Authorize succeeds iff token equals the static token.
func (a *StaticAuthenticator) Authorize(token string) error {
	if token == "" || token != a.token {
		return ErrUnauthorized
	}
	return nil
}
