package helpers

import (
	"net/http"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type TokenIssuer interface {
	CreateToken(identity *models.Identity) (string, error)
	TTL() time.Duration
}

// SessionCookie writes the http-only cookie carrying the session token.
type SessionCookie struct {
	Tokens TokenIssuer
	Name   string
	Secure bool
}

func NewIdentity(user *models.User) *models.Identity {
	return &models.Identity{Id: user.Id.Hex(), Name: user.Name, Roles: user.Roles}
}

// Set adds a fresh session cookie for identity to response.
func (s *SessionCookie) Set(response *presentationProtocols.HttpResponse, identity *models.Identity) error {
	token, err := s.Tokens.CreateToken(identity)
	if err != nil {
		return err
	}

	ttl := s.Tokens.TTL()
	cookie := s.cookie(token)
	cookie.MaxAge = int(ttl.Seconds())
	cookie.Expires = time.Now().Add(ttl)
	response.Header.Add("Set-Cookie", cookie.String())
	return nil
}

func (s *SessionCookie) Clear(response *presentationProtocols.HttpResponse) {
	cookie := s.cookie("")
	cookie.MaxAge = -1
	response.Header.Add("Set-Cookie", cookie.String())
}

func (s *SessionCookie) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     s.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
