package handler

import (
	"net/http"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookies writes and clears the session cookie that carries the
// signed token. Development uses Lax over plain HTTP; everything else is
// SameSite=None with the Secure flag so cross-site frontends can send it.
type SessionCookies struct {
	name string
	ttl  time.Duration
	dev  bool
}

// NewSessionCookies is the constructor for SessionCookies.
func NewSessionCookies(cfg *config.Config, tokenCodec service.TokenCodec) *SessionCookies {
	name := ""
	if cfg != nil && cfg.Auth != nil {
		name = cfg.Auth.CookieName
	}

	return &SessionCookies{
		name: name,
		ttl:  tokenCodec.SessionTTL(),
		dev:  cfg.IsDev(),
	}
}

// Issue sets the session cookie with the token and the session lifetime.
func (s *SessionCookies) Issue(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		Expires:  time.Now().Add(s.ttl),
		HttpOnly: true,
	}
	s.applySiteFlags(cookie)

	c.SetCookie(cookie)
}

// Clear expires the session cookie immediately.
func (s *SessionCookies) Clear(c echo.Context) {
	cookie := &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	}
	s.applySiteFlags(cookie)

	c.SetCookie(cookie)
}

func (s *SessionCookies) applySiteFlags(cookie *http.Cookie) {
	if s.dev {
		cookie.SameSite = http.SameSiteLaxMode
		cookie.Secure = false

		return
	}

	cookie.SameSite = http.SameSiteNoneMode
	cookie.Secure = true
}
