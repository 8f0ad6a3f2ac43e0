// Package session resolves the signed-in user from a signed session token.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mishasvintus/builder_site/internal/domain"
	"github.com/mishasvintus/builder_site/internal/logger"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session"

var (
	ErrInvalidToken   = errors.New("invalid session token")
	ErrSessionExpired = errors.New("session expired")
)

type userClaim struct {
	ID int64 `json:"id"`
}

// Claims is the session token payload.
type Claims struct {
	User    userClaim `json:"user"`
	Expires time.Time `json:"expires"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	now    func() time.Time
}

// NewManager creates a Manager using secret as the HMAC key.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), now: time.Now}
}

// Sign issues a token for s.
func (m *Manager) Sign(s domain.Session) (string, error) {
	claims := Claims{
		User:    userClaim{ID: s.UserID},
		Expires: s.ExpiresAt.UTC(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(m.now()),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns the session it carries.
func (m *Manager) Parse(token string) (*domain.Session, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.User.ID == 0 {
		return nil, ErrInvalidToken
	}
	if !claims.Expires.IsZero() && claims.Expires.Before(m.now()) {
		return nil, ErrSessionExpired
	}

	return &domain.Session{UserID: claims.User.ID, ExpiresAt: claims.Expires}, nil
}

// FromRequest returns the session carried by the session cookie or a bearer
// token, or nil when the request has no valid session.
func (m *Manager) FromRequest(r *http.Request) (*domain.Session, error) {
	token := tokenFromRequest(r)
	if token == "" {
		return nil, nil
	}
	return m.Parse(token)
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// Middleware attaches the request's session, if any, to the request context.
// Invalid tokens are logged and treated as anonymous requests.
func (m *Manager) Middleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := m.FromRequest(c.Request)
		if err != nil {
			log.Debug("ignoring session token", logger.Error(err))
		}
		if s != nil {
			c.Request = c.Request.WithContext(WithSession(c.Request.Context(), s))
		}
		c.Next()
	}
}

type contextKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx, or nil.
func FromContext(ctx context.Context) *domain.Session {
	s, _ := ctx.Value(contextKey{}).(*domain.Session)
	return s
}
