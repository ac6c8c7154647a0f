package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/bartek-filipiuk/dw-zizi/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"

	tokenTypeRefresh = "refresh"

	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// Config carries the signing secret and token lifetimes. It is built once
// at startup and handed to NewTokenManager; nothing reads the secret from
// the environment after that, so tests can inject their own.
type Config struct {
	Secret        []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	SecureCookies bool
}

// ConfigFromEnv builds the production Config from JWT_SECRET and APP_ENV.
func ConfigFromEnv() Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "fallback-secret-change-me"
	}
	return Config{
		Secret:        []byte(secret),
		AccessTTL:     defaultAccessTTL,
		RefreshTTL:    defaultRefreshTTL,
		SecureCookies: os.Getenv("APP_ENV") == "production",
	}
}

// Claims is the signed token payload. Refresh tokens carry typ="refresh";
// access tokens carry no typ.
type Claims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager issues, verifies and silently renews the cookie pair that
// authenticates the admin.
type TokenManager struct {
	cfg Config
}

func NewTokenManager(cfg Config) *TokenManager {
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = defaultAccessTTL
	}
	if cfg.RefreshTTL == 0 {
		cfg.RefreshTTL = defaultRefreshTTL
	}
	return &TokenManager{cfg: cfg}
}

// Issue signs a fresh access+refresh pair for ident and sets both cookies.
func (tm *TokenManager) Issue(w http.ResponseWriter, ident utils.Identity) error {
	access, err := tm.sign(ident, tm.cfg.AccessTTL, "")
	if err != nil {
		return err
	}
	refresh, err := tm.sign(ident, tm.cfg.RefreshTTL, tokenTypeRefresh)
	if err != nil {
		return err
	}

	tm.setCookie(w, AccessCookie, access, int(tm.cfg.AccessTTL.Seconds()))
	tm.setCookie(w, RefreshCookie, refresh, int(tm.cfg.RefreshTTL.Seconds()))
	return nil
}

func (tm *TokenManager) sign(ident utils.Identity, ttl time.Duration, tokenType string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:     ident.Email,
		Role:      ident.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ident.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.cfg.Secret)
}

// Verify checks signature and expiry and returns the claims. It has no
// side effects; a bad token is an error, never a panic.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return tm.cfg.Secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Resolve authenticates a request from its cookies. A valid access token
// wins; otherwise a valid refresh token triggers a silent renewal (new
// pair set on w). Any failure degrades to ok=false.
//
// A refresh token presented in the access slot is rejected, and only a
// refresh-tagged token can drive renewal.
func (tm *TokenManager) Resolve(w http.ResponseWriter, r *http.Request) (utils.Identity, bool) {
	if cookie, err := r.Cookie(AccessCookie); err == nil {
		if claims, err := tm.Verify(cookie.Value); err == nil && claims.TokenType != tokenTypeRefresh {
			return identityFromClaims(claims), true
		}
	}

	if cookie, err := r.Cookie(RefreshCookie); err == nil {
		if claims, err := tm.Verify(cookie.Value); err == nil && claims.TokenType == tokenTypeRefresh {
			return tm.renew(w, identityFromClaims(claims))
		}
	}

	return utils.Identity{}, false
}

// renew re-issues the cookie pair from a refresh token's identity. The
// user row is not re-read here, so a deleted or demoted admin keeps
// access until the refresh token expires; this mirrors the original
// behavior and is the place a store check would go.
func (tm *TokenManager) renew(w http.ResponseWriter, ident utils.Identity) (utils.Identity, bool) {
	if err := tm.Issue(w, ident); err != nil {
		return utils.Identity{}, false
	}
	return ident, true
}

// Clear expires both cookies.
func (tm *TokenManager) Clear(w http.ResponseWriter) {
	tm.setCookie(w, AccessCookie, "", -1)
	tm.setCookie(w, RefreshCookie, "", -1)
}

func (tm *TokenManager) setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   tm.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func identityFromClaims(claims *Claims) utils.Identity {
	return utils.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}
}
