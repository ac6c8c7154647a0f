package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bartek-filipiuk/dw-zizi/internal/utils"
)

var testIdentity = utils.Identity{
	UserID: "user-123",
	Email:  "admin@example.com",
	Role:   "admin",
}

func testConfig() Config {
	return Config{Secret: []byte("test-secret")}
}

// issueCookies runs Issue against a recorder and returns the cookies it set.
func issueCookies(t *testing.T, tm *TokenManager) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := tm.Issue(rec, testIdentity); err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("expected 2 cookies, got %d", len(cookies))
	}
	return cookies
}

func cookieByName(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

// requestWith builds a GET request carrying the given cookies.
func requestWith(cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestIssueSetsCookieAttributes(t *testing.T) {
	tm := NewTokenManager(testConfig())
	cookies := issueCookies(t, tm)

	for _, c := range cookies {
		if !c.HttpOnly {
			t.Errorf("cookie %s should be httpOnly", c.Name)
		}
		if c.SameSite != http.SameSiteLaxMode {
			t.Errorf("cookie %s should be SameSite=Lax", c.Name)
		}
		if c.Path != "/" {
			t.Errorf("cookie %s path = %q, want /", c.Name, c.Path)
		}
	}

	access := cookieByName(t, cookies, AccessCookie)
	if access.MaxAge != int(defaultAccessTTL.Seconds()) {
		t.Errorf("access MaxAge = %d, want %d", access.MaxAge, int(defaultAccessTTL.Seconds()))
	}
	refresh := cookieByName(t, cookies, RefreshCookie)
	if refresh.MaxAge != int(defaultRefreshTTL.Seconds()) {
		t.Errorf("refresh MaxAge = %d, want %d", refresh.MaxAge, int(defaultRefreshTTL.Seconds()))
	}
}

// TestIssueThenResolve verifies the roundtrip property: the identity that
// went into Issue comes back out of Resolve unchanged.
func TestIssueThenResolve(t *testing.T) {
	tm := NewTokenManager(testConfig())
	cookies := issueCookies(t, tm)

	rec := httptest.NewRecorder()
	ident, ok := tm.Resolve(rec, requestWith(cookies...))
	if !ok {
		t.Fatal("Resolve rejected a freshly issued session")
	}
	if ident != testIdentity {
		t.Errorf("Resolve identity = %+v, want %+v", ident, testIdentity)
	}

	// A valid access token must not trigger a renewal.
	if got := rec.Result().Cookies(); len(got) != 0 {
		t.Errorf("Resolve reissued cookies on a valid access token: %v", got)
	}
}

// TestVerifyExpired verifies that a correctly signed but expired token
// fails verification.
func TestVerifyExpired(t *testing.T) {
	tm := NewTokenManager(testConfig())
	token, err := tm.sign(testIdentity, -time.Minute, "")
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := tm.Verify(token); err == nil {
		t.Error("expected expired token to fail Verify")
	}
}

func TestVerifyTampered(t *testing.T) {
	tm := NewTokenManager(testConfig())
	token, err := tm.sign(testIdentity, time.Hour, "")
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := tm.Verify(token + "x"); err == nil {
		t.Error("expected tampered token to fail Verify")
	}

	other := NewTokenManager(Config{Secret: []byte("other-secret")})
	if _, err := other.Verify(token); err == nil {
		t.Error("expected token signed with a different secret to fail Verify")
	}
}

// TestRefreshTokenRejectedAsAccess covers the type-tag check: a refresh
// token placed in the access cookie slot must not authenticate.
func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	tm := NewTokenManager(testConfig())
	cookies := issueCookies(t, tm)
	refresh := cookieByName(t, cookies, RefreshCookie)

	rec := httptest.NewRecorder()
	_, ok := tm.Resolve(rec, requestWith(&http.Cookie{Name: AccessCookie, Value: refresh.Value}))
	if ok {
		t.Error("a refresh token in the access slot must not authenticate")
	}
}

// TestAccessTokenRejectedAsRefresh is the inverse: an access token in the
// refresh slot must not drive renewal.
func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	tm := NewTokenManager(testConfig())
	cookies := issueCookies(t, tm)
	access := cookieByName(t, cookies, AccessCookie)

	rec := httptest.NewRecorder()
	_, ok := tm.Resolve(rec, requestWith(&http.Cookie{Name: RefreshCookie, Value: access.Value}))
	if ok {
		t.Error("an access token in the refresh slot must not renew a session")
	}
}

// TestSilentRenewal covers the renewal path: an expired access token with
// a still-valid refresh token yields the original identity and a fresh,
// valid cookie pair as a side effect.
func TestSilentRenewal(t *testing.T) {
	// Mint a pair whose access token is already expired; the secret is
	// shared with the resolving manager.
	stale := NewTokenManager(Config{Secret: []byte("test-secret"), AccessTTL: -time.Minute, RefreshTTL: time.Hour})
	cookies := issueCookies(t, stale)

	tm := NewTokenManager(testConfig())
	rec := httptest.NewRecorder()
	ident, ok := tm.Resolve(rec, requestWith(cookies...))
	if !ok {
		t.Fatal("Resolve rejected an expired-access/valid-refresh session")
	}
	if ident != testIdentity {
		t.Errorf("renewed identity = %+v, want %+v", ident, testIdentity)
	}

	renewed := rec.Result().Cookies()
	if len(renewed) != 2 {
		t.Fatalf("expected a renewed cookie pair, got %d cookies", len(renewed))
	}

	newAccess := cookieByName(t, renewed, AccessCookie)
	claims, err := tm.Verify(newAccess.Value)
	if err != nil {
		t.Fatalf("renewed access token failed Verify: %v", err)
	}
	if claims.TokenType == tokenTypeRefresh {
		t.Error("renewed access token is tagged as refresh")
	}
	if claims.Subject != testIdentity.UserID {
		t.Errorf("renewed access subject = %q, want %q", claims.Subject, testIdentity.UserID)
	}
}

// TestResolveNothingValid verifies the unauthenticated terminal state.
func TestResolveNothingValid(t *testing.T) {
	tm := NewTokenManager(testConfig())

	rec := httptest.NewRecorder()
	if _, ok := tm.Resolve(rec, requestWith()); ok {
		t.Error("Resolve with no cookies must be unauthenticated")
	}

	if _, ok := tm.Resolve(rec, requestWith(
		&http.Cookie{Name: AccessCookie, Value: "garbage"},
		&http.Cookie{Name: RefreshCookie, Value: "garbage"},
	)); ok {
		t.Error("Resolve with garbage cookies must be unauthenticated")
	}
}

func TestClearExpiresCookies(t *testing.T) {
	tm := NewTokenManager(testConfig())
	rec := httptest.NewRecorder()
	tm.Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("expected 2 expired cookies, got %d", len(cookies))
	}
	for _, c := range cookies {
		if c.MaxAge >= 0 {
			t.Errorf("cookie %s MaxAge = %d, want negative", c.Name, c.MaxAge)
		}
		if c.Value != "" {
			t.Errorf("cookie %s still carries value %q", c.Name, c.Value)
		}
	}
}
