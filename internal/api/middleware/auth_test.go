package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   "admin-1",
		"email": "admin@admin.com",
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func protectedContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okNext(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestAuth_ValidCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signedToken(t, testSecret, time.Hour)})
	c, rec := protectedContext(req)

	if err := Auth(testSecret)(okNext)(c); err != nil {
		t.Fatalf("expected request to pass: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := c.Get("admin_email"); got != "admin@admin.com" {
		t.Errorf("admin_email = %v", got)
	}
	if got := c.Get("admin_id"); got != "admin-1" {
		t.Errorf("admin_id = %v", got)
	}
}

func TestAuth_ValidBearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, time.Hour))
	c, rec := protectedContext(req)

	if err := Auth(testSecret)(okNext)(c); err != nil {
		t.Fatalf("expected request to pass: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	c, _ := protectedContext(req)

	err := Auth(testSecret)(okNext)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signedToken(t, "other-secret", time.Hour)})
	c, _ := protectedContext(req)

	err := Auth(testSecret)(okNext)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signedToken(t, testSecret, -time.Minute)})
	c, _ := protectedContext(req)

	err := Auth(testSecret)(okNext)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedAuthorizationHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	c, _ := protectedContext(req)

	err := Auth(testSecret)(okNext)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSessionAuth_RedirectsWithoutSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	c, rec := protectedContext(req)

	if err := SessionAuth(testSecret, "/admin/login")(okNext)(c); err != nil {
		t.Fatalf("redirect path should not error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != "/admin/login" {
		t.Errorf("redirect location = %q", got)
	}
}

func TestSessionAuth_ValidSessionPasses(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signedToken(t, testSecret, time.Hour)})
	c, rec := protectedContext(req)

	if err := SessionAuth(testSecret, "/admin/login")(okNext)(c); err != nil {
		t.Fatalf("expected request to pass: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
