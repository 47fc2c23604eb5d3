package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionCookie is the cookie the admin dashboard carries its session
// token in. API clients may use an Authorization bearer header instead.
const SessionCookie = "admin_session"

// Auth validates the session token and injects its claims into context.
// Used on JSON endpoints: failures return 401.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := sessionClaims(c, jwtSecret)
			if err != nil {
				return err
			}

			c.Set("admin_id", claims["sub"])
			c.Set("admin_email", claims["email"])

			return next(c)
		}
	}
}

// SessionAuth is the HTML variant of Auth: an absent or invalid session
// redirects to the login view instead of returning a JSON 401.
func SessionAuth(jwtSecret, loginURL string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := sessionClaims(c, jwtSecret)
			if err != nil {
				return c.Redirect(http.StatusFound, loginURL)
			}

			c.Set("admin_id", claims["sub"])
			c.Set("admin_email", claims["email"])

			return next(c)
		}
	}
}

// sessionClaims extracts the token from the session cookie or the
// Authorization header, verifies signature and expiry, and returns the
// claims. Expiry is enforced by jwt.ParseWithClaims via the exp claim.
func sessionClaims(c echo.Context, jwtSecret string) (jwt.MapClaims, error) {
	raw := ""
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		raw = cookie.Value
	} else if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}
		raw = parts[1]
	}
	if raw == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	return claims, nil
}
