package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/antigaspi/recruitment-system/internal/api/middleware"
	"github.com/antigaspi/recruitment-system/internal/core/ports"
)

// invalidCredentialsMessage is the only auth failure message the client ever
// sees. Missing credentials, unknown account, and wrong password all render
// identically so the login form cannot be used to enumerate accounts.
const invalidCredentialsMessage = "Identifiants invalides."

const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	auth   ports.AuthService
	logger zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type loginRequest struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type loginView struct {
	Email string
	Error string
}

// LoginPage handles GET /admin/login — renders the credential form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginView{})
}

// Login handles POST /admin/login — exchanges credentials for the session
// cookie and redirects to the dashboard, or re-renders the form with the
// generic error.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", loginView{Error: invalidCredentialsMessage})
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusUnauthorized, "login.html", loginView{Email: req.Email, Error: invalidCredentialsMessage})
	}

	token, _, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return c.Render(http.StatusUnauthorized, "login.html", loginView{Email: req.Email, Error: invalidCredentialsMessage})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})

	return c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout handles POST /admin/logout — clears the session cookie. The token
// itself stays valid until exp; statelessness means no revocation.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}
