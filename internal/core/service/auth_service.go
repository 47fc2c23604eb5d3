package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/antigaspi/recruitment-system/internal/api/metrics"
	"github.com/antigaspi/recruitment-system/internal/core/domain"
	"github.com/antigaspi/recruitment-system/internal/core/ports"
)

// AuthService verifies admin credentials and issues stateless HS256 session
// tokens. There is no server-side session table and therefore no revocation;
// a token is valid until its exp claim passes.
type AuthService struct {
	repo      ports.AdminRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AdminRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login exchanges credentials for a session token. The three failure reasons
// (missing credentials, unknown account, wrong password) are logged and
// counted distinctly here but must be collapsed into one generic message by
// anything client-facing — account enumeration is the concern.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	if email == "" || password == "" {
		s.logger.Debug().Msg("login with missing credentials")
		metrics.LoginsTotal.WithLabelValues("missing_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			s.logger.Debug().Str("email", email).Msg("login for unknown admin")
			metrics.LoginsTotal.WithLabelValues("unknown_account").Inc()
			return "", nil, domain.ErrAdminNotFound
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		s.logger.Debug().Str("email", email).Msg("login with wrong password")
		metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", admin.Email).Msg("admin logged in")
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, admin, nil
}

func (s *AuthService) generateToken(admin *domain.Admin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   admin.ID,
		"email": admin.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
