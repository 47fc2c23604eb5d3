// Command seed creates the admin account the dashboard login checks against.
// Run once after provisioning; a second run against the same email fails on
// the unique index.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"
	"golang.org/x/crypto/bcrypt"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
	"github.com/antigaspi/recruitment-system/internal/infrastructure/config"
	mongostore "github.com/antigaspi/recruitment-system/internal/infrastructure/db/mongo"
	"github.com/antigaspi/recruitment-system/pkg/logger"
)

const (
	defaultAdminEmail    = "admin@admin.com"
	defaultAdminPassword = "1mdpadmin1"
)

// seedConfig needs only the record store settings; unlike the API the
// seeder has no use for a signing secret.
type seedConfig struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo config.MongoConfig
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var cfg seedConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	email := envOr("ADMIN_EMAIL", defaultAdminEmail)
	password := envOr("ADMIN_PASSWORD", defaultAdminPassword)

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	repo := mongostore.NewAdminRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure admin indexes")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	admin, err := repo.Create(ctx, &domain.Admin{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			log.Warn().Str("email", email).Msg("admin already exists, nothing to do")
			return
		}
		log.Fatal().Err(err).Msg("failed to create admin")
	}

	log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("admin created")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
