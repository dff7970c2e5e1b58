package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Only-Gg/gih/internal/config"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/store"
	"github.com/Only-Gg/gih/internal/utils"
	"github.com/Only-Gg/gih/models"
)

// authService is the concrete implementation of AuthService.
// It verifies admin credentials against the AdminRepository using bcrypt
// comparison and handles the JWT token lifecycle.
type authService struct {
	// adminRepository is the data-access layer used to look up and seed
	// the administrator account.
	adminRepository store.AdminRepository

	// defaultUsername and defaultPassword describe the administrator
	// account seeded on first start when no account exists yet.
	defaultUsername string
	defaultPassword string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AdminRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(adminRepository store.AdminRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminRepository: adminRepository,
		defaultUsername: cfg.AdminUsername,
		defaultPassword: cfg.AdminPassword,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Login authenticates the administrator.
//
// It validates that both Username and Password are non-empty, looks up the
// account, and compares the stored bcrypt hash against the supplied password.
//
// Returns the admin record or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrWrongCredentials if the account does not exist or the password does
//     not match. The two cases are deliberately indistinguishable to callers.
func (a *authService) Login(ctx context.Context, credentials models.AdminLoginRequest) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("empty admin credentials provided")
		return models.Admin{}, ErrInvalidDataProvided
	}

	admin, err := a.adminRepository.FindAdminByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			log.Warn().Str("username", credentials.Username).Msg("login attempt for unknown admin")
			return models.Admin{}, ErrWrongCredentials
		}
		log.Err(err).Str("username", credentials.Username).Msg("admin lookup failed")
		return models.Admin{}, fmt.Errorf("admin lookup failed: %w", err)
	}

	if !utils.CheckPassword(admin.PasswordHash, credentials.Password) {
		log.Warn().Str("username", credentials.Username).Msg("wrong admin password")
		return models.Admin{}, ErrWrongCredentials
	}

	return admin, nil
}

// CreateToken issues a signed JWT for the given admin.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the admin username as the subject, and
// expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, admin models.Admin) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, admin.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// EnsureDefaultAdmin seeds the administrator account on startup.
//
// When no account with the configured default username exists, one is created
// with a bcrypt hash of the default password. An already existing account is
// left untouched, so a changed stored password survives restarts.
func (a *authService) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := a.adminRepository.FindAdminByUsername(ctx, a.defaultUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrAdminNotFound) {
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(a.defaultPassword)
	if err != nil {
		return fmt.Errorf("hashing default admin password: %w", err)
	}

	_, err = a.adminRepository.CreateAdmin(ctx, models.Admin{
		Username:     a.defaultUsername,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// Another replica may have seeded the account between lookup and insert.
		if errors.Is(err, store.ErrAdminAlreadyExists) {
			return nil
		}
		return fmt.Errorf("seeding default admin failed: %w", err)
	}

	a.logger.Info().Str("username", a.defaultUsername).Msg("default admin account created")
	return nil
}
