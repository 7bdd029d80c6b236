package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adiwinata/deposito/internal/config"
	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/store"
	"github.com/adiwinata/deposito/internal/utils"
	"github.com/adiwinata/deposito/models"
)

// bootstrapAdminUsername is the login of the admin account created on first
// start against an empty user table.
const bootstrapAdminUsername = "admin"

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, JWT token lifecycle and
// the admin-only user-management operations, using a UserRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bootstrapAdminPassword is the initial password of the bootstrap admin
	// account. Only consulted while the user table is empty.
	bootstrapAdminPassword string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:         userRepository,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenDuration:          cfg.TokenDuration,
		bootstrapAdminPassword: cfg.BootstrapAdminPassword,
		logger:                 logger,
	}
}

// Register creates a new non-admin user account.
//
// It validates that username and password are non-empty, hashes the password
// with bcrypt and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUsernameTaken).
func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	return a.createUser(ctx, username, password, false)
}

// CreateUser creates a user on behalf of an administrator, optionally with
// admin rights. Same validation and errors as Register.
func (a *authService) CreateUser(ctx context.Context, username, password string, isAdmin bool) (models.User, error) {
	return a.createUser(ctx, username, password, isAdmin)
}

func (a *authService) createUser(ctx context.Context, username, password string, isAdmin bool) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.User{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// Login verifies the given credentials against the stored bcrypt hash.
//
// Returns the stored user on success or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrUserNotFound (wrapped) if no such username exists.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user lookup ended with error")
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	if !utils.CheckPassword(password, foundUser.PasswordHash) {
		log.Error().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token creation ended with error")
		return models.Token{}, ErrTokenCreationFailed
	}

	return token, nil
}

// ParseToken validates the signature, expiry and issuer of tokenString.
// Every validation failure is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("token validation ended with error")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetUser loads a user by id.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := a.userRepository.GetUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user lookup ended with error")
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	return foundUser, nil
}

// EnsureBootstrapAdmin creates the "admin" account when the user table is
// empty. Called once during server startup; a non-empty table is a no-op.
func (a *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	total, err := a.userRepository.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("user count ended with error: %w", err)
	}
	if total > 0 {
		return nil
	}

	if _, err := a.createUser(ctx, bootstrapAdminUsername, a.bootstrapAdminPassword, true); err != nil {
		return fmt.Errorf("bootstrap admin creation ended with error: %w", err)
	}

	a.logger.Info().Str("username", bootstrapAdminUsername).Msg("bootstrap admin account created")
	return nil
}

// ListUsers returns every account, ordered by username.
func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}

// UpdateUserPassword replaces the password of the given user.
func (a *authService) UpdateUserPassword(ctx context.Context, userID int64, newPassword string) error {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return fmt.Errorf("password hashing ended with error: %w", err)
	}

	if err := a.userRepository.UpdateUserPassword(ctx, userID, passwordHash); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}

// DeleteUser removes an account. Admins cannot delete their own account,
// which guarantees at least one admin survives every delete.
func (a *authService) DeleteUser(ctx context.Context, actorID, userID int64) error {
	if actorID == userID {
		return ErrCannotDeleteSelf
	}

	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
