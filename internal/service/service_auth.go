package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/series-catalog/internal/config"
	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/internal/store"
	"github.com/MKhiriev/series-catalog/internal/utils"
	"github.com/MKhiriev/series-catalog/internal/validators"
	"github.com/MKhiriev/series-catalog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// passwordHashCost is the bcrypt cost used at registration.
	passwordHashCost int

	// jwtOptions holds the signing key, algorithm, issuer and lifetime of
	// issued tokens.
	jwtOptions utils.JWTOptions

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewCatalogValidator(),
		passwordHashCost: cfg.PasswordHashCost,
		jwtOptions: utils.JWTOptions{
			SignKey:   cfg.TokenSignKey,
			Algorithm: cfg.TokenAlgorithm,
			Issuer:    cfg.TokenIssuer,
			Duration:  cfg.TokenDuration,
		},
		logger: logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if the email is malformed or the password is
//     empty or longer than bcrypt accepts.
//   - ErrEmailAlreadyRegistered if the email is taken. The check runs before
//     the insert and again through the unique index, which settles
//     concurrent registrations.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	switch {
	case err == nil:
		return models.User{}, ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(credentials.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        credentials.Email,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, fmt.Errorf("%w: %w", ErrEmailAlreadyRegistered, err)
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// Only storage failures are reported as other errors.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("email", credentials.Email).Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(credentials.Password, foundUser.PasswordHash) {
		log.Warn().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT whose subject is the user's email.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.Email, a.jwtOptions)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResolveToken validates a raw JWT string and loads the user named by its
// subject.
//
// Any validation failure (expired, wrong signature or algorithm, malformed)
// and a subject that no longer resolves to a user are normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ResolveToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.jwtOptions)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByEmail(ctx, token.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("email", token.Email).Msg("token subject does not resolve to a user")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}
