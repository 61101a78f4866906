package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewValidator(),
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BCryptCost,
		logger:         logger,
	}
}

// Register creates a new account and issues a token for it.
//
// The email is checked before the username, so a request colliding on both
// reports the email. A unique index violation raised by a concurrent
// registration is reported the same way.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)
	if req.Role == "" {
		req.Role = models.RoleUser
	}

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("func", "*authService.Register").Msg("invalid registration data provided")
		return models.AuthResult{}, registrationValidationError(err)
	}

	if err := a.ensureAvailable(ctx, req); err != nil {
		return models.AuthResult{}, err
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.AuthResult{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	})
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.AuthResult{}, ErrEmailTaken
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.AuthResult{}, ErrUsernameTaken
	case err != nil:
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issue(ctx, user)
}

func (a *authService) ensureAvailable(ctx context.Context, req models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("func", "*authService.ensureAvailable").Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	_, err = a.userRepository.FindUserByUsername(ctx, req.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("func", "*authService.ensureAvailable").Msg("user search by username failed")
		return fmt.Errorf("user search by username failed: %w", err)
	}

	return nil
}

// Login checks the credentials and issues a token. An unknown email and a
// wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, newValidationError(app.MsgProvideEmailAndPass, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "*authService.Login").Msg("login attempt for unknown email")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePassword(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("stored password hash is unusable")
		} else {
			log.Info().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		}
		return models.AuthResult{}, ErrInvalidCredentials
	}

	return a.issue(ctx, user)
}

// Authenticate validates tokenString and resolves it to the current identity.
// Any token failure, including a subject whose user is gone, is normalised
// to ErrTokenIsExpiredOrInvalid.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.Authenticate").Msg("token rejected")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "*authService.Authenticate").Str("user_id", token.UserID).Msg("token subject no longer exists")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by id failed")
		return models.Identity{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return models.Identity{UserID: user.ID, Role: user.Role}, nil
}

func (a *authService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Me").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (a *authService) issue(ctx context.Context, user models.User) (models.AuthResult, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.issue").Msg("token generation failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResult{User: user, Token: token.SignedString}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func registrationValidationError(err error) error {
	var fieldErr *validators.FieldError
	if !errors.As(err, &fieldErr) {
		return newValidationError(app.MsgProvideRegistrationData, err)
	}

	switch {
	case fieldErr.Field == "email" && fieldErr.Tag == "email":
		return newValidationError(app.MsgInvalidEmail, err)
	case fieldErr.Field == "password" && fieldErr.Tag == "min":
		return newValidationError(app.MsgPasswordTooShort, err)
	case fieldErr.Field == "role":
		return newValidationError(app.MsgInvalidRole, err)
	default:
		return newValidationError(app.MsgProvideRegistrationData, err)
	}
}
