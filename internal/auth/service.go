package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eduman-backend/internal/database/models"
	apperrors "eduman-backend/internal/errors"
	"eduman-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenType is the scheme returned with every access token
const TokenType = "Bearer"

// AuthService registers users, verifies credentials and issues access tokens
type AuthService struct {
	config    *AuthConfig
	users     repository.UserRepositoryInterface
	hasher    PasswordHasher
	validator *validator.Validate
	now       func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Email string `json:"email" example:"jane.doe@school.edu"`
	Role  string `json:"role" example:"admin"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserID returns the subject of the token as a UUID
func (c *AuthClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// RegisterRequest represents the self-registration payload
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=320" example:"jane.doe@school.edu"`
	Password string `json:"password" validate:"required" example:"Secret#123"`
}

// RegisterResponse represents the result of a successful registration
type RegisterResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email" example:"jane.doe@school.edu"`
}

// LoginRequest represents the credentials payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"jane.doe@school.edu"`
	Password string `json:"password" validate:"required" example:"Secret#123"`
}

// TokenResponse represents an issued access token
type TokenResponse struct {
	AccessToken string    `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string    `json:"tokenType" example:"Bearer"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// RegistrationError carries every reason a registration was rejected
type RegistrationError struct {
	Reasons []string
}

func (e *RegistrationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users repository.UserRepositoryInterface, validator *validator.Validate) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:    config,
		users:     users,
		hasher:    NewBcryptHasher(config.BcryptCost),
		validator: validator,
		now:       time.Now,
	}, nil
}

// Hasher returns the password hasher used by the service
func (s *AuthService) Hasher() PasswordHasher {
	return s.hasher
}

// Register creates an active account without an institution.
// All rejected rules are reported together in a RegistrationError.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var reasons []string
	if err := s.validator.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
		for _, fe := range fieldErrs {
			reasons = append(reasons, describeField(fe))
		}
	}

	var policyErr *PasswordPolicyError
	if err := ValidatePassword(req.Password); errors.As(err, &policyErr) {
		reasons = append(reasons, policyErr.Violations...)
	}

	if req.Email != "" {
		existing, err := s.users.GetByEmail(ctx, req.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing user: %w", err)
		}
		if existing != nil {
			reasons = append(reasons, apperrors.ErrUserExists.Error())
		}
	}

	if len(reasons) > 0 {
		return nil, &RegistrationError{Reasons: reasons}
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.As(err, &policyErr) {
			return nil, &RegistrationError{Reasons: policyErr.Violations}
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:     localPart(req.Email),
		Email:        req.Email,
		UserName:     req.Email,
		Role:         models.DefaultUserRole,
		Status:       models.UserStatusActive,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &RegisterResponse{ID: user.ID, Email: user.Email}, nil
}

// Login verifies credentials and issues an access token.
// Unknown emails, wrong passwords and inactive accounts all yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, req.Password) || !user.IsActive() {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   TokenType,
		ExpiresAt:   expiresAt,
	}, nil
}

// GenerateJWT creates a signed HS256 token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.config.TokenLifetime)
	claims := &AuthClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

func describeField(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
