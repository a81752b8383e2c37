package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sweetstack/sweet-shop-api/internal/logger"
	"github.com/sweetstack/sweet-shop-api/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, password, role string) (int64, error)
}

// TokenGenerator defines an interface for issuing identity tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, user *models.UserDB) (string, error)
}

// AuthService handles registration, login and profile lookup.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user. Format validation happens at the handler;
// this only enforces username/email uniqueness. Role defaults to "user".
// The returned projection never includes the password hash.
func (svc *AuthService) Register(ctx context.Context, username, email, password, role string) (*models.PublicUser, error) {
	existing, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	if role == "" {
		role = models.RoleUser
	}

	id, err := svc.writer.Save(ctx, username, email, string(hashedPassword), role)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load created user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user.Public(), nil
}

// Login authenticates by username or email and returns a token plus the
// public user. Unknown account and wrong password are indistinguishable to
// the caller: both are ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (string, *models.PublicUser, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, usernameOrEmail, usernameOrEmail)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown account", "login", usernameOrEmail)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", user.Username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user.Public(), nil
}

// GetCurrentUser reloads the user's profile from storage, independent of
// whatever the token claims say.
func (svc *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*models.PublicUser, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Public(), nil
}
