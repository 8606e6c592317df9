package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"marketlens/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts persistence for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailAlreadyExists when a user
	// with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user matching email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns the user matching id, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdatePassword replaces the stored password hash for id.
	UpdatePassword(ctx context.Context, id uint, hash string) error
}

// JWTGenerator signs tokens for authenticated users. Consumer-defined.
type JWTGenerator interface {
	GenerateToken(userID uint, email string) (string, error)
}

// ActivityRecorder records a user action. Consumer-defined; a nil recorder
// disables recording.
type ActivityRecorder interface {
	Record(ctx context.Context, userID uint, action, target, metadata string)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	activity     ActivityRecorder
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator, activity ActivityRecorder) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		activity:     activity,
	}
}

// validatePassword checks the password against security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new user with a hashed password.
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login authenticates a user and returns a JWT token on success.
// A bcrypt comparison runs even when the user does not exist, so the
// response time does not leak account existence.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path for
	// unknown users.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	if u.activity != nil {
		u.activity.Record(ctx, user.ID, "LOGIN", user.Email, "")
	}

	return token, nil
}

// UpdatePassword replaces the password of an authenticated user after
// verifying the current one.
func (u *authUsecase) UpdatePassword(ctx context.Context, userID uint, current, next string) error {
	if err := validatePassword(next); err != nil {
		return err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return u.users.UpdatePassword(ctx, userID, string(hashed))
}
