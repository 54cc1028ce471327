package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"neurotask/internal/auth"
	"neurotask/internal/domain"
	"neurotask/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are
	// incorrect. Callers cannot distinguish an unknown identifier from a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when registering with a taken
	// username or email.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateTheme(ctx context.Context, id int64, theme string) error
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, hasher *auth.PasswordHasher, logger *logrus.Logger) UserService {
	return &userService{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

func (s *userService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

// Authenticate resolves identifier as email or username (case-insensitive)
// and verifies the password against the stored credential, whatever its
// encoding. A successful login against a legacy credential rewrites it as
// bcrypt; a credential that is already bcrypt is left alone.
func (s *userService) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if auth.DetectEncoding(user.PasswordHash) != auth.EncodingBcrypt {
		s.migrate(ctx, user, password)
	}

	return sanitizeUser(user), nil
}

func (s *userService) lookup(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.users.GetByUsername(ctx, identifier)
}

// migrate rewrites a just-verified legacy credential as bcrypt. The login
// already succeeded, so a failed rewrite is logged and swallowed; the next
// login retries it.
func (s *userService) migrate(ctx context.Context, user *domain.User, password string) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Warn("credential migration: hash failed")
		return
	}
	if err := s.users.Update(ctx, user.ID, repository.UserUpdate{PasswordHash: &hash}); err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Warn("credential migration: persist failed")
		return
	}
	user.PasswordHash = hash
	s.logger.WithField("user_id", user.ID).Info("credential migrated to bcrypt")
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) UpdateTheme(ctx context.Context, id int64, theme string) error {
	return s.users.Update(ctx, id, repository.UserUpdate{Theme: &theme})
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Theme:         user.Theme,
		LastCheckDate: user.LastCheckDate,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
