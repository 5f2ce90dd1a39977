package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf16"

	"kob-backend/internal/domain"
	"kob-backend/internal/repository"
)

// DefaultMinPasswordLength is the shortest password AddUser accepts.
const DefaultMinPasswordLength = 6

// ValidationError reports input rejected before any store call. Message is
// meant to be shown to the caller as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

var (
	// ErrPasswordTooShort is returned when the password has fewer UTF-16 code units than the configured minimum.
	ErrPasswordTooShort = &ValidationError{Field: "password", Message: "密码过短"}
	// ErrPasswordTooLong is returned when bcrypt cannot hash the password (over 72 bytes).
	ErrPasswordTooLong = &ValidationError{Field: "password", Message: "password too long"}
	// ErrUserExists is returned when AddUser targets an id that is already stored.
	ErrUserExists = errors.New("user already exists")
)

// UserService describes the user endpoint operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	AddUser(ctx context.Context, id int64, username, password string) error
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	users          repository.UserRepository
	hasher         PasswordHasher
	minPasswordLen int
}

func NewUserService(users repository.UserRepository, hasher PasswordHasher, minPasswordLen int) UserService {
	if minPasswordLen <= 0 {
		minPasswordLen = DefaultMinPasswordLength
	}
	return &userService{
		users:          users,
		hasher:         hasher,
		minPasswordLen: minPasswordLen,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// GetUser returns nil without an error when the id is unknown.
func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) AddUser(ctx context.Context, id int64, username, password string) error {
	if passwordLength(password) < s.minPasswordLen {
		return ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	user := &domain.User{
		ID:       id,
		Username: username,
		Password: hash,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.users.DeleteByID(ctx, id)
}

// passwordLength counts UTF-16 code units, so a character outside the BMP
// counts as two. Existing clients were validated with that rule.
func passwordLength(password string) int {
	return len(utf16.Encode([]rune(password)))
}
