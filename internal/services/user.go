package services

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/sbilibin2017/bloglist/internal/logger"
	"github.com/sbilibin2017/bloglist/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 3

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// UserReader defines read-only operations for users.
type UserReader interface {
	FindAll(ctx context.Context) ([]models.UserRecord, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// UserWriter defines write operations for users.
// Create reports models.ErrDuplicateUsername when the store rejects the username.
type UserWriter interface {
	Create(ctx context.Context, user models.UserRecord) (models.UserRecord, error)
}

// UserService handles user registration.
type UserService struct {
	reader UserReader
	writer UserWriter
	cost   int
}

// NewUserService creates a new UserService hashing passwords with the given bcrypt cost.
// A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewUserService(reader UserReader, writer UserWriter, cost int) *UserService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &UserService{
		reader: reader,
		writer: writer,
		cost:   cost,
	}
}

// Register creates a user with a unique username and a hashed password.
func (svc *UserService) Register(ctx context.Context, in models.UserInput) (models.PublicUser, error) {
	adult := true
	if in.Adult != nil {
		adult = *in.Adult
	}

	if in.Username == nil || *in.Username == "" {
		return models.PublicUser{}, ErrUsernameMissing
	}
	username := *in.Username

	exists, err := svc.reader.ExistsByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return models.PublicUser{}, err
	}
	if exists {
		logger.Log.Infow("user already exists", "username", username)
		return models.PublicUser{}, ErrUsernameNotUnique
	}

	var password string
	if in.Password != nil {
		password = *in.Password
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return models.PublicUser{}, ErrPasswordTooShort
	}
	if len(password) > maxPasswordBytes {
		return models.PublicUser{}, ErrPasswordTooLong
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return models.PublicUser{}, err
	}

	record := models.UserRecord{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Adult:        adult,
	}
	if in.Name != nil {
		record.Name = *in.Name
	}

	saved, err := svc.writer.Create(ctx, record)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			logger.Log.Infow("user already exists", "username", username)
			return models.PublicUser{}, ErrUsernameNotUnique
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return models.PublicUser{}, err
	}

	return models.FormatUser(saved), nil
}

// List returns every registered user without password hashes.
func (svc *UserService) List(ctx context.Context) ([]models.PublicUser, error) {
	records, err := svc.reader.FindAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	users := make([]models.PublicUser, 0, len(records))
	for _, r := range records {
		users = append(users, models.FormatUser(r))
	}
	return users, nil
}
