package services

import (
	"context"
	"encoding/base64"
	stderrors "errors"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/blake2b"
)

// userDirectoryImpl implements the UserDirectory interface.
// Passwords are kept only as bcrypt hashes.
type userDirectoryImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	userValidator *validation.UserValidator
	auth          config.AuthConfig
}

// NewUserDirectory creates a new UserDirectory over repo
func NewUserDirectory(repo sqlite.Repository, cfg *config.Config) UserDirectory {
	return &userDirectoryImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		userValidator: validation.NewUserValidator(),
		auth:          cfg.Auth,
	}
}

// Register adds a user. Usernames are stored exactly as given and compared
// case-sensitively. An existing user is never overwritten.
func (d *userDirectoryImpl) Register(ctx context.Context, username, password string) error {
	if err := d.userValidator.ValidateRegistration(username, password); err != nil {
		return errors.NewValidationError("invalid registration", err)
	}

	exists, err := d.exists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return errors.NewDuplicateError("user", username)
	}

	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), d.auth.BcryptCost)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeValidation, "password cannot be hashed")
	}

	user := domain.User{Username: username, PasswordHash: string(hash)}
	dbUser := d.mapper.User.ToDatabase(user)
	if err := d.repo.CreateUser(ctx, &dbUser); err != nil {
		return err
	}

	logging.Debugf("registered user %q\n", username)
	return nil
}

// Authenticate reports whether the password matches the stored hash.
// An unknown username is simply false.
func (d *userDirectoryImpl) Authenticate(ctx context.Context, username, password string) (bool, error) {
	dbUser, err := d.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return false, nil
		}
		return false, err
	}
	user := d.mapper.User.FromDatabase(*dbUser)

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), bcryptInput(password))
	if stderrors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, errors.NewDatabaseError("compare password hash", err)
	}
	return true, nil
}

// SeedDefault registers the configured default account into an empty directory
func (d *userDirectoryImpl) SeedDefault(ctx context.Context) error {
	count, err := d.repo.CountUsers(ctx)
	if err != nil || count > 0 {
		return err
	}
	return d.Register(ctx, d.auth.DefaultUsername, d.auth.DefaultPassword)
}

func (d *userDirectoryImpl) exists(ctx context.Context, username string) (bool, error) {
	_, err := d.repo.GetUserByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return false, nil
	}
	return false, err
}

// bcryptInput digests the password so any length fits bcrypt's 72 byte limit
// and no byte past that limit is ignored
func bcryptInput(password string) []byte {
	sum := blake2b.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
