package usecases

import (
	"errors"
	"fmt"
	"time"

	"station-server/auth"
	"station-server/entities"
	"station-server/repositories"

	"gorm.io/gorm"
)

// dummyHash is compared against when a login names an unknown handle, so
// the failure path costs a bcrypt round either way.
var dummyHash, _ = auth.HashPassword("station-server-dummy")

type AuthUseCase struct {
	Users     repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthUseCase(users repositories.UserRepository, jwtSecret []byte, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		Users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new account and returns it with a freshly issued token.
func (uc *AuthUseCase) Register(handle, password string) (*entities.User, string, error) {
	if handle == "" {
		return nil, "", fmt.Errorf("%w: handle is required", ErrValidation)
	}
	if password == "" {
		return nil, "", fmt.Errorf("%w: password is required", ErrValidation)
	}

	if _, err := uc.Users.GetByHandle(handle); err == nil {
		return nil, "", ErrDuplicateHandle
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		Handle:       handle,
		PasswordHash: hash,
	}
	if err := uc.Users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user.ID, uc.jwtSecret, uc.tokenTTL)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown handles and wrong
// passwords are indistinguishable to the caller.
func (uc *AuthUseCase) Login(handle, password string) (string, error) {
	user, err := uc.Users.GetByHandle(handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			auth.CheckPassword(dummyHash, password)
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID, uc.jwtSecret, uc.tokenTTL)
}

// CurrentUser resolves an authenticated user ID to its account record.
func (uc *AuthUseCase) CurrentUser(userID string) (*entities.User, error) {
	user, err := uc.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
