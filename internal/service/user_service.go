package service

import (
	"context"
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"helpugee/internal/model"
	"helpugee/internal/repository"
)

const (
	tempPasswordLen     = 8
	tempPasswordCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

	// passwordChangeMinLen is the threshold below which a password submitted
	// with an edit is ignored rather than applied.
	passwordChangeMinLen = 6
)

// UserService exposes the user lifecycle: registration with a generated
// temporary password, edits with an optional password change, and removal.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	RegisterUser(ctx context.Context, user *model.User) (tempPassword string, err error)
	EditUser(ctx context.Context, user *model.User, newPassword string) error
	RemoveUser(ctx context.Context, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService over the user repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// RegisterUser creates a user with a server-generated temporary password and
// returns the plaintext once, for the administrator to hand over. Only the
// hash is persisted.
func (s *userService) RegisterUser(ctx context.Context, user *model.User) (string, error) {
	tempPassword, err := generatePassword()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcryptCost)
	if err != nil {
		return "", err
	}
	user.Password = string(hash)

	if err := s.repo.Add(ctx, user); err != nil {
		return "", err
	}
	return tempPassword, nil
}

// EditUser applies a generic edit and, when the submitted password is long
// enough to be intentional, a separate password change. The edit itself never
// touches the stored password.
func (s *userService) EditUser(ctx context.Context, user *model.User, newPassword string) error {
	if err := s.repo.Edit(ctx, user); err != nil {
		return err
	}
	if len(newPassword) >= passwordChangeMinLen {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
		if err != nil {
			return err
		}
		user.Password = string(hash)
		return s.repo.ChangePassword(ctx, user)
	}
	return nil
}

func (s *userService) RemoveUser(ctx context.Context, id uint) error {
	return s.repo.Remove(ctx, id)
}

func generatePassword() (string, error) {
	buf := make([]byte, tempPasswordLen)
	max := big.NewInt(int64(len(tempPasswordCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tempPasswordCharset[n.Int64()]
	}
	return string(buf), nil
}
