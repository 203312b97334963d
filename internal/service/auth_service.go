package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"helpugee/internal/auth"
	errs "helpugee/internal/errors"
	"helpugee/internal/model"
	"helpugee/internal/repository"
)

const bcryptCost = 10

// AuthService proves caller identity: password hashing and verification plus
// token issuance on login.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Hash(secret string) (string, error)
	Compare(secret, hash string) bool
}

type authService struct {
	userRepo    repository.UserRepository
	sectionRepo repository.SectionRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sectionRepo repository.SectionRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:    userRepo,
		sectionRepo: sectionRepo,
		jwtService:  jwtService,
	}
}

// Login verifies user credentials and returns a signed access token carrying
// id, username, section and role. Account and section state are checked
// before the password comparison so a deactivated account never reaches the
// bcrypt compare.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if !user.IsActive {
		return "", errs.ErrUserNotActive
	}

	section, err := s.sectionRepo.FindByID(ctx, user.SectionID)
	if err != nil {
		return "", err
	}
	// administrators may always log in, even through a deactivated section
	if !section.IsActive && section.Role != model.RoleAdministrator {
		return "", errs.ErrSectionNotActive
	}

	if !s.Compare(password, user.Password) {
		return "", errs.ErrWrongCredentials
	}

	return s.jwtService.GenerateAccessToken(user, section.Role)
}

// Hash returns the salted bcrypt hash of a secret.
func (s *authService) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether secret matches the stored hash.
func (s *authService) Compare(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
