package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"helpugee/internal/model"
)

// Claims carried by an access token. Tokens deliberately carry no expiry and
// there is no revocation list; the account re-check in VerifyAccess is the
// only defense against tokens outstanding after deactivation.
type Claims struct {
	UserID    uint       `json:"id"`
	Username  string     `json:"username"`
	SectionID uint       `json:"sectionId"`
	Role      model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles access token generation and validation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given signing secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// Secret exposes the signing key for middleware configuration.
func (s *JWTService) Secret() []byte {
	return s.secret
}

// GenerateAccessToken signs a token for the user with the role its section grants.
func (s *JWTService) GenerateAccessToken(user *model.User, role model.Role) (string, error) {
	claims := &Claims{
		UserID:    user.ID,
		Username:  user.Username,
		SectionID: user.SectionID,
		Role:      role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies the signature of a token and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
