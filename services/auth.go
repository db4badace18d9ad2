package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Kariqs/hanythrift-api/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Default cost for bcrypt password hashing
const bcryptCost = 10

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// dummyHash is compared against when the email is unknown so that login
// costs one bcrypt comparison either way.
var dummyHash = sync.OnceValue(func() string {
	hash, err := HashPassword("hanythrift-login-placeholder")
	if err != nil {
		panic(err)
	}
	return hash
})

// Claims is the token payload. Refresh is only ever true on refresh tokens.
type Claims struct {
	Refresh bool `json:"refresh,omitempty"`
	jwt.RegisteredClaims
}

type AuthConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type AuthService struct {
	cfg    AuthConfig
	users  *UserStore
	now    func() time.Time
	verify func(password, hash string) bool
}

func NewAuthService(cfg AuthConfig, users *UserStore) *AuthService {
	return &AuthService{cfg: cfg, users: users, now: time.Now, verify: VerifyPassword}
}

func (s *AuthService) IssueAccessToken(email string) (string, error) {
	return s.sign(email, s.cfg.AccessTTL, false)
}

func (s *AuthService) IssueRefreshToken(email string) (string, error) {
	return s.sign(email, s.cfg.RefreshTTL, true)
}

func (s *AuthService) sign(email string, ttl time.Duration, refresh bool) (string, error) {
	now := s.now()
	claims := Claims{
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken returns the subject of a valid access token. Refresh
// tokens are rejected.
func (s *AuthService) VerifyAccessToken(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Refresh {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// VerifyRefreshToken returns the subject of a valid refresh token.
func (s *AuthService) VerifyRefreshToken(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	if !claims.Refresh {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *AuthService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return []byte(s.cfg.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}

// Login checks credentials and issues a token pair. Unknown email and wrong
// password fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Token, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		s.verify(password, dummyHash())
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !s.verify(password, user.HashedPassword) {
		return nil, ErrUnauthorized
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: inactive user", ErrUnauthorized)
	}
	return s.issuePair(user)
}

// Refresh exchanges a refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.Token, error) {
	email, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	user, err := s.activeUser(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.issuePair(user)
}

// Authenticate resolves an access token to an active user.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	email, err := s.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return s.activeUser(ctx, email)
}

func (s *AuthService) activeUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: inactive user", ErrUnauthorized)
	}
	return user, nil
}

func (s *AuthService) issuePair(user *models.User) (*models.Token, error) {
	access, err := s.IssueAccessToken(user.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.IssueRefreshToken(user.Email)
	if err != nil {
		return nil, err
	}
	return &models.Token{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    models.TokenTypeBearer,
		UserID:       user.ID,
		UserEmail:    user.Email,
		UserName:     user.Name,
		IsActive:     user.IsActive,
		IsSeller:     user.IsSeller,
	}, nil
}
