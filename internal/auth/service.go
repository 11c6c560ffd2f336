package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/museme/storefront/internal/domain"
)

// PublicUser is the set of user fields exposed over the API.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Session is the result of a successful login or registration.
type Session struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// Service implements the login/registration flow
type Service struct {
	users    UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates an authentication service. The secret signs
// issued tokens; ttl bounds their lifetime.
func NewService(users UserRepository, secret string, ttl time.Duration) *Service {
	return &Service{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: ttl,
	}
}

// Login validates credentials and issues a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(user)
}

// Register creates an account and issues a signed token. The unique
// index on users.email is the source of truth for duplicates; the
// lookup up front only short-circuits the common case.
func (s *Service) Register(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.newSession(user)
}

// Logout is a stateless acknowledgement; issued tokens are not
// tracked server-side, so there is nothing to invalidate.
func (s *Service) Logout() {}

// ParseToken verifies a bearer token issued by this service.
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	return ParseToken(s.secret, tokenString)
}

// Secret exposes the signing key for the route guard middleware.
func (s *Service) Secret() []byte {
	return s.secret
}

func (s *Service) newSession(user *domain.User) (*Session, error) {
	token, err := IssueToken(s.secret, user.ID, user.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token: token,
		User:  PublicUser{ID: user.ID, Email: user.Email},
	}, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite reports constraint violations as plain errors
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}
