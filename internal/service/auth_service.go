package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lessonup/lessonup-api/internal/config"
	"github.com/lessonup/lessonup-api/internal/domain"
	"github.com/lessonup/lessonup-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPasswordRejected = errors.New("password rejected")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrNoSession        = errors.New("session not found or expired")
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

type LoginInput struct {
	Username string
	Password string
	UserType string
}

type RegisterInput struct {
	First    string
	Last     string
	Age      int
	Username string
	Email    string
	Password string
	UserType string
	UserLang string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

// Login verifies the credentials against the stored record. The username
// lookup is case-sensitive. Every successful login mints a fresh session;
// earlier sessions are left to run out their own expiry.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrPasswordRejected
	}

	return s.mintSession(ctx, user)
}

// Register creates the user record and logs them straight in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		First:        input.First,
		Last:         input.Last,
		Age:          input.Age,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		UserType:     input.UserType,
		UserLang:     input.UserLang,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.mintSession(ctx, user)
}

func (s *AuthService) mintSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	data, err := json.Marshal(domain.SessionData{
		UserID:   user.ID,
		Username: user.Username,
		UserType: user.UserType,
	})
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.cfg.SessionLifetime),
		Data:      data,
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: session.Token}, nil
}

// Resolve maps a session token back to its user. Expiry is evaluated here,
// lazily: a stale row is removed on presentation and behaves exactly like a
// missing one. A token whose user no longer exists is also invalid.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessionRepo.DeleteByToken(ctx, token)
		return nil, ErrNoSession
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	return user, nil
}

// Logout destroys the session. Destroying a missing or already-expired
// session is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.DeleteByToken(ctx, token)
}
