package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/entity"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/repository"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/session"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/utils"
)

// AuthService handles register/login. Login mints the session id that keys
// the in-memory cart store.
type AuthService struct {
	userRepo  *repository.UserRepository
	sessions  *session.Store
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, sessions *session.Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		sessions:  sessions,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Register(username, password, email, fullName, phone string) (*entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, apperr.New(apperr.Validation, "username and password are required")
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "check username", err)
	}
	if count > 0 {
		return nil, apperr.New(apperr.Conflict, "username already taken")
	}
	if email != "" {
		count, err = s.userRepo.CountByEmail(email)
		if err != nil {
			return nil, apperr.Wrap(apperr.Persistence, "check email", err)
		}
		if count > 0 {
			return nil, apperr.New(apperr.Conflict, "email already registered")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "hash password", err)
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: string(hashed),
		Email:        strings.TrimSpace(email),
		FullName:     strings.TrimSpace(fullName),
		Phone:        strings.TrimSpace(phone),
		Role:         "CUSTOMER",
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "create user", err)
	}
	return user, nil
}

// Login verifies credentials, creates the session cart and issues a token.
// Attempts are logged here, at the call site, rather than behind a proxy.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	log.Printf("login attempt for %q", username)

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.Wrap(apperr.Persistence, "find user", err)
		}
		return "", nil, apperr.New(apperr.Validation, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("login failed for %q", username)
		return "", nil, apperr.New(apperr.Validation, "invalid credentials")
	}

	sessionID := uuid.NewString()
	s.sessions.Create(sessionID)

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, sessionID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		s.sessions.Remove(sessionID)
		return "", nil, apperr.Wrap(apperr.Persistence, "generate token", err)
	}

	log.Printf("login ok for %q", username)
	return token, user, nil
}

// Logout drops the session cart. Safe to call twice.
func (s *AuthService) Logout(sessionID string) {
	s.sessions.Remove(sessionID)
}

func (s *AuthService) GetProfile(username string) (*entity.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, apperr.Wrap(apperr.Persistence, "find user", err)
	}
	return user, nil
}
