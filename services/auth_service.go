package services

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/haiki1233/food-delivery-backend/entity"
	"github.com/haiki1233/food-delivery-backend/notifier"
	"github.com/haiki1233/food-delivery-backend/pkg/apperr"
	"github.com/haiki1233/food-delivery-backend/repository"
	"github.com/haiki1233/food-delivery-backend/utils"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration

	Mail            Mailer
	FrontendBaseURL string
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a user and fires the welcome mail without waiting on it.
func (s *AuthService) Register(username, email, password, role string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validation("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = "customer"
	}
	user := &entity.User{
		Username: strings.TrimSpace(username),
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	go s.sendWelcome(user)
	return user, nil
}

func (s *AuthService) sendWelcome(user *entity.User) {
	if s.Mail == nil {
		return
	}
	mail := notifier.RenderWelcome(user.Username, s.FrontendBaseURL)
	if err := s.Mail.Send(context.Background(), user.Email, mail); err != nil {
		log.Printf("welcome mail to %s: %v", user.Email, err)
	}
}

// Login checks credentials and mints a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
