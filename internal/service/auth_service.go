package service

import (
	"blogCPT/internal/apperror"
	"blogCPT/internal/config"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Password2 == "" {
		return nil, apperror.Validation("Fill in all fields.")
	}

	newEmail := strings.ToLower(req.Email)

	// "не найден" означает, что email свободен; любая другая ошибка - сбой БД
	existingUser, err := s.userRepo.GetUserByEmail(ctx, newEmail)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, fmt.Errorf("ошибка проверки email: %w", err)
	}
	if existingUser != nil {
		return nil, apperror.Validation("Email already exist.")
	}

	if len(strings.TrimSpace(req.Password)) < 6 {
		return nil, apperror.Validation("Password should be at least 6 characters.")
	}

	if req.Password != req.Password2 {
		return nil, apperror.Validation("Passwords do not match.")
	}

	user := &models.User{
		Name:  req.Name,
		Email: newEmail,
		Posts: 0,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return user, nil
}

// Login возвращает одну и ту же ошибку для неизвестного email и неверного
// пароля, чтобы не раскрывать, что именно не совпало
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	newEmail := strings.ToLower(email)

	user, err := s.userRepo.VerifyPassword(ctx, newEmail, password)
	if err != nil {
		return nil, "", apperror.Unauthorized("Invalid credentials.")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	return user, token, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.UserID,
		"name":   user.Name,
		"exp":    time.Now().Add(s.cfg.TokenDuration).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}
