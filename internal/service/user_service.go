package service

import (
	"blogCPT/internal/apperror"
	"blogCPT/internal/config"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
	"blogCPT/internal/storage"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	EditUser(ctx context.Context, req repository.UpdateUserRequest) (*models.User, error)
	ChangeAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *userService) EditUser(ctx context.Context, req repository.UpdateUserRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.CurrentPassword == "" ||
		req.NewPassword == "" || req.ConfirmNewPassword == "" {
		return nil, apperror.Validation("Fill in all fields.")
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return nil, apperror.Validation("Invalid current password.")
	}

	newEmail := strings.ToLower(req.Email)

	// email может принадлежать только одному пользователю;
	// "не найден" означает, что email свободен, остальные ошибки - сбой БД
	emailUser, err := s.userRepo.GetUserByEmail(ctx, newEmail)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, fmt.Errorf("ошибка проверки email: %w", err)
	}
	if emailUser != nil && emailUser.UserID != user.UserID {
		return nil, apperror.Validation("Email already exist.")
	}

	if req.NewPassword != req.ConfirmNewPassword {
		return nil, apperror.Validation("New passwords do not match.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	user.Name = req.Name
	user.Email = newEmail
	user.PasswordHash = string(hashedPassword)

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) ChangeAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.User, error) {
	if file == nil {
		return nil, apperror.Validation("Please choose an image.")
	}

	if size > s.cfg.MaxAvatarSize {
		return nil, apperror.Validation("Profile picture too big. Should be less than 500kb.")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// удаление старого аватара не должно блокировать замену
	if user.Avatar != nil && *user.Avatar != "" {
		if err := s.storage.DeleteFile(ctx, *user.Avatar); err != nil {
			log.Printf("Предупреждение: не удалось удалить старый аватар %s: %v", *user.Avatar, err)
		}
	}

	objectName, err := s.storage.UploadFile(ctx, "avatars", fileName, file, size)
	if err != nil {
		return nil, apperror.IO(err.Error())
	}

	if err := s.userRepo.UpdateAvatar(ctx, userID, objectName); err != nil {
		if delErr := s.storage.DeleteFile(ctx, objectName); delErr != nil {
			log.Printf("Предупреждение: не удалось удалить осиротевший файл %s: %v", objectName, delErr)
		}
		return nil, err
	}

	user.Avatar = &objectName
	return user, nil
}
