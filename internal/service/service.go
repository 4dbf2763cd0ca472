package service

import (
	"blogCPT/internal/config"
	"blogCPT/internal/repository"
	"blogCPT/internal/storage"
)

type Service struct {
	Auth AuthService
	User UserService
	Post PostService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth: NewAuthService(rep.User, cfg),
		User: NewUserService(rep.User, storage, cfg),
		Post: NewPostService(rep.Post, rep.User, storage, cfg),
	}
}
