package handlers

import (
	"blogCPT/internal/config"
	"blogCPT/internal/database"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
	"blogCPT/internal/service"
	"blogCPT/internal/storage"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	AuthService service.AuthService
	UserService service.UserService
	PostService service.PostService
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	DB          database.MethodsDB
	Storage     storage.Storage
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(db database.MethodsDB, repo *repository.Repository, service *service.Service, store storage.Storage, config *config.Config) *Handlers {
	return &Handlers{
		AuthService: service.Auth,
		UserService: service.User,
		PostService: service.Post,
		UserRepo:    repo.User,
		PostRepo:    repo.Post,
		DB:          db,
		Storage:     store,
		Cfg:         config,
		Validate:    validator.New(),
	}
}

// UserResponse - профиль пользователя без хеша пароля,
// аватар отдаётся и как имя объекта, и как готовая ссылка
type UserResponse struct {
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Avatar    *string `json:"avatar"`
	AvatarURL *string `json:"avatarUrl"`
	Posts     int     `json:"posts"`
}

func (h *Handlers) NewUserResponse(user *models.User) UserResponse {
	resp := UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
		Posts:  user.Posts,
	}

	if user.Avatar != nil && *user.Avatar != "" {
		url := h.Storage.FileURL(*user.Avatar)
		resp.AvatarURL = &url
	}

	return resp
}

// PostResponse - пост с готовой ссылкой на миниатюру
type PostResponse struct {
	models.Post
	ThumbnailURL string `json:"thumbnailUrl"`
}

func (h *Handlers) NewPostResponse(post *models.Post) PostResponse {
	return PostResponse{
		Post:         *post,
		ThumbnailURL: h.Storage.FileURL(post.Thumbnail),
	}
}

func (h *Handlers) NewPostListResponse(posts []models.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, h.NewPostResponse(&posts[i]))
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}
