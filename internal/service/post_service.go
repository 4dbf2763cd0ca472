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
	"unicode/utf8"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest, fileName string, file io.Reader, size int64) (*models.Post, error)
	EditPost(ctx context.Context, req repository.UpdatePostRequest, fileName string, file io.Reader, size int64) (*models.Post, error)
	DeletePost(ctx context.Context, postID, callerID string) error
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest, fileName string, file io.Reader, size int64) (*models.Post, error) {
	if req.Title == "" || req.Category == "" || req.Description == "" || file == nil {
		return nil, apperror.Validation("Fill in all fields and choose thumbnail.")
	}

	if !models.IsValidCategory(req.Category) {
		return nil, apperror.Validation(fmt.Sprintf("%s is not supported.", req.Category))
	}

	if size > p.cfg.MaxThumbnailSize {
		return nil, apperror.Validation("Thumbnail too big. File should be less than 2mb.")
	}

	objectName, err := p.storage.UploadFile(ctx, "thumbnails", fileName, file, size)
	if err != nil {
		return nil, apperror.IO(err.Error())
	}

	post := &models.Post{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Thumbnail:   objectName,
		Creator:     req.CreatorID,
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		// запись не создана - подчищаем загруженный файл
		if delErr := p.storage.DeleteFile(ctx, objectName); delErr != nil {
			log.Printf("Предупреждение: не удалось удалить осиротевший файл %s: %v", objectName, delErr)
		}
		return nil, fmt.Errorf("ошибка при создании поста: %w", err)
	}

	// счётчик постов вторичен: при ошибке логируем и продолжаем
	if err := p.userRepo.IncrementPostCount(ctx, req.CreatorID); err != nil {
		log.Printf("Предупреждение: не удалось увеличить счётчик постов пользователя %s: %v", req.CreatorID, err)
	}

	return post, nil
}

// EditPost сначала загружает новую миниатюру и обновляет запись, старый файл
// удаляется последним, чтобы пост не остался без миниатюры при сбое загрузки
func (p *postService) EditPost(ctx context.Context, req repository.UpdatePostRequest, fileName string, file io.Reader, size int64) (*models.Post, error) {
	if req.Title == "" || req.Category == "" || utf8.RuneCountInString(req.Description) < 12 {
		return nil, apperror.Validation("Fill in all fields. Description should be at least 12 characters.")
	}

	if !models.IsValidCategory(req.Category) {
		return nil, apperror.Validation(fmt.Sprintf("%s is not supported.", req.Category))
	}

	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.Creator != req.CreatorID {
		return nil, apperror.Forbidden("You are not allowed to edit this post.")
	}

	post.Title = req.Title
	post.Category = req.Category
	post.Description = req.Description

	if file == nil {
		if err := p.postRepo.Update(ctx, post); err != nil {
			return nil, err
		}
		return post, nil
	}

	if size > p.cfg.MaxThumbnailSize {
		return nil, apperror.Validation("Thumbnail too big. File should be less than 2mb.")
	}

	oldThumbnail := post.Thumbnail

	objectName, err := p.storage.UploadFile(ctx, "thumbnails", fileName, file, size)
	if err != nil {
		return nil, apperror.IO(err.Error())
	}

	post.Thumbnail = objectName

	if err := p.postRepo.Update(ctx, post); err != nil {
		if delErr := p.storage.DeleteFile(ctx, objectName); delErr != nil {
			log.Printf("Предупреждение: не удалось удалить осиротевший файл %s: %v", objectName, delErr)
		}
		return nil, err
	}

	if err := p.storage.DeleteFile(ctx, oldThumbnail); err != nil {
		log.Printf("Предупреждение: не удалось удалить старую миниатюру %s: %v", oldThumbnail, err)
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, postID, callerID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.Creator != callerID {
		return apperror.Forbidden("You are not allowed to delete this post.")
	}

	// запись удаляется только после успешного удаления файла
	if err := p.storage.DeleteFile(ctx, post.Thumbnail); err != nil {
		return apperror.IO(err.Error())
	}

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	if err := p.userRepo.DecrementPostCount(ctx, post.Creator); err != nil {
		log.Printf("Предупреждение: не удалось уменьшить счётчик постов пользователя %s: %v", post.Creator, err)
	}

	return nil
}
