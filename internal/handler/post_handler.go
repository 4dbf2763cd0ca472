package handlers

import (
	"blogCPT/internal/repository"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// allowedImageTypes - форматы, разрешённые для миниатюр и аватаров
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func callerID(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	return userID, ok
}

// parseUpload разбирает multipart-форму и достаёт файл по имени поля.
// Тело запроса ограничено MaxUploadSize, отсутствующий файл не ошибка:
// решает вызывающий код
func (h *Handlers) parseUpload(w http.ResponseWriter, r *http.Request, field string) (multipart.File, *multipart.FileHeader, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large") {
			WriteError(w, fmt.Sprintf("File too big (max %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusUnprocessableEntity)
		} else {
			WriteError(w, "Invalid multipart form.", http.StatusBadRequest)
		}
		return nil, nil, false
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, true
		}
		WriteError(w, "Could not read the uploaded file.", http.StatusBadRequest)
		return nil, nil, false
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		file.Close()
		WriteError(w, "Unsupported file type. Allowed: JPEG, PNG, GIF, WebP", http.StatusUnprocessableEntity)
		return nil, nil, false
	}

	return file, header, true
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	file, header, ok := h.parseUpload(w, r, "thumbnail")
	if !ok {
		return
	}
	if file == nil {
		WriteError(w, "Fill in all fields and choose thumbnail.", http.StatusUnprocessableEntity)
		return
	}
	defer file.Close()

	serviceReq := repository.CreatePostRequest{
		CreatorID:   userID,
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	}

	post, err := h.PostService.CreatePost(r.Context(), serviceReq, header.Filename, file, header.Size)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, h.NewPostResponse(post), http.StatusCreated)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, h.NewPostListResponse(posts), http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, h.NewPostResponse(post), http.StatusOK)
}

func (h *Handlers) GetCatPosts(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	posts, err := h.PostRepo.GetByCategory(r.Context(), category)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, h.NewPostListResponse(posts), http.StatusOK)
}

func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	posts, err := h.PostRepo.GetByCreatorID(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, h.NewPostListResponse(posts), http.StatusOK)
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	// новая миниатюра необязательна
	file, header, ok := h.parseUpload(w, r, "thumbnail")
	if !ok {
		return
	}

	serviceReq := repository.UpdatePostRequest{
		PostID:      postID,
		CreatorID:   userID,
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	}

	var fileName string
	var size int64
	if file != nil {
		defer file.Close()
		fileName = header.Filename
		size = header.Size
	}

	post, err := h.PostService.EditPost(r.Context(), serviceReq, fileName, fileOrNil(file), size)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, h.NewPostResponse(post), http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	if err := h.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: fmt.Sprintf("Post %s deleted successfully", postID)}, http.StatusOK)
}

// fileOrNil превращает типизированный nil multipart.File в нетипизированный
// nil io.Reader, чтобы сервис мог сравнивать с nil напрямую
func fileOrNil(file multipart.File) io.Reader {
	if file == nil {
		return nil
	}
	return file
}
