package main

import (
	"fmt"
	"log"
	"net/http"

	"blogCPT/cmd/app"
	"blogCPT/internal/config"
	handlers "blogCPT/internal/handler"
	"blogCPT/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, store := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(db, repo, services, store, cfg)

	protect := middleware.Authenticate(cfg)

	// setting up routes
	r := mux.NewRouter()

	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", handler.Login).Methods(http.MethodPost)
	api.Handle("/users/change-avatar", protect(http.HandlerFunc(handler.ChangeAvatar))).Methods(http.MethodPost)
	api.Handle("/users/edit-user", protect(http.HandlerFunc(handler.EditUser))).Methods(http.MethodPatch)
	api.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users", handler.GetAuthors).Methods(http.MethodGet)

	api.Handle("/posts", protect(http.HandlerFunc(handler.CreatePost))).Methods(http.MethodPost)
	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/categories/{category}", handler.GetCatPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/users/{id}", handler.GetUserPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	api.Handle("/posts/{id}", protect(http.HandlerFunc(handler.EditPost))).Methods(http.MethodPatch)
	api.Handle("/posts/{id}", protect(http.HandlerFunc(handler.DeletePost))).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
