package routes

import (
	"net/http"

	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// SetupRoutes wires repositories, services and controllers over the given
// Badger DB and returns the complete HTTP handler.
func SetupRoutes(db *badger.DB, cfg *config.Config) http.Handler {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo)
	analyticsService := services.NewAnalyticsService(postRepo, commentRepo)
	authService := services.NewAuthService(
		[]byte(cfg.JWTSecret),
		cfg.AdminUser,
		[]byte(cfg.AdminPasswordHash),
		cfg.TokenTTL,
	)

	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)
	authController := controllers.NewAuthController(authService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Auth endpoints
	api.HandleFunc("/auth/login", authController.Login).Methods("POST")

	// Posts API endpoints; only creation sits behind the auth gate.
	posts := api.PathPrefix("/posts").Subrouter()
	posts.Handle("", middleware.RequireAuth(authService, http.HandlerFunc(postController.Create))).Methods("POST")
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")

	// Comments API endpoints (public)
	posts.HandleFunc("/{id}/comments", commentController.Create).Methods("POST")
	posts.HandleFunc("/{id}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{id}/comments/thread", commentController.Thread).Methods("GET")

	// Analytics API endpoints
	analytics := api.PathPrefix("/analytics").Subrouter()
	analytics.HandleFunc("/authors", analyticsController.Authors).Methods("GET")
	analytics.HandleFunc("/top-posts", analyticsController.TopPosts).Methods("GET")
	analytics.HandleFunc("/posts-per-day", analyticsController.PostsPerDay).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(router)
}
