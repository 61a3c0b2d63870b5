package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public API. Reads run behind optional authentication
// so a present token still personalizes the favorited/following flags;
// writes require a valid token.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		// Public endpoints (viewer identity optional)
		r.Group(func(r chi.Router) {
			r.Use(ColoredHTTPLoggingMiddleware)
			r.Use(authMiddleware.authenticateOptional)

			r.Post("/users", handlers.userHandler.register())
			r.Post("/users/login", handlers.userHandler.login())

			r.Get("/profiles/{username}", handlers.profileHandler.getProfile())

			r.Get("/articles", handlers.articleHandler.listArticles())
			r.Get("/articles/{slug}", handlers.articleHandler.getArticle())
			r.Get("/articles/{slug}/comments", handlers.commentHandler.getComments())

			r.Get("/tags", handlers.tagHandler.getTags())
		})

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(ColoredHTTPLoggingMiddleware)
			r.Use(authMiddleware.authenticate)

			r.Get("/user", handlers.userHandler.getCurrentUser())
			r.Put("/user", handlers.userHandler.updateUser())

			r.Post("/profiles/{username}/follow", handlers.profileHandler.followUser())
			r.Delete("/profiles/{username}/follow", handlers.profileHandler.unfollowUser())

			r.Get("/articles/feed", handlers.articleHandler.getFeed())
			r.Post("/articles", handlers.articleHandler.createArticle())
			r.Put("/articles/{slug}", handlers.articleHandler.updateArticle())
			r.Delete("/articles/{slug}", handlers.articleHandler.deleteArticle())

			r.Post("/articles/{slug}/favorite", handlers.articleHandler.favoriteArticle())
			r.Delete("/articles/{slug}/favorite", handlers.articleHandler.unfavoriteArticle())

			r.Post("/articles/{slug}/comments", handlers.commentHandler.addComment())
			r.Delete("/articles/{slug}/comments/{commentID}", handlers.commentHandler.deleteComment())
		})
	})
}
