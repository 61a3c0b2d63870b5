package api

import (
	"github.com/borovikovd/realworld-backend-go/auth"
	"github.com/borovikovd/realworld-backend-go/database"
	"github.com/borovikovd/realworld-backend-go/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, tokens auth.TokenService) *routeHandlers {
	hasher := auth.NewPasswordHasher()

	userService := services.NewUserService(db, hasher)
	profileService := services.NewProfileService(db)
	articleService := services.NewArticleService(db, nil)
	articleQueryService := services.NewArticleQueryService(db.DB())
	commentService := services.NewCommentService(db)
	commentQueryService := services.NewCommentQueryService(db.DB())

	return &routeHandlers{
		userHandler:    newUserHandler(userService, tokens),
		profileHandler: newProfileHandler(profileService),
		articleHandler: newArticleHandler(articleService, articleQueryService),
		commentHandler: newCommentHandler(commentService, commentQueryService, userService),
		tagHandler:     newTagHandler(articleService),
	}
}
