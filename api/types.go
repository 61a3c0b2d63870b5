package api

import (
	"time"

	"github.com/borovikovd/realworld-backend-go/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	userHandler    userHandler
	profileHandler profileHandler
	articleHandler articleHandler
	commentHandler commentHandler
	tagHandler     tagHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string              `json:"error,omitempty" example:"Internal Server Error"`
	Status  string              `json:"status,omitempty" example:"error"`
	Field   string              `json:"field,omitempty" example:"title"`
	Details string              `json:"details,omitempty" example:"Additional error details"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Request payloads (RealWorld envelopes)

type registerRequest struct {
	User struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

type loginRequest struct {
	User struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

type updateUserRequest struct {
	User struct {
		Email    *string `json:"email"`
		Username *string `json:"username"`
		Password *string `json:"password"`
		Bio      *string `json:"bio"`
		Image    *string `json:"image"`
	} `json:"user"`
}

type createArticleRequest struct {
	Article struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Body        string   `json:"body"`
		TagList     []string `json:"tagList"`
	} `json:"article"`
}

type updateArticleRequest struct {
	Article struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Body        *string `json:"body"`
	} `json:"article"`
}

type addCommentRequest struct {
	Comment struct {
		Body string `json:"body"`
	} `json:"comment"`
}

// Response payloads

type userView struct {
	Email    string  `json:"email"`
	Token    string  `json:"token"`
	Username string  `json:"username"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

type userResponse struct {
	User userView `json:"user"`
}

type profileResponse struct {
	Profile services.Profile `json:"profile"`
}

type articleResponse struct {
	Article services.ArticleView `json:"article"`
}

type articlesResponse struct {
	Articles      []*services.ArticleView `json:"articles"`
	ArticlesCount int                     `json:"articlesCount"`
}

type commentView struct {
	ID        uint             `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Body      string           `json:"body"`
	Author    services.Profile `json:"author"`
}

type commentResponse struct {
	Comment commentView `json:"comment"`
}

type commentsResponse struct {
	Comments []*services.CommentView `json:"comments"`
}

type tagsResponse struct {
	Tags []string `json:"tags"`
}
