package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/borovikovd/realworld-backend-go/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type commentHandler struct {
	responder Responder
	logger    zerolog.Logger
	comments  *services.CommentService
	queries   *services.CommentQueryService
	users     *services.UserService
}

func newCommentHandler(comments *services.CommentService, queries *services.CommentQueryService, users *services.UserService) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		comments:  comments,
		queries:   queries,
		users:     users,
	}
}

func (h commentHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		views, err := h.queries.GetComments(slug, ctxViewerID(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, commentsResponse{Comments: views})
	}
}

func (h commentHandler) addComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		var req addCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode add comment request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("comment", err))
			return
		}

		comment, err := h.comments.AddComment(userID, slug, req.Comment.Body)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// The new comment's author is the current user; a user never follows
		// themselves, so the embedded profile carries following=false.
		author, err := h.users.GetCurrentUser(userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, commentResponse{Comment: commentView{
			ID:        comment.ID,
			CreatedAt: comment.CreatedAt,
			UpdatedAt: comment.UpdatedAt,
			Body:      comment.Body,
			Author: services.Profile{
				Username: author.Username,
				Bio:      author.Bio,
				Image:    author.Image,
			},
		}})
	}
}

func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		slug := chi.URLParam(r, "slug")
		commentIDStr := chi.URLParam(r, "commentID")
		if slug == "" || commentIDStr == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug or commentID"))
			return
		}

		commentID, err := strconv.ParseUint(commentIDStr, 10, 64)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		if err := h.comments.DeleteComment(userID, slug, uint(commentID)); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}
