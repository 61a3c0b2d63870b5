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

type articleHandler struct {
	responder Responder
	logger    zerolog.Logger
	articles  *services.ArticleService
	queries   *services.ArticleQueryService
}

func newArticleHandler(articles *services.ArticleService, queries *services.ArticleQueryService) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder: NewResponder(logger),
		logger:    logger,
		articles:  articles,
		queries:   queries,
	}
}

// listArticles returns the global article list, filtered by the optional
// tag/author/favorited query parameters and paginated by limit/offset.
func (h articleHandler) listArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := services.ListArticlesParams{
			Tag:         r.URL.Query().Get("tag"),
			Author:      r.URL.Query().Get("author"),
			FavoritedBy: r.URL.Query().Get("favorited"),
			Limit:       queryInt(r, "limit", 20),
			Offset:      queryInt(r, "offset", 0),
			ViewerID:    ctxViewerID(r.Context()),
		}

		views, err := h.queries.GetArticles(params)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, articlesResponse{
			Articles:      views,
			ArticlesCount: len(views),
		})
	}
}

// getFeed returns articles authored by users the viewer follows.
func (h articleHandler) getFeed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		views, err := h.queries.GetFeed(userID, queryInt(r, "limit", 20), queryInt(r, "offset", 0))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, articlesResponse{
			Articles:      views,
			ArticlesCount: len(views),
		})
	}
}

func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		view, err := h.queries.GetArticleBySlug(slug, ctxViewerID(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, articleResponse{Article: *view})
	}
}

func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req createArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode create article request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("article", err))
			return
		}

		article, err := h.articles.CreateArticle(
			userID,
			req.Article.Title,
			req.Article.Description,
			req.Article.Body,
			req.Article.TagList,
		)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		view, err := h.queries.GetArticleBySlug(article.Slug, &userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, articleResponse{Article: *view})
	}
}

func (h articleHandler) updateArticle() http.HandlerFunc {
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

		var req updateArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode update article request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("article", err))
			return
		}

		article, err := h.articles.UpdateArticle(userID, slug, req.Article.Title, req.Article.Description, req.Article.Body)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		view, err := h.queries.GetArticleBySlug(article.Slug, &userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, articleResponse{Article: *view})
	}
}

func (h articleHandler) deleteArticle() http.HandlerFunc {
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

		if err := h.articles.DeleteArticle(userID, slug); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "article deleted successfully",
		})
	}
}

func (h articleHandler) favoriteArticle() http.HandlerFunc {
	return h.favoriteHandler(h.articles.FavoriteArticle)
}

func (h articleHandler) unfavoriteArticle() http.HandlerFunc {
	return h.favoriteHandler(h.articles.UnfavoriteArticle)
}

func (h articleHandler) favoriteHandler(op func(userID uint, slug string) error) http.HandlerFunc {
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

		if err := op(userID, slug); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		view, err := h.queries.GetArticleBySlug(slug, &userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, articleResponse{Article: *view})
	}
}

// queryInt parses an integer query parameter, falling back on absence or junk.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
