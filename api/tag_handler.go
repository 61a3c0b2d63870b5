package api

import (
	"net/http"

	"github.com/borovikovd/realworld-backend-go/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	articles  *services.ArticleService
}

func newTagHandler(articles *services.ArticleService) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		articles:  articles,
	}
}

// getTags returns the global tag registry.
func (h tagHandler) getTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.articles.AllTags()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if tags == nil {
			tags = []string{}
		}

		h.responder.WriteJSON(w, tagsResponse{Tags: tags})
	}
}
