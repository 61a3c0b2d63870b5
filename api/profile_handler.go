package api

import (
	"net/http"

	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/borovikovd/realworld-backend-go/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder Responder
	logger    zerolog.Logger
	profiles  *services.ProfileService
}

func newProfileHandler(profiles *services.ProfileService) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder: NewResponder(logger),
		logger:    logger,
		profiles:  profiles,
	}
}

func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		if username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing username"))
			return
		}

		profile, err := h.profiles.GetProfile(username, ctxViewerID(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profileResponse{Profile: *profile})
	}
}

func (h profileHandler) followUser() http.HandlerFunc {
	return h.followHandler(h.profiles.FollowUser)
}

func (h profileHandler) unfollowUser() http.HandlerFunc {
	return h.followHandler(h.profiles.UnfollowUser)
}

func (h profileHandler) followHandler(op func(followerID uint, username string) (*services.Profile, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		username := chi.URLParam(r, "username")
		if username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing username"))
			return
		}

		profile, err := op(userID, username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profileResponse{Profile: *profile})
	}
}
