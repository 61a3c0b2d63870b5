package api

import (
	"encoding/json"
	"net/http"

	"github.com/borovikovd/realworld-backend-go/auth"
	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/borovikovd/realworld-backend-go/models"
	"github.com/borovikovd/realworld-backend-go/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	users     *services.UserService
	tokens    auth.TokenService
}

func newUserHandler(users *services.UserService, tokens auth.TokenService) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		users:     users,
		tokens:    tokens,
	}
}

func (h userHandler) userViewWithToken(w http.ResponseWriter, user *models.User, status int) {
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.responder.WriteError(w, errs.NewInternalErrorWithCause("issuing token", err))
		return
	}

	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	h.responder.WriteJSON(w, userResponse{User: userView{
		Email:    user.Email,
		Token:    token,
		Username: user.Username,
		Bio:      user.Bio,
		Image:    user.Image,
	}})
}

func (h userHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode register request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("user", err))
			return
		}

		user, err := h.users.Register(req.User.Email, req.User.Username, req.User.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.userViewWithToken(w, user, http.StatusCreated)
	}
}

func (h userHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("user", err))
			return
		}

		user, err := h.users.Login(req.User.Email, req.User.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.userViewWithToken(w, user, http.StatusOK)
	}
}

func (h userHandler) getCurrentUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := h.users.GetCurrentUser(userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.userViewWithToken(w, user, http.StatusOK)
	}
}

func (h userHandler) updateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode update user request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("user", err))
			return
		}

		user, err := h.users.UpdateUser(userID, req.User.Email, req.User.Username, req.User.Password, req.User.Bio, req.User.Image)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.userViewWithToken(w, user, http.StatusOK)
	}
}
