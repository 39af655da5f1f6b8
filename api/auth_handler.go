package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/validation"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	secret    []byte
}

func newAuthHandler(userRepo *database.UserRepo, secret []byte) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		secret:    secret,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// register creates a new account. The request body has already passed the
// user.register rule set.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := validation.DecodeBody(r.Context(), &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user := models.User{
			Name:  req.Name,
			Email: req.Email,
		}
		if err := user.SetPassword(req.Password); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("hashing password", err))
			return
		}

		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		token, err := issueToken(&user, h.secret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("signing token", err))
			return
		}

		h.responder.WriteCreated(w, authResponse{Token: token, User: &user})
	}
}

// login exchanges credentials for an access token. The request body has
// already passed the user.login rule set.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := validation.DecodeBody(r.Context(), &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByEmail(req.Email)
		if err != nil || !user.CheckPassword(req.Password) {
			// Same response for unknown email and wrong password.
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token, err := issueToken(user, h.secret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("signing token", err))
			return
		}

		h.responder.WriteJSON(w, authResponse{Token: token, User: user})
	}
}
