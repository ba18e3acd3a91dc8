package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"opms/internal/core"
	"opms/internal/http/cookie"
	"opms/internal/http/handler/middleware"
	"opms/internal/http/payload"
	"opms/internal/http/view"

	"go.uber.org/zap"
)

var (
	LoginPage    = "GET /login"
	Login        = "POST /login"
	RegisterPage = "GET /register"
	Register     = "POST /register"
	Home         = "GET /home"
	Logout       = "GET /logout"
	Index        = "GET /{$}"
	Health       = "GET /healthz"
)

type AccountHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
	renderer         PageRenderer
	jar              *cookie.Jar
}

func NewAccountHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, accountService AccountService, renderer PageRenderer, jar *cookie.Jar) *AccountHandler {
	return &AccountHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accountService,
		renderer:         renderer,
		jar:              jar,
	}
}

func (h *AccountHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.LoginPage, LoginPage)
}

func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var form payload.LoginForm
	if err := h.requestValidator.DecodeAndValidateForm(w, r, &form); err != nil {
		h.logs.Infow("rejected login form",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		h.redirectWithFlash(w, r, "/login", cookie.Error(msgInvalidForm))
		return
	}

	session, err := h.accounts.Authenticate(r.Context(), form.ToMessage())
	if err != nil {
		var validationErr *core.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.redirectWithFlash(w, r, "/login", cookie.Error(validationErr.Message))
		case errors.Is(err, core.ErrInvalidCredentials):
			h.logs.Infow("login failed",
				"handler", Login,
				"request_id", requestId)
			h.redirectWithFlash(w, r, "/login", cookie.Error(msgInvalidCredentials))
		default:
			h.logs.Errorw("authentication failed",
				"error", err,
				"handler", Login,
				"request_id", requestId)
			h.redirectWithFlash(w, r, "/login", cookie.Error(oopsErr))
		}
		return
	}

	h.jar.WriteSession(w, session.Token, session.ExpiresAt)
	h.redirectWithFlash(w, r, "/home", cookie.Success(msgLoggedIn))
}

func (h *AccountHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.RegisterPage, RegisterPage)
}

func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var form payload.RegisterForm
	if err := h.requestValidator.DecodeAndValidateForm(w, r, &form); err != nil {
		h.logs.Infow("rejected registration form",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		h.redirectWithFlash(w, r, "/register", cookie.Error(msgInvalidForm))
		return
	}

	account, err := h.accounts.Register(r.Context(), form.ToMessage())
	if err != nil {
		var validationErr *core.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.redirectWithFlash(w, r, "/register", cookie.Error(validationErr.Message))
		case errors.Is(err, core.ErrDuplicateUsername):
			h.redirectWithFlash(w, r, "/register", cookie.Error(msgDuplicateUsername))
		case errors.Is(err, core.ErrDuplicateEmail):
			h.redirectWithFlash(w, r, "/register", cookie.Error(msgDuplicateEmail))
		default:
			h.logs.Errorw("registration failed",
				"error", err,
				"handler", Register,
				"request_id", requestId)
			h.redirectWithFlash(w, r, "/register", cookie.Error(oopsErr))
		}
		return
	}

	h.logs.Infow("registration completed",
		"account_id", account.ID,
		"handler", Register,
		"request_id", requestId)
	h.redirectWithFlash(w, r, "/login", cookie.Success(msgRegistered))
}

func (h *AccountHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.HomePage, Home)
}

// HandleLogout expects the authentication gate in front of it.
func (h *AccountHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	if token, ok := h.jar.ReadSession(r); ok {
		if err := h.accounts.Logout(r.Context(), token); err != nil && !errors.Is(err, core.ErrSessionNotFound) {
			h.logs.Errorw("logout failed",
				"error", err,
				"handler", Logout,
				"request_id", requestId)
		}
	}

	h.jar.ClearSession(w)
	h.redirectWithFlash(w, r, "/", cookie.Info(msgLoggedOut))
}

func (h *AccountHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.IndexPage, Index)
}

func (h *AccountHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Message: "ok"}, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *AccountHandler) render(w http.ResponseWriter, r *http.Request, page string, route string) {
	data := view.Page{}
	if flash, ok := h.jar.ReadAndClearFlash(w, r); ok {
		data.Flash = &flash
	}
	if account, ok := middleware.AccountFromContext(r.Context()); ok {
		data.Account = &account
	}

	if err := h.renderer.Render(r.Context(), w, http.StatusOK, page, data); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render page",
			"error", err,
			"handler", route,
			"request_id", middleware.RequestIDFromContext(r.Context()))
	}
}

func (h *AccountHandler) redirectWithFlash(w http.ResponseWriter, r *http.Request, location string, flash cookie.Flash) {
	h.jar.WriteFlash(w, flash)
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func (h *AccountHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
