package handler

import (
	"net/http"
	"time"

	"paysched/internal/core"
	"paysched/internal/http/handler/middleware"
	"paysched/internal/http/payload"

	"go.uber.org/zap"
)

var (
	RegisterToken   = "POST /auth/token/register"
	LoginToken      = "POST /auth/token/login"
	RegisterSession = "POST /auth/session/register"
	LoginSession    = "POST /auth/session/login"
	Logout          = "GET /auth/logout"
	LoginWeb3       = "POST /auth/web3"
	CurrentUser     = "GET /auth/user"
)

type AuthHandler struct {
	responder
	auth       AuthService
	sessionTTL time.Duration
}

func NewAuthHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, authService AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		responder: responder{
			logs:             logger,
			requestValidator: requestValidator,
		},
		auth:       authService,
		sessionTTL: sessionTTL,
	}
}

func (h *AuthHandler) HandleTokenRegister(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if !h.decode(w, r, RegisterToken, "Registration failed", &req) {
		return
	}

	id, err := h.auth.Register(r.Context(), req.ToCredentials())
	if err != nil {
		h.fail(w, r, RegisterToken, "Registration failed", err)
		return
	}

	h.respondToken(w, r, RegisterToken, id, http.StatusCreated)
}

func (h *AuthHandler) HandleTokenLogin(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if !h.decode(w, r, LoginToken, "Login failed", &req) {
		return
	}

	id, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, LoginToken, "Login failed", err)
		return
	}

	h.respondToken(w, r, LoginToken, id, http.StatusOK)
}

func (h *AuthHandler) HandleSessionRegister(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if !h.decode(w, r, RegisterSession, "Registration failed", &req) {
		return
	}

	id, err := h.auth.Register(r.Context(), req.ToCredentials())
	if err != nil {
		h.fail(w, r, RegisterSession, "Registration failed", err)
		return
	}

	if !h.startSession(w, r, RegisterSession, id) {
		return
	}

	h.respond(w, Response{
		Message: "Registered",
		Data:    id,
	}, http.StatusCreated,
		middleware.RequestIDFrom(r.Context()))
}

func (h *AuthHandler) HandleSessionLogin(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if !h.decode(w, r, LoginSession, "Login failed", &req) {
		return
	}

	id, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, LoginSession, "Login failed", err)
		return
	}

	if !h.startSession(w, r, LoginSession, id) {
		return
	}

	h.respond(w, Response{
		Message: "Logged in",
		Data:    id,
	}, http.StatusOK,
		middleware.RequestIDFrom(r.Context()))
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.auth.EndSession(r.Context(), cookie.Value); err != nil {
			h.fail(w, r, Logout, "Logout failed", err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.respond(w, Response{Message: "Logged out"}, http.StatusOK, requestId)
}

// HandleWeb3Login signs the caller in with a wallet signature. It answers
// with a token and also opens a session.
func (h *AuthHandler) HandleWeb3Login(w http.ResponseWriter, r *http.Request) {
	var req payload.Web3AuthRequest
	if !h.decode(w, r, LoginWeb3, "Could not authenticate", &req) {
		return
	}

	id, err := h.auth.LoginWallet(r.Context(), req.ToWalletLogin())
	if err != nil {
		h.fail(w, r, LoginWeb3, "Could not authenticate", err)
		return
	}

	if !h.startSession(w, r, LoginWeb3, id) {
		return
	}

	h.respondToken(w, r, LoginWeb3, id, http.StatusOK)
}

func (h *AuthHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caller(w, r, CurrentUser)
	if !ok {
		return
	}

	h.respond(w, id, http.StatusOK, middleware.RequestIDFrom(r.Context()))
}

func (h *AuthHandler) respondToken(w http.ResponseWriter, r *http.Request, route string, id core.Identity, code int) {
	token, err := h.auth.IssueToken(id)
	if err != nil {
		h.fail(w, r, route, "Could not issue token", err)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, code, middleware.RequestIDFrom(r.Context()))
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, route string, id core.Identity) bool {
	sid, err := h.auth.StartSession(r.Context(), id)
	if err != nil {
		h.fail(w, r, route, "Could not start session", err)
		return false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}
