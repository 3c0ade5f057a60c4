package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"paysched/internal/core"
	"paysched/internal/ethereum"
	"paysched/internal/http/handler/middleware"
	"paysched/internal/http/payload"

	"go.uber.org/zap"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// responder holds what every handler needs to decode requests and answer them.
type responder struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
}

func (h responder) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// decode reads a JSON body into object and runs its validation rules.
// A false return means a 400 was already written.
func (h responder) decode(w http.ResponseWriter, r *http.Request, route, message string, object any) bool {
	err := h.requestValidator.DecodeJSONPayload(r, object)
	if err == nil {
		err = payload.Validate(object)
	}
	if err == nil {
		return true
	}

	h.badRequest(w, r, route, message, fmt.Errorf("invalid request payload: %w", err))
	return false
}

// validateQuery is decode for query parameters.
func (h responder) validateQuery(w http.ResponseWriter, r *http.Request, route, message string, query any) bool {
	if err := payload.Validate(query); err != nil {
		h.badRequest(w, r, route, message, fmt.Errorf("invalid query parameters: %w", err))
		return false
	}
	return true
}

func (h responder) badRequest(w http.ResponseWriter, r *http.Request, route, message string, err error) {
	requestId := middleware.RequestIDFrom(r.Context())
	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

// fail answers with the status that matches err. Server side causes are
// logged but not returned.
func (h responder) fail(w http.ResponseWriter, r *http.Request, route, message string, err error) {
	requestId := middleware.RequestIDFrom(r.Context())
	code, detail := statusOf(err)

	h.respond(w, Response{
		Message: message,
		Error:   detail,
	}, code,
		requestId)
	h.logs.Errorw(message,
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

// caller returns the authenticated identity or writes a 401.
func (h responder) caller(w http.ResponseWriter, r *http.Request, route string) (core.Identity, bool) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.fail(w, r, route, "Authentication required", fmt.Errorf("%w: missing or invalid credentials", core.ErrUnauthorized))
		return core.Identity{}, false
	}
	return id, true
}

func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrValidation), errors.Is(err, ethereum.ErrMalformedSignature):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, core.ErrUnauthorized), errors.Is(err, core.ErrInvalidSignature):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, core.ErrInvalidTransition), errors.Is(err, core.ErrEmailTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, ethereum.ErrEventNotFound), errors.Is(err, ethereum.ErrChainCallFailed):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, "unexpected error occurred"
	}
}
