package main

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"myflix/proj/internal/config"
	"myflix/proj/internal/lib/validator"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Http struct {
	log *slog.Logger
	cfg *config.Config
}

type envelop map[string]any

// Response wraps infrastructure replies (unknown route, rate limiting). Resource
// handlers answer with bare entities or plain text.
type Response struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Data    envelop `json:"data,omitempty"`
}

func processMsg(status int, msg string) string {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return msg
}

func (h *Http) setupLogPerReq(r *http.Request) *slog.Logger {
	return h.log.With(
		"request_id",
		middleware.GetReqID(r.Context()),
		"method",
		r.Method,
		"path",
		r.URL.Path,
	)
}

func (h *Http) NewResponse(data envelop, msg string, status int) *Response {
	msg = processMsg(status, msg)
	success := status >= 200 && status < 400
	return &Response{Success: success, Message: msg, Data: data}
}

func (h *Http) Response(w http.ResponseWriter, r *http.Request, data envelop, msg string, status int) {
	render.Status(r, status)
	render.JSON(w, r, h.NewResponse(data, msg, status))
}

func (h *Http) JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func (h *Http) Ok(w http.ResponseWriter, r *http.Request, v any) {
	h.JSON(w, r, http.StatusOK, v)
}

func (h *Http) Created(w http.ResponseWriter, r *http.Request, v any) {
	h.JSON(w, r, http.StatusCreated, v)
}

func (h *Http) Text(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.PlainText(w, r, msg)
}

func (h *Http) BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.Text(w, r, http.StatusBadRequest, msg)
}

// NotFound reports a missing domain record. The status is 400 unless
// configured otherwise, which is what clients of this API expect.
func (h *Http) NotFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.Text(w, r, h.cfg.HTTP.NotFoundStatus, msg)
}

func (h *Http) RouteNotFound(w http.ResponseWriter, r *http.Request) {
	h.Response(w, r, nil, "Page not found", http.StatusNotFound)
}

func (h *Http) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.Response(w, r, nil, "", http.StatusMethodNotAllowed)
}

func (h *Http) Unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	h.JSON(w, r, http.StatusUnauthorized, envelop{"message": processMsg(http.StatusUnauthorized, msg)})
}

func (h *Http) Forbidden(w http.ResponseWriter, r *http.Request, msg string) {
	h.Text(w, r, http.StatusForbidden, msg)
}

func (h *Http) UnprocessableEntity(w http.ResponseWriter, r *http.Request, errors []validator.FieldError) {
	h.JSON(w, r, http.StatusUnprocessableEntity, envelop{"errors": errors})
}

// ServerError answers a failed store call with its error text.
func (h *Http) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.setupLogPerReq(r).Error(err.Error())
	h.Text(w, r, http.StatusInternalServerError, "Error: "+err.Error())
}

// Panic is the catch-all for faults nothing else handled.
func (h *Http) Panic(w http.ResponseWriter, r *http.Request, recovered any) {
	h.setupLogPerReq(r).Error("panic recovered", "panic", recovered, "stack", string(debug.Stack()))
	msg := "Something went wrong!"
	if h.cfg.Debug {
		msg += "\n" + string(debug.Stack())
	}
	h.Text(w, r, http.StatusInternalServerError, msg)
}
