package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-gridfield/internal/store"
)

// StatusError carries the HTTP status a handler failure maps to.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s: %v", e.Code, http.StatusText(e.Code), e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func withStatus(code int, err error) error {
	return &StatusError{Code: code, Err: err}
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Server) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		code := http.StatusInternalServerError
		var statusErr *StatusError
		switch {
		case errors.As(err, &statusErr):
			code = statusErr.Code
		case errors.Is(err, store.ErrNotFound):
			code = http.StatusNotFound
		}

		attrs := []any{"method", r.Method, "path", r.URL.Path, "status", code, "error", err}
		if id := middleware.GetReqID(r.Context()); id != "" {
			attrs = append(attrs, "request_id", id)
		}
		if code >= http.StatusInternalServerError {
			s.logger.Error("server: request failed", attrs...)
		} else {
			s.logger.Debug("server: request rejected", attrs...)
		}
		http.Error(w, http.StatusText(code), code)
	}
}
