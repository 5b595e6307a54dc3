package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in and out of the HTTP transport.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// requestID reuses the caller's X-Request-ID or assigns a new one, and echoes
// it on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Handler serves the tools over HTTP:
//
//	GET  /healthz
//	GET  /v1/tools
//	POST /v1/tools/{name}   body: tool arguments as JSON
//
// Successful calls answer 200 with the tool result. Argument errors answer
// 400, unknown tools 404 and tool failures 422, each as {"error": "..."}.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": Version})
	})
	r.Get("/v1/tools", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"tools": GetToolDefinitions()})
	})
	r.Post("/v1/tools/{name}", s.serveTool)
	return r
}

func (s *Server) serveTool(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestSize))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	id, _ := r.Context().Value(requestIDKey{}).(string)
	result, err := s.callTool(r.Context(), id, chi.URLParam(r, "name"), body)
	switch {
	case err == nil:
		body, err := json.Marshal(result)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Errorf("encode result: %w", err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(append(body, '\n'))
	case errors.Is(err, errUnknownTool):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, errInvalidArgs):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
	default:
		writeError(w, http.StatusUnprocessableEntity, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
