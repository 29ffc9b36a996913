package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bastiangx/wordfinisher/internal/logger"
	"github.com/bastiangx/wordfinisher/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const shutdownTimeout = 5 * time.Second

// NewRouter builds the HTTP routes for completer.
func NewRouter(completer suggest.ICompleter, allowedOrigins []string) http.Handler {
	l := logger.New("http")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(l))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:     []string{"*"},
		AllowCredentials:   true,
		MaxAge:             300,
		OptionsPassthrough: true,
	}))

	r.Get("/receive_word", handleReceiveWord(completer))
	r.Options("/receive_word", handlePreflight)
	r.Get("/health", handleHealth(completer))
	r.Options("/health", handlePreflight)
	return r
}

// handlePreflight ends an OPTIONS request once the cors middleware has set its headers.
func handlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// handleReceiveWord completes the word query parameter.
func handleReceiveWord(c suggest.ICompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("word")
		if prefix == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "No word provided"})
			return
		}

		var resp FinishedWordResponse
		if word, found := c.Complete(prefix); found {
			resp.FinishedWord = &word
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleHealth(c suggest.ICompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Words: c.Stats()["totalWords"]})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// requestLogger logs every request at debug level through l.
func requestLogger(l *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				l.Debug(r.Method+" "+r.URL.Path,
					"status", ww.Status(),
					"query", r.URL.RawQuery,
					"took", time.Since(start),
					"reqID", middleware.GetReqID(r.Context()))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// HTTPServer serves NewRouter until its context is cancelled.
type HTTPServer struct {
	srv    *http.Server
	logger *log.Logger
}

// NewHTTPServer creates an HTTP server on addr.
func NewHTTPServer(addr string, completer suggest.ICompleter, allowedOrigins []string) *HTTPServer {
	return &HTTPServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(completer, allowedOrigins),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger.New("http"),
	}
}

// ListenAndServe blocks until ctx is done, then shuts down gracefully.
func (h *HTTPServer) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("Listening", "addr", h.srv.Addr)
		errCh <- h.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := h.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	h.logger.Info("Server stopped")
	return nil
}
