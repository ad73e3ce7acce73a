// Package server assembles the chi router shared by the HTTP services.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talk-connect-hub/internal/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// allowedHeaders are the request headers browsers may send cross origin.
var allowedHeaders = []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"}

// Options configure NewRouter.
type Options struct {
	// Name is reported by the health check.
	Name string
	// BasePath is where the authenticated routes are mounted, eg /twilio.
	BasePath       string
	AllowedOrigins []string
	Verifier       auth.Verifier
}

// NewRouter returns a router with request logging, panic recovery, CORS and a health check.
// Routes added by mount live under BasePath behind bearer authentication.
// Unknown paths and methods answer 404, OPTIONS always answers 200.
func NewRouter(opts Options, mount func(r chi.Router)) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Log requests
	r.Use(middleware.Recoverer) // Handle panics gracefully
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: allowedHeaders,
		MaxAge:         300,
	}))
	r.Use(answerOptions(opts.AllowedOrigins))

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(opts.Name + " OK"))
	})

	r.Route(opts.BasePath, func(r chi.Router) {
		r.Use(auth.RequireBearer(opts.Verifier))
		r.NotFound(notFound)
		r.MethodNotAllowed(notFound)
		mount(r)
	})

	return r
}

// answerOptions ends every OPTIONS request with an empty 200.
// Real preflights are already answered by the cors handler; this covers the rest.
func answerOptions(origins []string) func(http.Handler) http.Handler {
	origin := "*"
	if len(origins) == 1 {
		origin = origins[0]
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h := w.Header()
			if h.Get("Access-Control-Allow-Origin") == "" {
				h.Set("Access-Control-Allow-Origin", origin)
			}
			h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
			w.WriteHeader(http.StatusOK)
		})
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
}

// Run serves handler on port until SIGINT or SIGTERM, then drains in-flight requests.
func Run(name, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("%s starting on port %s", name, port)
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-quit:
		log.Printf("%s received %s, shutting down", name, sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
