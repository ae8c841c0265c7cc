// Package server exposes the compliance engine over HTTP. Each
// request maps to one stateless invocation of the core.
package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// DefaultAddr is used when neither the flag nor the environment sets
// a listen address.
const DefaultAddr = ":8080"

// CORS allows browser front ends to call the API from any origin.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewRouter wires the API routes.
func NewRouter() *mux.Router {
	r := mux.NewRouter()

	limiter := NewIPRateLimiter(5, 10)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/check", Check).Methods("POST")
	api.HandleFunc("/loads", Loads).Methods("POST")
	api.HandleFunc("/report/pdf", ReportPDF).Methods("POST")
	api.HandleFunc("/report/xlsx", ReportXLSX).Methods("POST")

	r.HandleFunc("/healthz", Health).Methods("GET")

	return r
}

// ResolveAddr picks the listen address from the flag, the
// GOISCC_ADDR environment variable (optionally via a .env file), or
// the default, in that order.
func ResolveAddr(flagAddr string) string {
	if flagAddr != "" {
		return flagAddr
	}
	// A missing .env file is fine; the variable may come from the
	// real environment.
	_ = godotenv.Load()
	if addr := os.Getenv("GOISCC_ADDR"); addr != "" {
		return addr
	}
	return DefaultAddr
}

// Run serves the API until an interrupt or termination signal, then
// shuts down gracefully.
func Run(addr string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:    addr,
		Handler: CORS(NewRouter()),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutdown signal received")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}
