package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

const (
	DefaultAddr  = ":8080"
	DefaultRate  = 5.0 // requests per second
	DefaultBurst = 10

	shutdownTimeout = 5 * time.Second
)

// Config is read from the environment, optionally through a .env file.
type Config struct {
	Addr  string
	Rate  float64
	Burst int
}

// LoadConfig reads PRESIZE_ADDR, PRESIZE_RATE and PRESIZE_BURST. A
// missing .env file is not an error.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Config{Addr: DefaultAddr, Rate: DefaultRate, Burst: DefaultBurst}
	if v := os.Getenv("PRESIZE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PRESIZE_RATE"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return Config{}, fmt.Errorf("PRESIZE_RATE must be a positive number, got %q", v)
		}
		cfg.Rate = r
	}
	if v := os.Getenv("PRESIZE_BURST"); v != "" {
		b, err := strconv.Atoi(v)
		if err != nil || b <= 0 {
			return Config{}, fmt.Errorf("PRESIZE_BURST must be a positive integer, got %q", v)
		}
		cfg.Burst = b
	}
	return cfg, nil
}

// NewRouter wires the API under /api behind the rate limiter.
func NewRouter(limiter *IPRateLimiter) *mux.Router {
	r := mux.NewRouter()
	h := &Handler{}

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/health", h.Health).Methods("GET")
	api.HandleFunc("/size", h.Size).Methods("POST")
	api.HandleFunc("/tables", h.Tables).Methods("POST")
	api.HandleFunc("/export/xlsx", h.Workbook).Methods("POST")
	api.HandleFunc("/export/pdf", h.Report).Methods("POST")
	api.HandleFunc("/diagram/plan", h.Plan).Methods("POST")
	api.HandleFunc("/diagram/elevation", h.Elevation).Methods("POST")

	return r
}

type Server struct {
	http *http.Server
}

func New(cfg Config) *Server {
	limiter := NewIPRateLimiter(rate.Limit(cfg.Rate), cfg.Burst)
	return &Server{
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(limiter),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("stopping server: %w", err)
	}
	log.Println("Server stopped")
	return nil
}
