// Command sudoku-server exposes the Sudoku solving core behind a minimal
// HTTP surface: POST /solve accepts a batch of puzzles and returns a batch
// of solutions or typed errors.
package main

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"sudokuservice/internal/config"
	"sudokuservice/internal/httpapi"
	"sudokuservice/internal/logging"
	"sudokuservice/internal/ratelimit"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	limiter := ratelimit.New(cfg.RateReplenishInterval, cfg.RateBurst)
	h := httpapi.New(logger)

	mux := http.NewServeMux()
	h.Register(mux)

	handler := logging.RequestLogger(logger, limiter.Middleware(mux))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithFields(logrus.Fields{
		"addr":      cfg.Addr,
		"logLevel":  cfg.LogLevel,
		"rateBurst": cfg.RateBurst,
	}).Info("listening")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("server error")
	}
}
