package main

import (
	"log"
	"net/http"
	"time"

	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/bootstrap"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/config"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	// The write timeout is the ceiling on total request duration; large
	// documents plus model latency must fit inside it.
	srv := &http.Server{
		Addr:         addr,
		Handler:      app.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
