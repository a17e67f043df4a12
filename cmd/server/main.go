package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authhandler "milestone-tracker/backend/internal/auth/handler"
	authservice "milestone-tracker/backend/internal/auth/service"
	"milestone-tracker/backend/internal/auth/session"
	"milestone-tracker/backend/internal/config"
	"milestone-tracker/backend/internal/db"
	planrepo "milestone-tracker/backend/internal/plan/repository"
	planservice "milestone-tracker/backend/internal/plan/service"
	quizrepo "milestone-tracker/backend/internal/quiz/repository"
	quizservice "milestone-tracker/backend/internal/quiz/service"
	"milestone-tracker/backend/internal/security"
	"milestone-tracker/backend/internal/server"
	"milestone-tracker/backend/internal/storage"
	timelinerepo "milestone-tracker/backend/internal/timeline/repository"
	timelineservice "milestone-tracker/backend/internal/timeline/service"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	hasher := security.NewHasher(cfg.BcryptCost)
	sessions := session.NewMemoryRegistry(cfg.SessionTTLDuration(), cfg.SessionMaxPerUser)
	auth := authservice.NewService(cfg.AuthUserTable(), hasher, sessions)

	store := storage.NewSupabaseStorage(cfg.SupabaseURL+"/storage/v1", cfg.SupabaseServiceKey, cfg.StorageBucket)

	router := server.NewRouter(server.Deps{
		Auth:              auth,
		Plans:             planservice.NewService(planrepo.NewPostgresRepository(conn)),
		Quiz:              quizservice.NewService(quizrepo.NewPostgresQuestionRepository(conn), quizrepo.NewPostgresResultRepository(conn)),
		Timeline:          timelineservice.NewService(timelinerepo.NewPostgresRepository(conn), store),
		HealthPinger:      conn,
		Version:           version,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		SessionCookie: authhandler.CookieConfig{
			Name:   cfg.SessionCookieName,
			Secure: cfg.SessionCookieSecure,
			TTL:    cfg.SessionTTLDuration(),
		},
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("HTTP server stopped")
}
