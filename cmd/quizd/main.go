package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/Sambhav234/Quiz-Generator/internal/api/http"
	"github.com/Sambhav234/Quiz-Generator/internal/attempts"
	"github.com/Sambhav234/Quiz-Generator/internal/auth"
	authmw "github.com/Sambhav234/Quiz-Generator/internal/auth/middleware"
	"github.com/Sambhav234/Quiz-Generator/internal/config"
	"github.com/Sambhav234/Quiz-Generator/internal/db"
	"github.com/Sambhav234/Quiz-Generator/internal/feeds"
	"github.com/Sambhav234/Quiz-Generator/internal/quiz"
	"github.com/Sambhav234/Quiz-Generator/internal/rbac"
)

func main() {
	_ = godotenv.Load() // optional .env

	cfg := config.FromEnv()

	// --- Attempts store ---
	var store attempts.Store
	if cfg.DBDriver == "" {
		store = attempts.NewInMemoryStore()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		store = attempts.NewSQLStore(dbh, cfg.DBDriver)
	}

	// --- Engine + feeds ---
	engine := quiz.NewGenerator()
	feedsClient := feeds.NewClient(cfg.NewsAPIKey, time.Duration(cfg.FetchTimeoutSecs)*time.Second)

	// --- Auth ---
	secret := cfg.AuthSecret
	if secret == "" {
		secret = "quizgen-dev-secret"
	}
	authSvc := authmw.NewAuthService(secret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/health", api.HealthHandler())

	// With auth disabled the API stays open: the identity middleware and
	// the permission guards collapse to no-ops.
	authed := func(next http.Handler) http.Handler { return next }
	guard := func(string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler { return next }
	}
	if cfg.AuthEnabled {
		r.Post("/api/auth/guest", auth.GuestLoginHandler(authSvc))
		r.Post("/api/auth/login", auth.AdminLoginHandler(authSvc, cfg))
		authed = authmw.JWTMiddleware(authSvc)
		guard = rbac.Require
	}

	r.Group(func(pr chi.Router) {
		pr.Use(authed)

		pr.With(guard("feeds:view")).
			Get("/api/news", api.NewsHandler(feedsClient))
		pr.With(guard("feeds:view")).
			Get("/api/papers", api.PapersHandler(feedsClient))

		pr.With(guard("quiz:generate")).
			Post("/api/generate-quiz", api.GenerateQuizHandler(engine, cfg.MaxQuestions))
		pr.With(guard("quiz:generate")).
			Post("/api/generate-from-news", api.GenerateFromNewsHandler(feedsClient, engine, cfg.MaxQuestions))
		pr.With(guard("quiz:generate")).
			Post("/api/generate-from-paper", api.GenerateFromPaperHandler(feedsClient, engine, cfg.MaxQuestions))
		pr.With(guard("quiz:grade")).
			Post("/api/submit-quiz", api.SubmitQuizHandler(store))

		pr.With(guard("attempt:view-own")).
			Get("/api/attempts", api.ListAttemptsHandler(store))
		pr.With(guard("attempt:view-own")).
			Get("/api/attempts/{attemptID}", api.GetAttemptHandler(store))
		pr.With(guard("attempt:delete-own")).
			Delete("/api/attempts/{attemptID}", api.DeleteAttemptHandler(store))
		pr.With(guard("attempt:purge")).
			Delete("/api/attempts", api.PurgeAttemptsHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	dbName := cfg.DBDriver
	if dbName == "" {
		dbName = "memory"
	}
	log.Printf("listening on %s (db=%s, auth=%v)", cfg.HTTPAddr, dbName, cfg.AuthEnabled)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
