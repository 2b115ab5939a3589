// @title           Desktop State API
// @version         1.0
// @description     Persisted state of simulated desktops: virtual file tree, notifications and settings.
// @host            localhost:8080
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	"serwer-pulpitu/internal/api"
	"serwer-pulpitu/internal/backend"
	"serwer-pulpitu/internal/config"
	"serwer-pulpitu/internal/desktop"
	"serwer-pulpitu/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "serwer-pulpitu/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nie można wczytać konfiguracji: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Nie można otworzyć magazynu stanu: %v", err)
	}
	defer closeStore()
	log.Printf("Magazyn stanu: %s", cfg.Storage.Backend)

	wsHub := websocket.NewHub()
	go wsHub.Run()

	registry := desktop.NewRegistry(store, wsHub)
	server := api.NewServer(cfg, store, registry, wsHub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(api.MetricsMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Serwer pulpitu działa! Dokumentacja dostępna pod /swagger/index.html"))
	})

	r.Handle("/metrics", promhttp.Handler())
	server.Routes(r)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("WARN: Zamykanie serwera nie powiodło się: %v", err)
		}
	}()

	log.Printf("Uruchamianie serwera na %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
	log.Println("Serwer zatrzymany")
}
