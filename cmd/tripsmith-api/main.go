// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tripsmith/internal/ai"
	"tripsmith/internal/config"
	httptransport "tripsmith/internal/http"
	"tripsmith/internal/http/handlers"
	"tripsmith/internal/infra"
	tripmaps "tripsmith/internal/maps"
	"tripsmith/internal/modules/usage"
	"tripsmith/internal/planner"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	redisClient := infra.NewRedis(cfg.Redis.Addr)

	aiClient, err := ai.NewGeminiClient(ctx, cfg.AI.GeminiKey, ai.DefaultOptions())
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer aiClient.Close()

	plannerSvc := planner.NewService(aiClient)

	usageStore := usage.NewStore(dbPool, redisClient)
	usageSvc := usage.NewService(usageStore, cfg.Usage.MonthlyPlanQuota, cfg.Usage.BurstLimit)

	var tz handlers.TimezoneLookup
	if cfg.Maps.APIKey != "" {
		tzSvc, err := tripmaps.NewTimezoneService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		tz = tzSvc
	}

	router := httptransport.NewRouter(plannerSvc, usageSvc, tz)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
