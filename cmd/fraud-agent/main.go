package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/jcmexdev/voicecart/internal/agentapi"
	"github.com/jcmexdev/voicecart/internal/fraud/sqlite"
	"github.com/jcmexdev/voicecart/internal/pkg/config"
	"github.com/jcmexdev/voicecart/internal/pkg/telemetry"
)

func main() {
	_ = godotenv.Load(".env.local")

	telemetry.InitLogger()

	ctx := context.Background()
	shutdown, err := telemetry.SetupTracer(ctx, "fraud-agent")
	if err != nil {
		log.Fatalf("tracer setup failed: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	cfg := config.Load()

	store, err := sqlite.Open(cfg.FraudDBPath)
	if err != nil {
		log.Fatalf("fraud store open failed: %v", err)
	}
	defer store.Close()

	handler := agentapi.NewFraudHandler(store)
	router := agentapi.NewFraudRouter(handler)

	log.Printf("fraud agent tools running on %s (db: %s)", cfg.HTTPAddr, cfg.FraudDBPath)
	if err := http.ListenAndServe(cfg.HTTPAddr, router); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}
