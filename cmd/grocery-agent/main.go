package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/jcmexdev/voicecart/internal/agentapi"
	"github.com/jcmexdev/voicecart/internal/faq"
	"github.com/jcmexdev/voicecart/internal/grocery/catalog"
	"github.com/jcmexdev/voicecart/internal/grocery/ledger"
	"github.com/jcmexdev/voicecart/internal/lead"
	"github.com/jcmexdev/voicecart/internal/pkg/cache"
	"github.com/jcmexdev/voicecart/internal/pkg/config"
	"github.com/jcmexdev/voicecart/internal/pkg/telemetry"
)

const fallbackPitch = "We're a low-cost broker with powerful trading tools. " +
	"Would you like help starting your trading journey?"

func main() {
	// Optional local overrides; absence is fine.
	_ = godotenv.Load(".env.local")

	telemetry.InitLogger()

	ctx := context.Background()
	shutdown, err := telemetry.SetupTracer(ctx, "grocery-agent")
	if err != nil {
		log.Fatalf("tracer setup failed: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	cfg := config.Load()

	items, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}
	resolver := catalog.NewResolver(items)

	orderLedger, err := ledger.Open(cfg.OrdersPath)
	if err != nil {
		log.Fatalf("order ledger open failed: %v", err)
	}

	faqs, err := faq.Load(cfg.FAQPath, fallbackPitch)
	if err != nil {
		log.Fatalf("faq load failed: %v", err)
	}

	leads := lead.NewStore(cfg.LeadsPath, cfg.DraftsDir)

	var responseCache cache.Cache = cache.Nop{}
	if cfg.RedisAddr != "" {
		responseCache = cache.NewRedisCache(cfg.RedisAddr, "grocery-agent")
	}

	sessions := agentapi.NewSessions(resolver, cfg.CoffeeOrdersDir)
	handler := agentapi.NewHandler(sessions, orderLedger, leads, faqs, responseCache)
	router := agentapi.NewRouter(handler)

	log.Printf("grocery agent tools running on %s (catalog: %d items)", cfg.HTTPAddr, len(items))
	if err := http.ListenAndServe(cfg.HTTPAddr, router); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}
