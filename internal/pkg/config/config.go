// Package config reads agent configuration from the environment. Store
// locations are explicit here — no package-level path state anywhere else.
package config

import "os"

// Config holds every external location and address the agents need.
type Config struct {
	// HTTPAddr is the listen address of the tool HTTP server.
	HTTPAddr string

	// CatalogPath is the grocery catalog JSON file (read-only).
	CatalogPath string

	// OrdersPath is the grocery order ledger JSON file.
	OrdersPath string

	// FraudDBPath is the SQLite database holding fraud cases.
	FraudDBPath string

	// LeadsPath is the JSONL lead ledger.
	LeadsPath string

	// DraftsDir receives one email-draft JSON file per saved lead.
	DraftsDir string

	// CoffeeOrdersDir receives finished coffee orders.
	CoffeeOrdersDir string

	// FAQPath is the FAQ JSON file.
	FAQPath string

	// RedisAddr enables the response cache when non-empty.
	RedisAddr string
}

// Load builds a Config from the environment, with local-dev defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		CatalogPath:     getEnv("CATALOG_PATH", "shared-data/grocery_catalog.json"),
		OrdersPath:      getEnv("ORDERS_PATH", "shared-data/orders.json"),
		FraudDBPath:     getEnv("FRAUD_DB_PATH", "shared-data/fraud_cases.db"),
		LeadsPath:       getEnv("LEADS_PATH", "leads/leads.jsonl"),
		DraftsDir:       getEnv("DRAFTS_DIR", "email_drafts"),
		CoffeeOrdersDir: getEnv("COFFEE_ORDERS_DIR", "orders"),
		FAQPath:         getEnv("FAQ_PATH", "shared-data/faq.json"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
