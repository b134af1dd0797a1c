// Command apikey mints a widget/integration API key for a tenant and prints
// it once. Only the bcrypt hash is stored.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"partyrent-backend/internal/config"
	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/logger"
	"partyrent-backend/internal/repository/postgres"
	"partyrent-backend/internal/security"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	tenant := flag.String("tenant", "", "Tenant id or slug to issue the key for")
	label := flag.String("label", "default", "Label for the key")
	flag.Parse()

	if *tenant == "" {
		log.Fatal("-tenant is required")
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	ctx := context.Background()

	t, err := store.TenantRepository.GetByID(ctx, *tenant)
	if err != nil {
		t, err = store.TenantRepository.GetBySlug(ctx, *tenant)
	}
	if err != nil {
		log.Fatalf("Tenant %q not found: %v", *tenant, err)
	}

	id, secret, hash, err := security.GenerateAPIKey()
	if err != nil {
		log.Fatalf("Failed to generate api key: %v", err)
	}

	key := &domain.APIKey{
		ID:         id,
		TenantID:   t.ID,
		Label:      *label,
		SecretHash: hash,
		Status:     domain.APIKeyStatusActive,
	}
	if err := store.APIKeyRepository.Create(ctx, key); err != nil {
		log.Fatalf("Failed to store api key: %v", err)
	}

	fmt.Printf("API key for tenant %s (%s):\n\n  %s.%s\n\nStore it now; the secret is not recoverable.\n",
		t.Name, t.ID, id, secret)
}
