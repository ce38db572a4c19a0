package main

import (
	"context"
	"time"

	"authdemo/internal/config"
	"authdemo/internal/kv"
	"authdemo/internal/logging"
	"authdemo/internal/model"
	"authdemo/internal/repository"
	"authdemo/internal/service"
)

func main() {
	logging.Infof("Starting seed script...")

	cfg := config.Load()
	logging.SetLevel(cfg.LogLevel)

	if cfg.StoreBackend == config.BackendMemory || cfg.StoreBackend == "" {
		logging.Warnf("STORE_BACKEND=memory does not outlive this process; nothing to seed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backend, err := kv.Open(ctx, cfg)
	if err != nil {
		logging.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer backend.Close()
	logging.Infof("Connected to %s store", cfg.StoreBackend)

	seed := model.User{Name: cfg.SeedName, Email: cfg.SeedEmail, Password: cfg.SeedPassword}
	if err := service.ValidateSeedUser(seed); err != nil {
		logging.Fatalf("Invalid seed user: %v", err)
	}

	store := repository.NewCredentialStore(backend, cfg.StorageKey, seed)
	created, err := store.EnsureSeedUser(ctx)
	if err != nil {
		logging.Fatalf("Failed to seed user: %v", err)
	}

	if created {
		logging.Infof("Seeded %s into slot %q", seed.Email, cfg.StorageKey)
	} else {
		logging.Infof("%s already present in slot %q", seed.Email, cfg.StorageKey)
	}
	logging.Infof("Seed completed: %d users stored", len(store.Load(ctx)))
}
