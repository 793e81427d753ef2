// Comando seed: carga los datos de demostración en el backend configurado.
package main

import (
	"context"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/audit"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/auth"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/catalog"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/identity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/inventory"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/infrastructure/postgres"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/infrastructure/storage"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/seed"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/config"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	var (
		medicineRepo repository.MedicineRepository
		ledgerRepo   repository.LedgerRepository
		auditRepo    repository.AuditRepository
		userRepo     repository.UserRepository
	)
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear schema")
		}
		medicineRepo = postgres.NewMedicineRepository(pool)
		ledgerRepo = postgres.NewLedgerRepository(pool)
		auditRepo = postgres.NewAuditRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
	} else {
		store, err := storage.Open(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir almacenamiento")
		}
		medicineRepo = storage.NewMedicineRepository(store)
		ledgerRepo = storage.NewLedgerRepository(store)
		auditRepo = storage.NewAuditRepository(store)
		userRepo = storage.NewUserRepository(store)
	}

	auditRecorder := audit.NewRecorder(auditRepo, identity.ContextProvider{}, log)
	locker := inventory.NewStockLocker()
	authUC := auth.NewUseCase(userRepo, auditRecorder, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewUseCase(medicineRepo, ledgerRepo, auditRecorder)
	inventoryUC := inventory.NewUseCase(medicineRepo, ledgerRepo, auditRecorder, locker, log)

	if err := seed.Run(ctx, seed.Deps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		InventoryUC: inventoryUC,
		UserRepo:    userRepo,
		Log:         log,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
}
