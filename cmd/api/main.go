package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/audit"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/auth"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/catalog"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/identity"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/inventory"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/pos"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/reports"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/repository"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/infrastructure/postgres"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/infrastructure/storage"
	httpRouter "github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/interfaces/http"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/config"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/pkg/logger"
)

// repositories agrupa los puertos de persistencia ya atados a un backend.
type repositories struct {
	medicines repository.MedicineRepository
	ledgers   repository.LedgerRepository
	sales     repository.SaleRepository
	audits    repository.AuditRepository
	users     repository.UserRepository
	close     func()
}

// buildRepositories ata los puertos al backend elegido por STORAGE_DRIVER:
// "file" (snapshots JSON en disco) o "postgres".
func buildRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &repositories{
			medicines: postgres.NewMedicineRepository(pool),
			ledgers:   postgres.NewLedgerRepository(pool),
			sales:     postgres.NewSaleRepository(pool),
			audits:    postgres.NewAuditRepository(pool),
			users:     postgres.NewUserRepository(pool),
			close:     pool.Close,
		}, nil
	}

	store, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}
	return &repositories{
		medicines: storage.NewMedicineRepository(store),
		ledgers:   storage.NewLedgerRepository(store),
		sales:     storage.NewSaleRepository(store),
		audits:    storage.NewAuditRepository(store),
		users:     storage.NewUserRepository(store),
		close:     func() {},
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := buildRepositories(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicialización del almacenamiento")
	}
	defer repos.close()

	idProvider := identity.ContextProvider{}
	auditRecorder := audit.NewRecorder(repos.audits, idProvider, log)
	locker := inventory.NewStockLocker()

	authUC := auth.NewUseCase(repos.users, auditRecorder, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewUseCase(repos.medicines, repos.ledgers, auditRecorder)
	inventoryUC := inventory.NewUseCase(repos.medicines, repos.ledgers, auditRecorder, locker, log)
	posUC := pos.NewUseCase(repos.medicines, repos.ledgers, repos.sales, auditRecorder, idProvider, locker, log)
	reportsUC := reports.NewUseCase(repos.medicines, repos.ledgers, repos.sales)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		InventoryUC: inventoryUC,
		POSUC:       posUC,
		ReportsUC:   reportsUC,
		Audit:       auditRecorder,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
