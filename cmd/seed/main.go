// Package main provides a CLI tool for bootstrapping the database schema
// and seeding it with initial data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"sellpoint/internal/core/apperror"
	corenum "sellpoint/internal/core/ordernum"
	"sellpoint/internal/domain/auth"
	"sellpoint/internal/domain/order"
	"sellpoint/internal/domain/outlet"
	infranum "sellpoint/internal/infrastructure/ordernum"
	"sellpoint/internal/infrastructure/storage/postgres"
	"sellpoint/internal/infrastructure/storage/postgres/auth_repo"
	"sellpoint/internal/infrastructure/storage/postgres/order_repo"
	"sellpoint/internal/infrastructure/storage/postgres/outlet_repo"
	"sellpoint/pkg/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS outlets (
		id         BIGSERIAL PRIMARY KEY,
		code       TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		address    TEXT,
		is_active  BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id         UUID PRIMARY KEY,
		number     TEXT NOT NULL,
		outlet_id  BIGINT NOT NULL REFERENCES outlets(id),
		total      NUMERIC(18,2) NOT NULL,
		currency   CHAR(3) NOT NULL,
		status     TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		created_by TEXT NOT NULL DEFAULT ''
	)`,
	// Last line of defense for number uniqueness.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_number ON orders (number)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_outlet_created ON orders (outlet_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_number_prefix ON orders (number text_pattern_ops)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL,
		is_active     BOOLEAN NOT NULL DEFAULT true,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sys_audit (
		id                 UUID PRIMARY KEY,
		entity_type        TEXT NOT NULL,
		entity_id          UUID NOT NULL,
		action             TEXT NOT NULL,
		user_id            TEXT NOT NULL DEFAULT '',
		user_email         TEXT NOT NULL DEFAULT '',
		changes            JSONB,
		changes_compressed BYTEA,
		compression_algo   TEXT NOT NULL DEFAULT 'none',
		created_at         TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sys_audit_entity ON sys_audit (entity_type, entity_id, created_at DESC)`,
}

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalw("failed to apply schema", "error", err)
		}
	}
	log.Info("schema applied")

	txManager := postgres.NewTxManager(pool)
	userRepo := auth_repo.NewUserRepo(txManager)
	outletRepo := outlet_repo.NewOutletRepo(txManager)
	orderRepo := order_repo.NewOrderRepo(txManager)

	if err := seedAdminUser(ctx, userRepo, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, txManager, outletRepo, orderRepo, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, repo auth.Repository, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@sellpoint.local"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	exists, err := repo.ExistsByEmail(ctx, adminEmail)
	if err != nil {
		return fmt.Errorf("check admin exists: %w", err)
	}
	if exists {
		log.Infow("admin user already exists", "email", adminEmail)
		return nil
	}

	admin := auth.NewUser(adminEmail, "System Admin", auth.RoleAdmin)
	if err := admin.SetPassword(adminPassword); err != nil {
		return fmt.Errorf("set admin password: %w", err)
	}
	if err := repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", admin.ID)
	return nil
}

// seedDemoData creates demo outlets and a few orders per format so the API
// has something to show out of the box.
func seedDemoData(
	ctx context.Context,
	txManager *postgres.TxManager,
	outletRepo outlet.Repository,
	orderRepo order.Repository,
	log *logger.Logger,
) error {
	outlets := []*outlet.Outlet{
		outlet.NewOutlet("MAIN", "Main Street Store"),
		outlet.NewOutlet("MALL", "Shopping Mall Kiosk"),
		outlet.NewOutlet("WEB", "Online Store"),
	}

	for _, o := range outlets {
		existing, err := outletRepo.GetByCode(ctx, o.Code)
		if err == nil {
			o.ID = existing.ID
			log.Infow("outlet already exists", "code", o.Code, "outlet_id", o.ID)
			continue
		}
		if !apperror.IsNotFound(err) {
			return fmt.Errorf("check outlet %s: %w", o.Code, err)
		}
		if err := outletRepo.Create(ctx, o); err != nil {
			return fmt.Errorf("create outlet %s: %w", o.Code, err)
		}
		log.Infow("outlet created", "code", o.Code, "outlet_id", o.ID)
	}

	outletService := outlet.NewService(outletRepo)
	generator := infranum.NewService(orderRepo, outletService, txManager)
	orderService := order.NewService(orderRepo, generator, txManager, nil)

	formats := []corenum.Format{
		corenum.FormatSequential,
		corenum.FormatSequential,
		corenum.FormatDateBased,
		corenum.FormatRandom,
	}

	for _, f := range formats {
		o, err := orderService.Create(ctx, order.CreateParams{
			OutletID:  outlets[0].ID,
			Total:     decimal.NewFromFloat(19.90),
			Currency:  "USD",
			Numbering: corenum.Config{Format: f},
		})
		if err != nil {
			return fmt.Errorf("create demo order (%s): %w", f, err)
		}
		log.Infow("demo order created", "number", o.Number, "format", string(f))
	}

	return nil
}
