// seed aplica el esquema y carga datos de demostración: cinco tiendas, un
// usuario administrador y cincuenta stocks con fechas y estados variados.
//
// Uso: seed [-admin-password <pass>]
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastro/stockapp-api/internal/domain/entity"
	"github.com/jcastro/stockapp-api/internal/infrastructure/postgres"
	"github.com/jcastro/stockapp-api/pkg/config"
	"github.com/jcastro/stockapp-api/pkg/logger"
)

func main() {
	adminPassword := flag.String("admin-password", "password", "contraseña del usuario admin de demo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("esquema aplicado")

	if err := seedStores(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("sembrar tiendas")
	}
	if err := seedAdmin(ctx, pool, *adminPassword); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario admin")
	}
	if err := seedStocks(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("sembrar stocks")
	}
	log.Info().Msg("datos de demostración cargados")
}

func seedStores(ctx context.Context, q postgres.Querier) error {
	stores := []struct {
		name, location string
	}{
		{"Main Warehouse", "Surat"},
		{"North Branch", "North District"},
		{"South Branch", "South District"},
		{"East Branch", "East District"},
		{"West Branch", "West District"},
	}
	for _, s := range stores {
		_, err := q.Exec(ctx, `
			INSERT INTO stores (name, location, is_active)
			SELECT $1, $2, true
			WHERE NOT EXISTS (SELECT 1 FROM stores WHERE name = $1)`,
			s.name, s.location,
		)
		if err != nil {
			return fmt.Errorf("insert store %s: %w", s.name, err)
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, q postgres.Querier, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash de contraseña: %w", err)
	}
	now := time.Now().UTC()
	_, err = q.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), "Admin", "admin@stockapp.local", string(hash), now,
	)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func seedStocks(ctx context.Context, q postgres.Querier) error {
	rows, err := q.Query(ctx, `SELECT id FROM stores`)
	if err != nil {
		return fmt.Errorf("listar tiendas: %w", err)
	}
	defer rows.Close()
	var storeIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan store id: %w", err)
		}
		storeIDs = append(storeIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(storeIDs) == 0 {
		return fmt.Errorf("no hay tiendas sembradas")
	}

	statuses := []string{entity.StockStatusPending, entity.StockStatusInStock}
	today := time.Now().UTC()
	for i := 1; i <= 50; i++ {
		_, err := q.Exec(ctx, `
			INSERT INTO stocks (stock_no, item_code, item_name, quantity, location, store_id, in_stock_date, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (stock_no) DO NOTHING`,
			fmt.Sprintf("STK-%04d", i),
			randomItemCode(),
			fmt.Sprintf("Product %d", i),
			5+rand.IntN(96),
			fmt.Sprintf("Warehouse %d", 1+rand.IntN(5)),
			storeIDs[rand.IntN(len(storeIDs))],
			today.AddDate(0, 0, -rand.IntN(31)),
			statuses[rand.IntN(2)],
		)
		if err != nil {
			return fmt.Errorf("insert stock %d: %w", i, err)
		}
	}
	return nil
}

func randomItemCode() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	code := make([]byte, 6)
	for i := range code {
		code[i] = letters[rand.IntN(len(letters))]
	}
	return string(code)
}
