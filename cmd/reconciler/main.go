// reconciler ejecuta una corrida de la reconciliación de stocks: pasa a
// in_stock los stocks pending cuya fecha programada es la indicada.
//
// Pensado para dispararse desde el scheduler del host (ej. cron diario).
// Uso: reconciler [-date YYYY-MM-DD]   (por defecto la fecha de hoy, UTC)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	appstock "github.com/jcastro/stockapp-api/internal/application/stock"
	domainstock "github.com/jcastro/stockapp-api/internal/domain/stock"
	"github.com/jcastro/stockapp-api/internal/infrastructure/postgres"
	"github.com/jcastro/stockapp-api/pkg/config"
	"github.com/jcastro/stockapp-api/pkg/logger"
)

func main() {
	dateFlag := flag.String("date", "", "fecha a reconciliar (YYYY-MM-DD); vacío = hoy")
	flag.Parse()

	var asOf time.Time
	if *dateFlag != "" {
		parsed, err := time.Parse(time.DateOnly, *dateFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fecha inválida %q: se espera YYYY-MM-DD\n", *dateFlag)
			os.Exit(2)
		}
		asOf = parsed
	}

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

	uc := appstock.NewReconcileUseCase(postgres.NewStockRepository(pool), domainstock.SystemClock{})
	count, err := uc.Reconcile(asOf)
	if err != nil {
		log.Fatal().Err(err).Msg("reconciliación de stocks")
	}

	if asOf.IsZero() {
		asOf = domainstock.SystemClock{}.Today()
	}
	log.Info().
		Str("date", asOf.Format(time.DateOnly)).
		Int64("count", count).
		Msg("stocks transicionados a in_stock")
	fmt.Printf("Actualizados %d stocks a in_stock para la fecha %s\n", count, asOf.Format(time.DateOnly))
}
