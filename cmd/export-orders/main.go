package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/wc_altek/config"
	"github.com/Gunvolt24/wc_altek/internal/export/altekhttp"
	"github.com/Gunvolt24/wc_altek/internal/ports"
	"github.com/Gunvolt24/wc_altek/internal/repo/altekpg"
	"github.com/Gunvolt24/wc_altek/internal/repo/shoppg"
	"github.com/Gunvolt24/wc_altek/internal/usecase"
	"github.com/Gunvolt24/wc_altek/pkg/logger"
	"github.com/Gunvolt24/wc_altek/pkg/metrics"
)

// CLI-приложение для ручной выгрузки заказов в ALTEK по списку id.
func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "total timeout for the whole run")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: export-orders [-timeout 2m] <order-id> [<order-id>...]")
		os.Exit(2)
	}

	orderIDs := make([]int64, 0, flag.NArg())
	for _, arg := range flag.Args() {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			fmt.Fprintf(os.Stderr, "invalid order id %q\n", arg)
			os.Exit(2)
		}
		orderIDs = append(orderIDs, id)
	}

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd, cfg.Export.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanupLogger() }()

	metrics.MustRegister()

	shopPool, err := shoppg.NewPool(ctx, cfg.Shop.DSN, cfg.Shop.MaxConns)
	if err != nil {
		logg.Errorf(ctx, "shop pool: %v", err)
		os.Exit(1)
	}
	defer shopPool.Close()

	var exporter ports.Exporter
	switch cfg.Export.Transport {
	case "http":
		exporter = altekhttp.NewExporter(cfg.Legacy.Endpoint, cfg.Legacy.APIKey, cfg.Legacy.Timeout, logg)
	default:
		pool, pErr := altekpg.NewPool(ctx, cfg.Altek)
		if pErr != nil {
			logg.Errorf(ctx, "altek pool: %v", pErr)
			os.Exit(1)
		}
		defer pool.Close()

		exporter, err = altekpg.NewExporter(pool, cfg.Altek.Schema, logg)
		if err != nil {
			logg.Errorf(ctx, "altek exporter: %v", err)
			os.Exit(1)
		}
	}

	service := usecase.NewExportService(shoppg.NewOrderSource(shopPool), exporter, logg, cfg.Export.Exclusions, cfg.Altek.Schema)

	failures := service.ExportOrders(ctx, orderIDs)
	for _, id := range orderIDs {
		if ferr, ok := failures[id]; ok {
			fmt.Printf("order %d: FAILED: %v\n", id, ferr)
			continue
		}
		fmt.Printf("order %d: ok\n", id)
	}

	if len(failures) > 0 {
		os.Exit(1)
	}
}
