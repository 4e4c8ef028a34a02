package altekpg

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Gunvolt24/wc_altek/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotConfigured — прямая выгрузка не настроена (нет хоста или базы).
// Отличаем от ошибок связи: тут нечего ретраить, надо править настройки.
var ErrNotConfigured = errors.New("altek store is not configured")

// NewPool — пул соединений к хранилищу ALTEK из дискретных настроек.
// Ping в конце — fail-fast: о недоступности узнаём до первой выгрузки.
func NewPool(ctx context.Context, cfg config.Altek) (*pgxpool.Pool, error) {
	if cfg.Host == "" || cfg.Database == "" {
		return nil, fmt.Errorf("%w: host and database are required", ErrNotConfigured)
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&connect_timeout=%d",
		url.QueryEscape(cfg.User), url.QueryEscape(cfg.Password),
		cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
		int(cfg.ConnectTimeout.Seconds()),
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: bad connection parameters: %v", ErrNotConfigured, err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	// Жизненный цикл соединений — чтобы пул не накапливал протухшие коннекты.
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open altek pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if connErr := pool.Ping(pingCtx); connErr != nil {
		pool.Close()
		return nil, fmt.Errorf("altek unreachable at %s:%d (check host/port/credentials): %w",
			cfg.Host, cfg.Port, connErr)
	}

	return pool, nil
}
