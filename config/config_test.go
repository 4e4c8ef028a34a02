package config_test

import (
	"testing"
	"time"

	cfg "github.com/Gunvolt24/wc_altek/config"
)

// TestLoadWithPrefix_Defaults — проверка значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	c, err := cfg.LoadWithPrefix("ALTEK_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}

	// ALTEK: прямая выгрузка требует явной настройки.
	if c.Altek.Host != "" || c.Altek.Database != "" {
		t.Fatalf("Altek must be unconfigured by default: %+v", c.Altek)
	}
	if c.Altek.Port != 5432 || c.Altek.Schema != "altek" || c.Altek.SSLMode != "disable" {
		t.Fatalf("Altek defaults wrong: %+v", c.Altek)
	}
	if c.Altek.ConnectTimeout != 20*time.Second {
		t.Fatalf("Altek.ConnectTimeout: want 20s, got %v", c.Altek.ConnectTimeout)
	}

	// Export
	if c.Export.Transport != "db" || c.Export.Exclusions != "" || c.Export.Debug {
		t.Fatalf("Export defaults wrong: %+v", c.Export)
	}

	// Kafka выключена по умолчанию.
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want false")
	}
	if c.Kafka.Topic != "altek-exports" || c.Kafka.StartOffset != "last" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}

	// Tracing выключен по умолчанию.
	if c.Tracing.Enabled || c.Tracing.ServiceName != "altek-export" {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}
}

// TestLoadWithPrefix_TimeoutFloor — таймауты не опускаются ниже 5с.
func TestLoadWithPrefix_TimeoutFloor(t *testing.T) {
	t.Setenv("ALTEK_TEST_FLOOR_ALTEK_CONNECT_TIMEOUT", "1s")
	t.Setenv("ALTEK_TEST_FLOOR_LEGACY_TIMEOUT", "500ms")

	c, err := cfg.LoadWithPrefix("ALTEK_TEST_FLOOR")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}
	if c.Altek.ConnectTimeout != 5*time.Second {
		t.Fatalf("Altek.ConnectTimeout floor: want 5s, got %v", c.Altek.ConnectTimeout)
	}
	if c.Legacy.Timeout != 5*time.Second {
		t.Fatalf("Legacy.Timeout floor: want 5s, got %v", c.Legacy.Timeout)
	}
}

// TestLoadWithPrefix_BadTransport — неизвестный транспорт отклоняется.
func TestLoadWithPrefix_BadTransport(t *testing.T) {
	t.Setenv("ALTEK_TEST_TR_EXPORT_TRANSPORT", "ftp")

	if _, err := cfg.LoadWithPrefix("ALTEK_TEST_TR"); err == nil {
		t.Fatal("want error for unknown transport")
	}
}

// TestLoadWithPrefix_Overrides — переменные окружения перекрывают дефолты.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	t.Setenv("ALTEK_TEST_OV_ALTEK_HOST", "altek.local")
	t.Setenv("ALTEK_TEST_OV_ALTEK_DATABASE", "erp")
	t.Setenv("ALTEK_TEST_OV_EXPORT_TRANSPORT", "http")
	t.Setenv("ALTEK_TEST_OV_LEGACY_ENDPOINT", "https://altek.example/api/orders")
	t.Setenv("ALTEK_TEST_OV_EXPORT_EXCLUSIONS", "SKU1, 1024")

	c, err := cfg.LoadWithPrefix("ALTEK_TEST_OV")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}
	if c.Altek.Host != "altek.local" || c.Altek.Database != "erp" {
		t.Fatalf("Altek overrides lost: %+v", c.Altek)
	}
	if c.Export.Transport != "http" || c.Export.Exclusions != "SKU1, 1024" {
		t.Fatalf("Export overrides lost: %+v", c.Export)
	}
	if c.Legacy.Endpoint != "https://altek.example/api/orders" {
		t.Fatalf("Legacy endpoint lost: %+v", c.Legacy)
	}
}
