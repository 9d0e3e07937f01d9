package taoquant

import (
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("TUSHARE_API_KEY", "test-token")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PASSWORD", "root")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TushareToken != "test-token" {
		t.Error("unexpected token:", cfg.TushareToken)
	}
	if cfg.DBPort != 3306 || cfg.DayLength != 30 {
		t.Error("unexpected defaults:", cfg.DBPort, cfg.DayLength)
	}
	if dsn := cfg.DSN(); dsn != "root:root@tcp(127.0.0.1:3306)/taoquant?charset=utf8mb4&parseTime=True&loc=Local" {
		t.Error("unexpected dsn:", dsn)
	}
}

func TestLoadConfigMissingToken(t *testing.T) {
	t.Setenv("TUSHARE_API_KEY", "")
	t.Setenv("tushare_api_key", "")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error without api key")
	}
}
