package database

import (
	"strings"
	"testing"
	"time"
)

// TestSetPostgresDefaults 零值配置补齐默认值，显式值不被覆盖
func TestSetPostgresDefaults(t *testing.T) {
	c := &PostgresConfig{}
	setPostgresDefaults(c)

	if c.Host != "localhost" || c.Port != 5432 {
		t.Errorf("host/port defaults = %s:%d", c.Host, c.Port)
	}
	if c.Database != "larp_directory" {
		t.Errorf("Database = %q", c.Database)
	}
	if c.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", c.LogLevel)
	}
	if c.MaxIdleConns != 5 || c.MaxOpenConns != 20 || c.ConnMaxLifetime != time.Hour {
		t.Errorf("pool defaults = %d/%d/%v", c.MaxIdleConns, c.MaxOpenConns, c.ConnMaxLifetime)
	}

	explicit := &PostgresConfig{Database: "other", LogLevel: "info", MaxOpenConns: 3}
	setPostgresDefaults(explicit)
	if explicit.Database != "other" || explicit.LogLevel != "info" || explicit.MaxOpenConns != 3 {
		t.Errorf("explicit values overwritten: %+v", explicit)
	}
}

// TestBuildDSN 连接串带站点时区，SSL 开关生效
func TestBuildDSN(t *testing.T) {
	c := &PostgresConfig{Host: "db", Port: 5432, Username: "larp", Password: "pw", Database: "larp_directory"}

	dsn := buildDSN(c)
	if !strings.Contains(dsn, "TimeZone=Europe/Helsinki") {
		t.Errorf("dsn missing site timezone: %s", dsn)
	}
	if !strings.Contains(dsn, "sslmode=disable") {
		t.Errorf("dsn = %s, want sslmode=disable", dsn)
	}

	c.SSLMode = true
	if dsn := buildDSN(c); !strings.Contains(dsn, "sslmode=require") {
		t.Errorf("dsn = %s, want sslmode=require", dsn)
	}
}

// TestNewGormLogger 未知级别回落到 warn
func TestNewGormLogger(t *testing.T) {
	if got := newGormLogger("bogus"); got == nil {
		t.Fatal("logger should never be nil")
	}
	if got := newGormLogger("silent"); got == nil {
		t.Fatal("silent level should build a logger")
	}
}
