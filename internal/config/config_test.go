package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_MemoryStorageDefaults(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "memory")
	t.Setenv("JWT_ACCESS_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 6, cfg.Search.DefaultPageSize)
	assert.Equal(t, 50, cfg.Search.MaxPageSize)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ProfileTTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
}

func TestLoad_PostgresRequiresDatabase(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "postgres")
	t.Setenv("JWT_ACCESS_SECRET", testSecret)
	t.Setenv("DB_HOST", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database host")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{Host: "db", User: "app", DBName: "roommates"},
			JWT:      JWTConfig{AccessSecret: testSecret},
			Storage:  StorageConfig{Type: StoragePostgres},
			Search:   SearchConfig{DefaultPageSize: 6, MaxPageSize: 50},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "short secret", mutate: func(c *Config) { c.JWT.AccessSecret = "short" }, wantErr: "at least 32"},
		{name: "unknown storage", mutate: func(c *Config) { c.Storage.Type = "mongo" }, wantErr: "unsupported storage"},
		{name: "zero page size", mutate: func(c *Config) { c.Search.DefaultPageSize = 0 }, wantErr: "page size"},
		{name: "max below default", mutate: func(c *Config) { c.Search.MaxPageSize = 2 }, wantErr: "max page size"},
		{name: "memory skips database", mutate: func(c *Config) {
			c.Storage.Type = StorageMemory
			c.Database = DatabaseConfig{}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAddrAndDSN(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.GetAddr())

	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.GetDSN())
}
