package container

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gdugdh24/roommate-backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 0},
		JWT:     config.JWTConfig{AccessSecret: "0123456789abcdef0123456789abcdef", AccessExpiryMin: 60},
		Storage: config.StorageConfig{Type: config.StorageMemory},
		Search:  config.SearchConfig{DefaultPageSize: 6, MaxPageSize: 50},
	}
}

func TestNewContainer_Memory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, err := NewContainer(context.Background(), memoryConfig(), zap.NewNop())
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Redis)
	require.NotNil(t, c.Server)
}

func TestNewContainer_WithRedisCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)

	cfg := memoryConfig()
	cfg.Redis = config.RedisConfig{Host: mr.Host(), Port: atoi(t, mr.Port())}

	c, err := NewContainer(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.Redis)
}

func TestNewContainer_RedisUnreachable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	port := atoi(t, mr.Port())
	mr.Close()

	cfg := memoryConfig()
	cfg.Redis = config.RedisConfig{Host: "127.0.0.1", Port: port}

	_, err := NewContainer(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestHealthRouteIsWired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := memoryConfig()

	c, err := NewContainer(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer c.Close()

	w := httptest.NewRecorder()
	c.Server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}
