package server

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/hrdirectory/internal/config"
)

func testConfig(port string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Port = port
	cfg.Server.ReadTimeout = time.Second
	cfg.Server.WriteTimeout = time.Second
	cfg.Server.IdleTimeout = time.Second
	cfg.Server.ShutdownTimeout = time.Second
	return cfg
}

func TestNewAppliesTimeouts(t *testing.T) {
	cfg := testConfig("3001")
	cfg.Server.ReadTimeout = 3 * time.Second

	s := New(cfg, gin.New(), nil, zerolog.Nop())
	assert.Equal(t, ":3001", s.http.Addr)
	assert.Equal(t, 3*time.Second, s.http.ReadTimeout)
	assert.Equal(t, time.Second, s.http.IdleTimeout)
}

func TestShutdownWithoutRun(t *testing.T) {
	s := New(testConfig("0"), gin.New(), nil, zerolog.Nop())
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestRunFailsWhenPortIsTaken(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
	s := New(testConfig(port), gin.New(), nil, zerolog.Nop())

	err = s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error starting server")
}
