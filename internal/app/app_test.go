package app

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/chrissnell/irrigationdash/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestConfigAppliesEnvironment(t *testing.T) {
	a := New(config.NewDefaultProvider(), zap.NewNop().Sugar())
	a.getenv = func(k string) string {
		if k == config.EnvPort {
			return "9123"
		}
		return ""
	}

	cfg, err := a.Config()
	require.NoError(t, err)
	assert.Equal(t, 9123, cfg.Server.Port)
}

func TestConfigRejectsBadPort(t *testing.T) {
	a := New(config.NewDefaultProvider(), zap.NewNop().Sugar())
	a.getenv = func(k string) string {
		if k == config.EnvPort {
			return "eighty"
		}
		return ""
	}

	_, err := a.Config()
	assert.Error(t, err)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	// Reserve a free port, then release it for the app to bind.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	a := New(config.NewDefaultProvider(), zap.NewNop().Sugar())
	a.getenv = func(k string) string {
		if k == config.EnvPort {
			return strconv.Itoa(port)
		}
		return ""
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestRunFailsOnBadDashboardConfig(t *testing.T) {
	a := New(config.NewDefaultProvider(), zap.NewNop().Sugar())
	a.getenv = func(k string) string {
		if k == config.EnvChartKind {
			return "radar"
		}
		return ""
	}

	assert.Error(t, a.Run(context.Background()))
}

// staticProvider serves a fixed configuration.
type staticProvider struct {
	config.DefaultProvider
	cfg *config.ConfigData
}

func (p staticProvider) LoadConfig() (*config.ConfigData, error) {
	return p.cfg, nil
}

func TestRunListenFailureIsNotASignal(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.DefaultConfig()
	cfg.Server.ListenAddr = "127.0.0.1"
	cfg.Server.Port = busy.Addr().(*net.TCPAddr).Port

	core, logs := observer.New(zap.InfoLevel)
	a := New(staticProvider{cfg: cfg}, zap.New(core).Sugar())
	a.getenv = func(string) string { return "" }

	assert.Error(t, a.Run(context.Background()))
	assert.Zero(t, logs.FilterMessageSnippet("shutdown signal").Len())
}
