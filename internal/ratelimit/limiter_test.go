package ratelimit

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/anamtn/portfolio-api/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock Store
type mockStore struct {
	checkAndConsumeFunc func(ctx context.Context, identifier string) (bool, error)
	calls               int
}

func (m *mockStore) CheckAndConsume(ctx context.Context, identifier string) (bool, error) {
	m.calls++
	if m.checkAndConsumeFunc != nil {
		return m.checkAndConsumeFunc(ctx, identifier)
	}
	return true, nil
}

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	err := logging.InitLogger(&logging.LogConfig{
		File:       filepath.Join(t.TempDir(), "test.log"),
		MaxSize:    10,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NoError(t, err)
	return logging.GetGlobalLogger()
}

func TestLimiterDurableMode(t *testing.T) {
	primary := &mockStore{}
	fallback := NewMemoryStore(DefaultConfig())
	limiter := NewLimiter(primary, fallback, testLogger(t))

	res := limiter.CheckAndConsume(context.Background(), "203.0.113.5")
	assert.True(t, res.Allowed)
	assert.Equal(t, ModeDurable, res.Mode)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.Len(), "fallback should not be touched when primary succeeds")
}

func TestLimiterDurableRejection(t *testing.T) {
	primary := &mockStore{
		checkAndConsumeFunc: func(ctx context.Context, identifier string) (bool, error) {
			return false, nil
		},
	}
	limiter := NewLimiter(primary, NewMemoryStore(DefaultConfig()), testLogger(t))

	res := limiter.CheckAndConsume(context.Background(), "203.0.113.5")
	assert.False(t, res.Allowed)
	assert.Equal(t, ModeDurable, res.Mode)
}

func TestLimiterFallsBackOnPrimaryError(t *testing.T) {
	primary := &mockStore{
		checkAndConsumeFunc: func(ctx context.Context, identifier string) (bool, error) {
			return false, errors.New("connection refused")
		},
	}
	fallback := NewMemoryStore(Config{Max: 1, Window: time.Hour})
	limiter := NewLimiter(primary, fallback, testLogger(t))

	// Primary error is informational only; the fallback answers
	res := limiter.CheckAndConsume(context.Background(), "203.0.113.5")
	assert.True(t, res.Allowed)
	assert.Equal(t, ModeDegraded, res.Mode)

	// The fallback's quota binds while degraded
	res = limiter.CheckAndConsume(context.Background(), "203.0.113.5")
	assert.False(t, res.Allowed)
	assert.Equal(t, ModeDegraded, res.Mode)
}

func TestLimiterMemoryMode(t *testing.T) {
	limiter := NewLimiter(nil, NewMemoryStore(DefaultConfig()), testLogger(t))

	res := limiter.CheckAndConsume(context.Background(), "203.0.113.5")
	assert.True(t, res.Allowed)
	assert.Equal(t, ModeMemory, res.Mode)

	assert.Equal(t, ModeMemory, limiter.Mode())
}
