package api

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsReadOnlyMethod(t *testing.T) {
	tests := []struct {
		method   string
		readOnly bool
	}{
		{"/loom.LoomAPI/ListAgents", true},
		{"/loom.LoomAPI/ListClusters", true},
		{"/loom.LoomAPI/GetAgentStatus", true},
		{"/loom.LoomAPI/GetCluster", true},
		{"/loom.LoomAPI/WatchEvents", true},
		{"/loom.LoomAPI/SpawnAgent", false},
		{"/loom.LoomAPI/KillAgent", false},
		{"/loom.LoomAPI/MigrateAgent", false},
		{"/loom.LoomAPI/RegisterCluster", false},
		{"/loom.LoomAPI/UnregisterCluster", false},
		{"/loom.LoomAPI/ExecAgent", false},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.readOnly, isReadOnlyMethod(tt.method))
		})
	}
}

func TestRateGuardAllow(t *testing.T) {
	guard := newRateGuard(1, 2)

	assert.True(t, guard.allow("1.2.3.4:5000"))
	assert.True(t, guard.allow("1.2.3.4:5000"))
	assert.False(t, guard.allow("1.2.3.4:5000"), "burst exhausted")

	// independent bucket per caller
	assert.True(t, guard.allow("5.6.7.8:9000"))
}

func TestRateGuardCleanup(t *testing.T) {
	guard := newRateGuard(10, 10)
	guard.allow("stale")
	guard.allow("fresh")

	guard.mu.Lock()
	guard.limiters["stale"].lastSeen = time.Now().Add(-2 * limiterIdleTTL)
	guard.mu.Unlock()

	guard.cleanup()

	guard.mu.Lock()
	defer guard.mu.Unlock()
	assert.NotContains(t, guard.limiters, "stale")
	assert.Contains(t, guard.limiters, "fresh")
}

func TestReadOnlyUnaryInterceptor(t *testing.T) {
	var draining atomic.Bool
	interceptor := ReadOnlyUnaryInterceptor(&draining)
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "handled", nil
	}

	spawn := &grpc.UnaryServerInfo{FullMethod: "/loom.LoomAPI/SpawnAgent"}
	list := &grpc.UnaryServerInfo{FullMethod: "/loom.LoomAPI/ListClusters"}

	resp, err := interceptor(context.Background(), nil, spawn, handler)
	require.NoError(t, err)
	assert.Equal(t, "handled", resp)

	draining.Store(true)

	_, err = interceptor(context.Background(), nil, spawn, handler)
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))

	resp, err = interceptor(context.Background(), nil, list, handler)
	require.NoError(t, err)
	assert.Equal(t, "handled", resp)

	draining.Store(false)
	_, err = interceptor(context.Background(), nil, spawn, handler)
	assert.NoError(t, err)
}

func TestReadOnlyStreamInterceptorExemptsExec(t *testing.T) {
	var draining atomic.Bool
	draining.Store(true)
	interceptor := ReadOnlyStreamInterceptor(&draining)
	handler := func(srv interface{}, ss grpc.ServerStream) error { return nil }

	err := interceptor(nil, nil, &grpc.StreamServerInfo{FullMethod: "/loom.LoomAPI/ExecAgent"}, handler)
	assert.NoError(t, err)

	err = interceptor(nil, nil, &grpc.StreamServerInfo{FullMethod: "/loom.LoomAPI/WatchEvents"}, handler)
	assert.NoError(t, err)
}

func TestRateLimitUnaryInterceptor(t *testing.T) {
	guard := newRateGuard(1, 1)
	interceptor := RateLimitUnaryInterceptor(guard)
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "handled", nil
	}
	info := &grpc.UnaryServerInfo{FullMethod: "/loom.LoomAPI/ListAgents"}

	// no peer attached: all calls share the "unknown" bucket
	_, err := interceptor(context.Background(), nil, info, handler)
	require.NoError(t, err)

	_, err = interceptor(context.Background(), nil, info, handler)
	require.Error(t, err)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestLoggingUnaryInterceptorPassesThrough(t *testing.T) {
	interceptor := LoggingUnaryInterceptor(zerolog.Nop())
	info := &grpc.UnaryServerInfo{FullMethod: "/loom.LoomAPI/SpawnAgent"}

	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	wantErr := errors.New("boom")
	_, err = interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}
