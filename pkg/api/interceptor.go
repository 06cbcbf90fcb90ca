package api

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/loomctl/loom/pkg/metrics"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// rateGuard keeps one token bucket per caller address. Idle buckets are
// dropped so the map does not grow with churned clients.
type rateGuard struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*limiterEntry
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const limiterIdleTTL = 5 * time.Minute

func newRateGuard(perSecond float64, burst int) *rateGuard {
	return &rateGuard{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: make(map[string]*limiterEntry),
	}
}

func (g *rateGuard) allow(caller string) bool {
	g.mu.Lock()
	entry, ok := g.limiters[caller]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(g.limit, g.burst)}
		g.limiters[caller] = entry
	}
	entry.lastSeen = time.Now()
	g.mu.Unlock()
	return entry.limiter.Allow()
}

func (g *rateGuard) cleanup() {
	g.mu.Lock()
	defer g.mu.Unlock()
	cutoff := time.Now().Add(-limiterIdleTTL)
	for caller, entry := range g.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(g.limiters, caller)
		}
	}
}

func callerOf(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown"
}

// RateLimitUnaryInterceptor rejects callers that exceed the per-peer
// request budget with ResourceExhausted.
func RateLimitUnaryInterceptor(guard *rateGuard) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if !guard.allow(callerOf(ctx)) {
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}

// RateLimitStreamInterceptor applies the per-peer budget to stream opens
func RateLimitStreamInterceptor(guard *rateGuard) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if !guard.allow(callerOf(ss.Context())) {
			return status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(srv, ss)
	}
}

// isReadOnlyMethod reports whether a gRPC method mutates nothing. Event
// watches and exec streams count as reads for drain purposes; exec runs
// inside agents the caller already owns.
func isReadOnlyMethod(fullMethod string) bool {
	parts := strings.Split(fullMethod, "/")
	name := parts[len(parts)-1]
	for _, prefix := range []string{"List", "Get", "Watch"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// ReadOnlyUnaryInterceptor blocks mutating RPCs while draining is set.
// Used during graceful shutdown so in-flight work can settle without new
// spawns or migrations arriving.
func ReadOnlyUnaryInterceptor(draining *atomic.Bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if draining.Load() && !isReadOnlyMethod(info.FullMethod) {
			return nil, status.Error(codes.Unavailable, "control plane is draining, mutating operations are disabled")
		}
		return handler(ctx, req)
	}
}

// ReadOnlyStreamInterceptor is the stream-side drain guard
func ReadOnlyStreamInterceptor(draining *atomic.Bool) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if draining.Load() && !isReadOnlyMethod(info.FullMethod) && !strings.HasSuffix(info.FullMethod, "ExecAgent") {
			return status.Error(codes.Unavailable, "control plane is draining, mutating operations are disabled")
		}
		return handler(srv, ss)
	}
}

// LoggingUnaryInterceptor logs every call and feeds the request metrics
func LoggingUnaryInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		observe(logger, info.FullMethod, start, err)
		return resp, err
	}
}

// LoggingStreamInterceptor is the stream-side logging/metrics hook
func LoggingStreamInterceptor(logger zerolog.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		observe(logger, info.FullMethod, start, err)
		return err
	}
}

func observe(logger zerolog.Logger, fullMethod string, start time.Time, err error) {
	parts := strings.Split(fullMethod, "/")
	method := parts[len(parts)-1]
	code := status.Code(err)

	metrics.APIRequestsTotal.WithLabelValues(method, code.String()).Inc()
	metrics.APIRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	event := logger.Debug()
	if err != nil && code != codes.Canceled {
		event = logger.Warn().Err(err)
	}
	event.Str("method", method).Str("code", code.String()).Dur("duration", time.Since(start)).Msg("Handled request")
}
