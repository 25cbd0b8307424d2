package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// unaryObserver logs and meters every completed unary RPC.
func unaryObserver(log *slog.Logger, metrics *Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		observe(log, metrics, info.FullMethod, start, err)
		return resp, err
	}
}

// streamObserver does the same for streaming RPCs; the duration covers the
// whole stream lifetime.
func streamObserver(log *slog.Logger, metrics *Metrics) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		observe(log, metrics, info.FullMethod, start, err)
		return err
	}
}

func observe(log *slog.Logger, metrics *Metrics, method string, start time.Time, err error) {
	code := status.Code(err)
	metrics.Handled.WithLabelValues(method, code.String()).Inc()
	metrics.Duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		log.Warn("rpc finished", "method", method, "code", code.String(), "err", err)
		return
	}
	log.Info("rpc finished", "method", method, "code", code.String(), "duration", time.Since(start))
}

// unaryRateLimit rejects calls from peers that exhausted their token
// bucket. A nil limiter admits everything.
func unaryRateLimit(limiter *PeerLimiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !limiter.Allow(peerAddr(ctx), time.Now()) {
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}

func streamRateLimit(limiter *PeerLimiter) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if !limiter.Allow(peerAddr(ss.Context()), time.Now()) {
			return status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(srv, ss)
	}
}

func peerAddr(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	return p.Addr.String()
}
