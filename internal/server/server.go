// Package server wires the roster store to the gRPC transport: the
// TeamService handlers, observability interceptors, the per-peer rate
// limiter, and the process lifecycle around them.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"google.golang.org/grpc"

	"github.com/pdz-labs/team-roster/internal/config"
	"github.com/pdz-labs/team-roster/internal/roster"
	teamv1 "github.com/pdz-labs/team-roster/proto/teamv1"
)

const (
	gracefulStopTimeout = 5 * time.Second
	peerIdleTTL         = 10 * time.Minute
)

type Server struct {
	cfg     config.Config
	log     *slog.Logger
	grpc    *grpc.Server
	metrics *Metrics
}

func New(cfg config.Config, store *roster.Store, log *slog.Logger) *Server {
	metrics := NewMetrics()
	limiter := NewPeerLimiter(cfg.RateRPS, cfg.RateBurst, peerIdleTTL)

	g := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			unaryObserver(log, metrics),
			unaryRateLimit(limiter),
		),
		grpc.ChainStreamInterceptor(
			streamObserver(log, metrics),
			streamRateLimit(limiter),
		),
	)
	teamv1.RegisterTeamServiceServer(g, NewTeamService(store, log))

	return &Server{cfg: cfg, log: log, grpc: g, metrics: metrics}
}

// Run serves until ctx is cancelled, then stops gracefully with a bounded
// deadline before forcing the remaining streams shut.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return err
	}

	var metricsSrv *http.Server
	if s.cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", s.metrics.Handler())
		metricsSrv = &http.Server{Addr: s.cfg.MetricsAddr, Handler: mux}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.log.Warn("metrics endpoint failed", "addr", s.cfg.MetricsAddr, "err", err)
			}
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpc.Serve(lis)
	}()
	s.log.Info("team service listening", "addr", lis.Addr().String())

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulStopTimeout)
		_ = metricsSrv.Shutdown(shutdownCtx)
		cancel()
	}

	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
		s.log.Info("server stopped gracefully")
	case <-time.After(gracefulStopTimeout):
		s.log.Warn("graceful stop timed out, forcing shutdown")
		s.grpc.Stop()
	}
	return nil
}
