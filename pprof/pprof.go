package pprof

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/prometheus"
)

const (
	readTimeout     = 2 * time.Minute
	shutdownTimeout = 5 * time.Second
)

// Server serves the pprof endpoints
type Server struct {
	cfg    Config
	logger *log.Logger
}

func NewServer(cfg Config, logger *log.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Address is the host:port the server binds to
func (s *Server) Address() string {
	return net.JoinHostPort(s.cfg.ProfilingHost, fmt.Sprintf("%d", s.cfg.ProfilingPort))
}

// Handler returns the mux with the pprof handlers
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(prometheus.ProfilingIndexEndpoint, pprof.Index)
	mux.HandleFunc(prometheus.ProfileEndpoint, pprof.Profile)
	mux.HandleFunc(prometheus.ProfilingCmdEndpoint, pprof.Cmdline)
	mux.HandleFunc(prometheus.ProfilingSymbolEndpoint, pprof.Symbol)
	mux.HandleFunc(prometheus.ProfilingTraceEndpoint, pprof.Trace)
	return mux
}

// Start listens on Address and serves until ctx is done
func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.Address())
	if err != nil {
		return fmt.Errorf("failed to create tcp listener for profiling: %w", err)
	}
	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is done, then shuts the server down
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readTimeout,
		ReadTimeout:       readTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warnf("profiling server shutdown: %v", err)
		}
	}()

	s.logger.Infof("profiling server listening on %s", lis.Addr())
	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("profiling server: %w", err)
	}
	s.logger.Warn("http server for profiling stopped")
	return nil
}
