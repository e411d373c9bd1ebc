// Package api implements app.Runner for the gateway server process.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/token-gateway/pkg/app/http"
	"github.com/chainsafe/token-gateway/pkg/auth"
	"github.com/chainsafe/token-gateway/pkg/config"
	"github.com/chainsafe/token-gateway/pkg/gateway"
	"github.com/chainsafe/token-gateway/pkg/gateway/service"
	"github.com/chainsafe/token-gateway/pkg/gatewaystore"
	"github.com/chainsafe/token-gateway/pkg/l2"
	"github.com/chainsafe/token-gateway/pkg/pgutil"
)

const defaultRequestTimeout = 60

// Server holds cfg to init the gateway server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new gateway server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// NewRuntime creates an L2 runtime holding the system contracts described by cfg.
func NewRuntime(cfg *config.GatewayConfig) (*l2.Runtime, error) {
	rt := l2.NewRuntime()
	err := gateway.Bootstrap(rt, gateway.Genesis{
		Gateway:        cfg.GatewayAddress(),
		Counterpart:    cfg.Counterpart(),
		Template:       cfg.Template(),
		CustomTemplate: cfg.CustomTemplate(),
		Operator:       cfg.Operator(),
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap runtime: %w", err)
	}
	return rt, nil
}

func (s *Server) Run() (err error) {
	if s.cfg == nil {
		return errors.New("gateway server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting gateway server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("gateway", cfg.Gateway.GatewayAddress().Hex()),
	)

	store, db, err := s.openStore(ctx, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() {
			if cerr := db.Close(); cerr != nil {
				err = multierror.Append(err, fmt.Errorf("close db: %w", cerr))
			}
		}()
	}

	rt, err := NewRuntime(&cfg.Gateway)
	if err != nil {
		return err
	}

	svc, err := service.NewService(ctx, rt, store, service.Config{
		Gateway:  cfg.Gateway.GatewayAddress(),
		GasLimit: cfg.Gateway.GasLimit,
	}, logger)
	if err != nil {
		return fmt.Errorf("create gateway service: %w", err)
	}

	router := s.setupRouter(service.NewLog(svc, logger), logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// openStore returns the journal store. db is nil when the journal is kept in memory.
func (s *Server) openStore(ctx context.Context, logger *zap.Logger) (service.Store, *bun.DB, error) {
	if !s.cfg.Database.Enabled {
		logger.Warn("Database disabled, journal is kept in memory and lost on restart")
		return gatewaystore.NewMemoryStore(), nil, nil
	}

	db, err := pgutil.ConnectDB(ctx, &s.cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect db: %w", err)
	}
	return gatewaystore.NewStore(db), db, nil
}

func (s *Server) setupRouter(svc service.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Second * defaultRequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle(s.cfg.Monitoring.Path, promhttp.Handler())
	}

	jwtv := auth.NewJWTValidator(s.cfg.Auth.JWTSecret, s.cfg.Auth.JWTIssuer)
	service.RegisterRoutes(r, svc, jwtv, s.cfg.Auth.SignatureTTL, logger)

	return r
}
