package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/civicbridge/feedback-server/api/v1"
	"github.com/civicbridge/feedback-server/internal/classifier"
	"github.com/civicbridge/feedback-server/internal/config"
	handler "github.com/civicbridge/feedback-server/internal/grpc"
	"github.com/civicbridge/feedback-server/internal/report"
	"github.com/civicbridge/feedback-server/internal/service"
	"github.com/civicbridge/feedback-server/internal/store"
	"github.com/civicbridge/feedback-server/pkg/cache"
	grpcsrv "github.com/civicbridge/feedback-server/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type App struct {
	logger     *zap.Logger
	cache      *cache.Cache
	grpcServer *grpcsrv.Server
}

func newClassifier(cfg *config.Config, logger *zap.Logger) (service.Classifier, error) {
	switch cfg.ClassifierProvider {
	case config.ClassifierVADER:
		return classifier.NewVADER(), nil
	case config.ClassifierOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("classifier provider %q requires OPENAI_API_KEY", cfg.ClassifierProvider)
		}
		return classifier.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger), nil
	default:
		return nil, fmt.Errorf("unknown classifier provider %q", cfg.ClassifierProvider)
	}
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	cls, err := newClassifier(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("classifier init failed: %w", err)
	}
	logger.Info("Classifier initialized", zap.String("provider", cfg.ClassifierProvider))

	var cacheClient *cache.Cache
	if cfg.CacheEnabled {
		cacheClient, err = cache.New(ctx,
			cache.WithAddress(cfg.RedisAddr),
		)
		if err != nil {
			return nil, fmt.Errorf("cache init failed: %w", err)
		}
		logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
	}

	feedbackStore := store.New()

	insightService := service.NewInsightService(feedbackStore, cls, logger)
	reportGenerator := report.NewGenerator()

	cacheTTL := time.Duration(cfg.CacheTTLMinutes) * time.Minute

	var cacher handler.Cacher
	if cacheClient != nil {
		cacher = cacheClient
	}
	grpcHandlers := handler.NewGRPCHandlers(insightService, reportGenerator, cacher, logger, cacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterService(func(s *grpc.Server) {
		pb.RegisterPolicyFeedbackServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("grpc shutdown error", zap.Error(err))
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("cache shutdown error", zap.Error(err))
		}
	}

	a.logger.Info("graceful shutdown completed")

	_ = a.logger.Sync()
	return nil
}
