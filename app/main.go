package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/jinhyuk9714/Back-likelion/internal/config"
	mysqlRepo "github.com/jinhyuk9714/Back-likelion/internal/repository/mysql"
	myRedisCache "github.com/jinhyuk9714/Back-likelion/internal/repository/redis"
	"github.com/jinhyuk9714/Back-likelion/internal/rest"
	"github.com/jinhyuk9714/Back-likelion/internal/rest/middleware"
	"github.com/jinhyuk9714/Back-likelion/internal/usecase/comment"
	"github.com/jinhyuk9714/Back-likelion/internal/workers"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "forum-comments",
		Short:         "Comment service of the community forum",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the member, post and comment tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	})
	return cmd
}

func setup() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	loc, err := time.LoadLocation(cfg.Database.Location)
	if err != nil {
		logrus.Warnf("unknown time location %q, using UTC", cfg.Database.Location)
		loc = time.UTC
	}
	dsn := mysqlRepo.DSNConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		Location: loc,
	}.DSN()

	db, err := mysqlRepo.Connect(dsn, cfg.Database.MaxRetry, cfg.Database.RetryInterval)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func runMigrate(ctx context.Context) error {
	_, db, err := setup()
	if err != nil {
		logrus.Error(err)
		return err
	}
	defer closeDB(db)

	if err := mysqlRepo.Migrate(ctx, db); err != nil {
		logrus.Errorf("migration failed: %v", err)
		return err
	}
	logrus.Info("migration completed")
	return nil
}

func runServe(parent context.Context) error {
	cfg, db, err := setup()
	if err != nil {
		logrus.Error(err)
		return err
	}
	defer closeDB(db)

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr(),
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()
	if _, err := client.Ping(parent).Result(); err != nil {
		logrus.Errorf("failed to open connection to cache: %v", err)
		return err
	}

	// Prepare Repository
	commentRepo := mysqlRepo.NewCommentRepository(db)
	memberRepo := mysqlRepo.NewMemberRepository(db)
	postRepo := mysqlRepo.NewPostRepository(db)
	transactor := mysqlRepo.NewTransactor(db)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start worker
	indexer := workers.NewPostIndexWorker(postRepo, bloomRepo, cfg.BloomRefreshInterval)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		indexer.Start(ctx)
	}()

	// Build service Layer
	commentSvc := comment.NewService(commentRepo, memberRepo, postRepo, bloomRepo, transactor)

	// prepare gin
	route := gin.New()
	route.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(cfg.AllowedOrigins...),
		middleware.SetRequestContextWithTimeout(cfg.ContextTimeout),
	)
	rest.RegisterRoutes(route, commentSvc, middleware.AuthMiddleware(cfg.JWTSecret))

	// Start Server
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           route,
		ReadHeaderTimeout: cfg.ContextTimeout,
	}
	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("Server is running on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// shutdown
	select {
	case <-ctx.Done():
		logrus.Info("Shutdown signal received, stopping server...")
	case err := <-serveErr:
		logrus.Errorf("listen: %v", err)
		stop()
		<-workerDone
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logrus.Info("Waiting for worker to cleanup...")
	<-workerDone
	logrus.Info("Server exiting")
	return nil
}

func closeDB(db *gorm.DB) {
	if err := mysqlRepo.Close(db); err != nil {
		logrus.Errorf("got error when closing the DB connection: %v", err)
	}
}
