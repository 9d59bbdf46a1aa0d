package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ncnews/internal/config"
	"ncnews/internal/db"
	"ncnews/internal/logging"
	"ncnews/internal/router"
	"ncnews/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var (
	// Flags override values from the environment when set.
	portFlag     string
	dbFlag       string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "ncnews",
	Short: "NC News - REST API over topics, articles, comments and users",
	Long: `ncnews serves a JSON REST API for a news board backed by PostgreSQL.

Configuration is read from the environment and from .env files selected by
NCNEWS_ENV (.env.<env>.local, .env.local, .env.<env>, .env).`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Recreate the schema and load the fixture dataset (destroys existing data)",
	RunE:  runSeed,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "HTTP listen port (env PORT)")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "PostgreSQL connection string (env DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd, seedCmd)
}

func loadConfig() *config.Config {
	config.LoadDotEnvs(".")
	cfg := config.Load()
	if portFlag != "" {
		cfg.Port = portFlag
	}
	if dbFlag != "" {
		cfg.DatabaseURL = dbFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	return cfg
}

func connect(ctx context.Context, cfg *config.Config, log *logrus.Entry) (*gorm.DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Open(connectCtx, cfg.DatabaseURL, logging.Gorm(log))
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	log := logging.Base(logging.New(cfg.LogLevel, cfg.IsProd()), cfg.Env)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close(gdb)
	log.Info("database connection established")

	if err := db.Migrate(gdb); err != nil {
		return err
	}

	topics := services.NewTopicService(gdb)
	engine := router.New(router.Deps{
		Topics:      topics,
		Users:       services.NewUserService(gdb),
		Articles:    services.NewArticleService(gdb, topics),
		Comments:    services.NewCommentService(gdb),
		Ping:        func(ctx context.Context) error { return db.Ping(ctx, gdb) },
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("ncnews server starting on :%s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	log := logging.Base(logging.New(cfg.LogLevel, cfg.IsProd()), cfg.Env)

	if cfg.IsProd() {
		return errors.New("refusing to seed in prod")
	}

	gdb, err := connect(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer db.Close(gdb)

	data := db.TestData()
	if err := db.Seed(gdb, data); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"topics":   len(data.Topics),
		"users":    len(data.Users),
		"articles": len(data.Articles),
		"comments": len(data.Comments),
	}).Info("database seeded")
	return nil
}
