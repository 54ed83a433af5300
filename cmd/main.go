package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"watchlist/internal/handlers"
	"watchlist/internal/logger"
	"watchlist/internal/repository"
	"watchlist/internal/server"
	"watchlist/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Personal movie watchlist web service",
	Long:  "Serves the watchlist over HTTP and provides provisioning commands for the database and the admin account.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: runServe, // plain `watchlist` serves
}

func main() {
	rootCmd.AddCommand(serveCmd, initdbCmd, adminCmd, forgeCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

// loadConfig establishes defaults, binds the documented environment
// overrides, and merges configs/config.yml when present.
func loadConfig() error {
	viper.SetDefault("port", "8080")
	viper.SetDefault("db.path", "data.db")
	viper.SetDefault("session.secret", "dev")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("log.level", logger.InfoLevel)

	_ = viper.BindEnv("db.path", "DATABASE_FILE")
	_ = viper.BindEnv("session.secret", "SECRET_KEY")

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil // defaults and env vars are enough
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// openDB initializes the SQLite database using configuration.
func openDB() (*sql.DB, error) {
	return repository.InitDB(viper.GetString("db.path"))
}

// newService wires the repository layer into the service aggregate.
func newService(db *sql.DB) *service.Service {
	repos := repository.NewRepository(db)
	return service.NewService(repos, viper.GetString("session.secret"), viper.GetDuration("session.ttl"))
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.Get(viper.GetString("log.level"))

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	apiHandler := handlers.NewHandler(newService(db), log)

	srv := &server.Server{}
	go func() {
		if err := srv.Run(viper.GetString("port"), apiHandler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("watchlist listening", "port", viper.GetString("port"), "db", viper.GetString("db.path"))

	waitForShutdown(srv, log)
	return nil
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
