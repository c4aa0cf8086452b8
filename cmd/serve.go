package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	internalhttp "golang-ipcalc/internal/http"
	"golang-ipcalc/internal/pkg/config"
	"golang-ipcalc/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var serveConfigFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the subnet calculator as a JSON endpoint",
	Run: func(cmd *cobra.Command, args []string) {
		// Load and validate configuration
		cfg, err := config.Load(serveConfigFlag)
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			return
		}

		if err := cfg.Validate(); err != nil {
			fmt.Printf("Config validation error: %v\n", err)
			return
		}

		// Initialize logging
		logging.InitLogger(cfg.Logging)

		logger := logging.WithComponent("serve")
		logger.WithField("port", cfg.Serve.Port).Info("Starting server")

		api := internalhttp.NewAPI(logging.GetLogger())
		server := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Serve.Port),
			Handler:      api.Router(),
			ReadTimeout:  time.Duration(cfg.Serve.ReadTimeout),
			WriteTimeout: time.Duration(cfg.Serve.WriteTimeout),
		}

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		errChan := make(chan error, 1)
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errChan <- err
			}
		}()

		select {
		case err := <-errChan:
			logger.WithError(err).Error("Server failed")
			return
		case sig := <-sigChan:
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Shutdown failed")
			return
		}
		logger.Info("Server stopped")
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigFlag, "config", "f", "", "Path to config file (YAML)")
	rootCmd.AddCommand(serveCmd)
}
